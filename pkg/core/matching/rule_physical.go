package matching

import "strings"

// Movement terms scanned for in a role's physical-requirement text.
var (
	standingTerms = []string{"stand", "walk"}
	mobilityTerms = []string{"move", "walk", "run", "carry", "lift", "transport", "stand"}
)

// scorePhysicalActivity compares the user's physical-activity preference
// against each role's physical-requirement field treated as a boolean.
func (e *Engine) scorePhysicalActivity(answer string, eliminate bool) error {
	pref, err := ParsePreference(answer)
	if err != nil {
		return err
	}
	e.scorePhysicalRequirement(pref, nil, ScoreAbilityMatch, eliminate)
	return nil
}

// scoreStanding compares the user's standing/walking ability against roles
// whose physical-requirement text mentions standing or walking.
func (e *Engine) scoreStanding(answer string, eliminate bool) error {
	pref, err := ParsePreference(answer)
	if err != nil {
		return err
	}
	e.scorePhysicalRequirement(pref, standingTerms, ScoreMovementMatch, eliminate)
	return nil
}

// scoreMobility compares the user's general mobility against roles whose
// physical-requirement text mentions any movement term.
func (e *Engine) scoreMobility(answer string, eliminate bool) error {
	pref, err := ParsePreference(answer)
	if err != nil {
		return err
	}
	e.scorePhysicalRequirement(pref, mobilityTerms, ScoreMovementMatch, eliminate)
	return nil
}

// scorePhysicalRequirement is the shared mechanism behind the three physical
// rules. With movement terms, a role "has the requirement" when its
// physical-requirement text contains any term (substring match, lowercased).
// Without terms, the field is interpreted as a boolean. Agreement between the
// user's preference and the role earns points; disagreement eliminates only
// when elimination mode is on. A no-preference answer applies nothing.
func (e *Engine) scorePhysicalRequirement(pref Preference, movementTerms []string, points int, eliminate bool) {
	if pref == PreferenceNone {
		return
	}

	for i := range e.roles {
		role := &e.roles[i]

		var hasRequirement bool
		if len(movementTerms) > 0 {
			text := strings.ToLower(role.PhysicalReq)
			for _, term := range movementTerms {
				if strings.Contains(text, term) {
					hasRequirement = true
					break
				}
			}
		} else {
			hasRequirement = isTruthy(role.PhysicalReq)
		}

		switch {
		case pref == PreferenceYes && hasRequirement:
			e.addScore(role.Name, points)
		case pref == PreferenceNo && !hasRequirement:
			e.addScore(role.Name, points)
		case eliminate:
			e.eliminate(role.Name)
		}
	}
}

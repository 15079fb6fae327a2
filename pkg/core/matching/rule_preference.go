package matching

// workPreferenceChoices are the accepted answers for the work-environment
// question. BTS is behind the scenes, FRONT is front-facing.
var workPreferenceChoices = []string{"NO PREFERENCE", "NO PREF", "NO_PREF", "BTS", "FRONT"}

// scoreWorkPreference awards an exact categorical match between the user's
// work-environment choice and each role's work_pref field. A no-preference
// answer applies nothing; a mismatch eliminates only in elimination mode.
func (e *Engine) scoreWorkPreference(answer string, eliminate bool) error {
	choice, err := ParseChoice(answer, workPreferenceChoices)
	if err != nil {
		return err
	}
	if noPreferenceForms[choice] {
		return nil
	}

	for i := range e.roles {
		role := &e.roles[i]
		if choice == role.WorkPref {
			e.addScore(role.Name, ScoreWorkPreferenceMatch)
		} else if eliminate {
			e.eliminate(role.Name)
		}
	}

	return nil
}

// scoreLeadership compares the user's leadership preference against each
// role's leadership flag, same mechanism as the plain physical-ability check.
func (e *Engine) scoreLeadership(answer string, eliminate bool) error {
	pref, err := ParsePreference(answer)
	if err != nil {
		return err
	}
	if pref == PreferenceNone {
		return nil
	}

	for i := range e.roles {
		role := &e.roles[i]
		hasAttribute := isTruthy(role.LeadershipPref)

		switch {
		case pref == PreferenceYes && hasAttribute:
			e.addScore(role.Name, ScoreAbilityMatch)
		case pref == PreferenceNo && !hasAttribute:
			e.addScore(role.Name, ScoreAbilityMatch)
		case eliminate:
			e.eliminate(role.Name)
		}
	}

	return nil
}

package matching

import (
	"fmt"
	"strings"
)

// dependentCommitment marks roles whose day requirements vary by event.
// They always score as a good match, regardless of user availability.
const dependentCommitment = "Dependent"

// scoreTimeCommitment scores every role's day requirements for the given
// competition type against the user's availability.
//
// Per role:
//   - an explicit "false" commitment means the role does not run in this
//     competition and is eliminated unconditionally
//   - placeholder values ("?", empty) are skipped
//   - "Dependent" short-circuits to ScoreGoodDayCoverage
//   - a role whose requirement parses to no days, or that shares no days
//     with the user, is eliminated unconditionally
//   - otherwise the overlap ratio over the role's required days picks
//     full, good, or limited coverage points
func (e *Engine) scoreTimeCommitment(answer string, ct CommitmentType, eliminate bool) error {
	cal, ok := e.calendars[ct]
	if !ok {
		return fmt.Errorf("%w: unknown commitment type %q", ErrInvalidResponse, ct)
	}

	user, err := ParseDayAvailability(answer, cal)
	if err != nil {
		return err
	}

	for i := range e.roles {
		role := &e.roles[i]
		commitment := role.commitmentFor(ct)

		if isFalse(commitment) {
			e.eliminate(role.Name)
			continue
		}

		commitment = strings.TrimSpace(strings.ReplaceAll(commitment, "?", ""))
		if commitment == "" {
			continue
		}

		if commitment == dependentCommitment {
			e.addScore(role.Name, ScoreGoodDayCoverage)
			continue
		}

		if !user.HasAvailability {
			continue
		}

		required, err := ParseDayAvailability(commitment, cal)
		if err != nil {
			// Unparseable role data is treated as unknown, not fatal.
			continue
		}

		if !required.HasAvailability {
			e.eliminate(role.Name)
			continue
		}

		overlap := user.Overlap(required)
		if overlap == 0 {
			e.eliminate(role.Name)
			continue
		}

		ratio := float64(overlap) / float64(required.Len())
		switch {
		case ratio >= 1.0:
			e.addScore(role.Name, ScoreFullDayCoverage)
		case ratio >= 0.5:
			e.addScore(role.Name, ScoreGoodDayCoverage)
		default:
			e.addScore(role.Name, ScoreLimitedDayCoverage)
		}
	}

	return nil
}

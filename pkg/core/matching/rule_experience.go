package matching

import "strings"

// experienceLevel is a role's prior-experience requirement.
type experienceLevel int

const (
	levelUnknown experienceLevel = iota
	levelNotRequired
	levelPreferred
	levelRequired
)

// Keyword lists used to classify free-text prior-experience requirements.
var (
	requiredKeywords  = []string{"must", "required", "years", "minimum", "experience required"}
	preferredKeywords = []string{"recommended", "helpful", "knowledge of", "general knowledge"}
)

// parsePriorExperience classifies a role's prior-experience field. Explicit
// booleans win; otherwise keyword search over the lowercased text decides.
func parsePriorExperience(raw string) experienceLevel {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return levelUnknown
	}

	upper := strings.ToUpper(trimmed)
	switch {
	case strings.Contains(upper, "FALSE"):
		return levelNotRequired
	case strings.Contains(upper, "TRUE"):
		return levelRequired
	case strings.Contains(upper, "PREFERRED"):
		return levelPreferred
	}

	lower := strings.ToLower(trimmed)
	for _, kw := range requiredKeywords {
		if strings.Contains(lower, kw) {
			return levelRequired
		}
	}
	for _, kw := range preferredKeywords {
		if strings.Contains(lower, kw) {
			return levelPreferred
		}
	}

	return levelUnknown
}

// scorePriorExperience scores roles against whether the user has prior
// FIRST experience. This rule never eliminates roles: experience gaps are a
// soft signal only.
func (e *Engine) scorePriorExperience(answer string) error {
	hasExperience, err := ParseBinary(answer)
	if err != nil {
		return err
	}

	for i := range e.roles {
		role := &e.roles[i]
		level := parsePriorExperience(role.PriorExperience)

		if hasExperience {
			switch level {
			case levelRequired:
				e.addScore(role.Name, ScoreExperienceRequired)
			case levelPreferred:
				e.addScore(role.Name, ScoreExperiencePreferred)
			default:
				e.addScore(role.Name, ScoreExperienceBaseline)
			}
		} else {
			switch level {
			case levelNotRequired:
				e.addScore(role.Name, ScoreNoExperienceNotRequired)
			case levelPreferred:
				e.addScore(role.Name, PenaltyNoExperiencePreferred)
			}
		}
	}

	return nil
}

// knowledgeTiers is the ordered game-knowledge scale, lowest first. Tiers
// are compared by index, not name.
var knowledgeTiers = []string{"NONE", "LIMITED", "AVERAGE", "THOROUGH"}

// Keyword lists used to classify free-text game-knowledge requirements,
// checked from the most demanding tier down.
var (
	thoroughKeywords = []string{"thorough", "advanced", "in-depth"}
	averageKeywords  = []string{"average", "familiar", "general knowledge"}
	limitedKeywords  = []string{"can learn", "basic", "some knowledge"}
)

// parseGameKnowledge classifies a role's game-knowledge field into a tier
// index, or -1 when it cannot be classified.
func parseGameKnowledge(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return -1
	}

	upper := strings.ToUpper(trimmed)
	switch {
	case strings.Contains(upper, "FALSE"):
		return tierIndex("NONE")
	case strings.Contains(upper, "TRUE"):
		return tierIndex("LIMITED")
	}

	lower := strings.ToLower(trimmed)
	for _, kw := range thoroughKeywords {
		if strings.Contains(lower, kw) {
			return tierIndex("THOROUGH")
		}
	}
	for _, kw := range averageKeywords {
		if strings.Contains(lower, kw) {
			return tierIndex("AVERAGE")
		}
	}
	for _, kw := range limitedKeywords {
		if strings.Contains(lower, kw) {
			return tierIndex("LIMITED")
		}
	}

	return -1
}

func tierIndex(tier string) int {
	for i, name := range knowledgeTiers {
		if name == tier {
			return i
		}
	}
	return -1
}

// scoreGameKnowledge compares the user's game-knowledge tier to each role's
// required tier. Meeting the requirement scores higher on an exact match;
// falling short eliminates only in elimination mode. Unclassifiable role
// requirements are skipped.
func (e *Engine) scoreGameKnowledge(answer string, eliminate bool) error {
	choice, err := ParseChoice(answer, knowledgeTiers)
	if err != nil {
		return err
	}
	userIndex := tierIndex(choice)

	for i := range e.roles {
		role := &e.roles[i]

		requiredIndex := parseGameKnowledge(role.GameKnowledge)
		if requiredIndex < 0 {
			continue
		}

		switch {
		case userIndex == requiredIndex:
			e.addScore(role.Name, ScoreKnowledgeExact)
		case userIndex > requiredIndex:
			e.addScore(role.Name, ScoreKnowledgeAbove)
		case eliminate:
			e.eliminate(role.Name)
		}
	}

	return nil
}

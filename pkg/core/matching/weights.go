package matching

// Score deltas applied by the scoring rules.
const (
	// ScoreAgeQualified is awarded when the user's age ceiling meets a
	// role's minimum age (or the student override applies).
	ScoreAgeQualified = 5

	// ScoreAgeBelowPreference replaces ScoreAgeQualified when the role also
	// states an age preference above the user's ceiling.
	ScoreAgeBelowPreference = 3

	// ScoreAbilityMatch is awarded when a boolean preference answer agrees
	// with a boolean role field (physical ability, leadership).
	ScoreAbilityMatch = 5

	// ScoreMovementMatch is awarded when a standing/mobility answer agrees
	// with movement terms found in the role's physical requirements.
	ScoreMovementMatch = 3

	// Day-overlap scores for the time commitment rule.
	ScoreFullDayCoverage    = 5
	ScoreGoodDayCoverage    = 3
	ScoreLimitedDayCoverage = 1

	// ScoreWorkPreferenceMatch is awarded for an exact BTS/FRONT match.
	ScoreWorkPreferenceMatch = 5

	// Prior experience scores, keyed to the role's requirement level.
	ScoreExperienceRequired      = 8
	ScoreExperiencePreferred     = 5
	ScoreExperienceBaseline      = 3
	ScoreNoExperienceNotRequired = 5
	PenaltyNoExperiencePreferred = -2

	// Game knowledge scores.
	ScoreKnowledgeExact = 8
	ScoreKnowledgeAbove = 5

	// Requirement-category match scores.
	ScoreSkillCategoryMatch      = 8
	ScoreExperienceCategoryMatch = 3
)

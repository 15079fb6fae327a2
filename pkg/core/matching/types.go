package matching

import (
	"strings"
	"time"
)

// CommitmentType selects which competition calendar applies when parsing
// day-availability answers.
type CommitmentType string

const (
	CommitmentDistrict  CommitmentType = "district"
	CommitmentRegionals CommitmentType = "regionals"
)

// Calendar is the ordered list of weekdays a competition type runs on.
// Numeric day tokens in availability answers index into this list.
type Calendar []time.Weekday

// DefaultCalendars returns the built-in competition calendars:
// district events run Friday through Sunday, regionals Thursday through Sunday.
func DefaultCalendars() map[CommitmentType]Calendar {
	return map[CommitmentType]Calendar{
		CommitmentDistrict:  {time.Friday, time.Saturday, time.Sunday},
		CommitmentRegionals: {time.Thursday, time.Friday, time.Saturday, time.Sunday},
	}
}

// QuestionKind is the closed set of question kinds the engine can score.
// Each kind corresponds to exactly one scoring rule.
type QuestionKind int

const (
	QuestionAge QuestionKind = iota
	QuestionPhysicalActivity
	QuestionStanding
	QuestionMobility
	QuestionTimeCommitment
	QuestionWorkPreference
	QuestionLeadership
	QuestionPriorExperience
	QuestionGameKnowledge
	QuestionRequiredSkills
	QuestionRequiredExperience
)

// questionKinds maps sequential question ids (0-10) to their kinds.
var questionKinds = []QuestionKind{
	QuestionAge,
	QuestionPhysicalActivity,
	QuestionStanding,
	QuestionMobility,
	QuestionTimeCommitment,
	QuestionWorkPreference,
	QuestionLeadership,
	QuestionPriorExperience,
	QuestionGameKnowledge,
	QuestionRequiredSkills,
	QuestionRequiredExperience,
}

// TotalQuestions is the number of question ids the dispatch table covers.
const TotalQuestions = 11

// RoleRecord is one row of the role catalog. The engine understands the
// typed fields below; anything else from the source file is carried in Extra.
//
// Several fields mix free text and boolean encodings in the source data
// (e.g. PhysicalReq may be "true", "false", or a description of the work),
// so they are kept as raw strings and interpreted by the scoring rules.
type RoleRecord struct {
	// Name uniquely identifies the role and is the join key for the
	// scoreboard, the elimination set, and result lists.
	Name string

	// AgeMin is a numeric minimum age, the literal "Students" sentinel,
	// or free text containing the minimum age.
	AgeMin string

	// AgePreference is an optional preferred minimum age.
	AgePreference string

	// PhysicalReq describes physical requirements (free text or boolean).
	PhysicalReq string

	// LeadershipPref marks roles with leadership responsibilities.
	LeadershipPref string

	// WorkPref is BTS (behind the scenes) or FRONT (front-facing).
	WorkPref string

	// DistrictDayCommitment and RegionalDayCommitment hold the days the
	// role requires for each competition type, "FALSE" when the role does
	// not run in that competition, or "Dependent" when it varies.
	DistrictDayCommitment string
	RegionalDayCommitment string

	// PriorExperience encodes whether prior FIRST experience is
	// required/preferred/not required (free text or boolean).
	PriorExperience string

	// GameKnowledge encodes the required game knowledge tier.
	GameKnowledge string

	// RequiredSkills and RequiredExperience are free-text requirement
	// descriptions fed to the skill categorizer.
	RequiredSkills     string
	RequiredExperience string

	// Extra carries passthrough columns the engine does not interpret.
	Extra map[string]string
}

// commitmentFor returns the day-commitment field for the given competition type.
func (r RoleRecord) commitmentFor(ct CommitmentType) string {
	if ct == CommitmentRegionals {
		return r.RegionalDayCommitment
	}
	return r.DistrictDayCommitment
}

// isTruthy interprets a mixed boolean/free-text field: empty and "false"
// are false, everything else (including descriptive text) is true.
func isTruthy(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, "false")
}

// isFalse reports whether a field is the explicit boolean false.
func isFalse(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "false")
}

// isBareTrue reports whether a field is the explicit boolean true with no
// descriptive text.
func isBareTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

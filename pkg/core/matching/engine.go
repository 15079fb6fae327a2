package matching

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTopMatches is the number of roles returned when callers have no
// preference.
const DefaultTopMatches = 3

// noneResult is the literal used when a result list is empty.
const noneResult = "None"

// Engine scores a fixed role catalog against one user's assessment answers.
// It owns a running score table and an elimination set, both mutated one
// answer at a time through Process. The role slice is read-only after
// construction and may be shared across engines; the engine itself must not
// be shared across concurrent assessments.
type Engine struct {
	roles           []RoleRecord
	scores          map[string]int
	eliminated      map[string]bool
	eliminatedOrder []string

	studentStatus bool
	calendars     map[CommitmentType]Calendar
	skills        *SkillCategorizer
	experience    *SkillCategorizer
}

// Option customizes engine construction.
type Option func(*engineOptions)

type engineOptions struct {
	calendars          map[CommitmentType]Calendar
	skillsTaxonomy     []Category
	experienceTaxonomy []Category
}

// WithCalendar overrides the weekday calendar for one competition type.
func WithCalendar(ct CommitmentType, cal Calendar) Option {
	return func(o *engineOptions) {
		o.calendars[ct] = cal
	}
}

// WithCalendars replaces all competition calendars.
func WithCalendars(calendars map[CommitmentType]Calendar) Option {
	return func(o *engineOptions) {
		o.calendars = calendars
	}
}

// WithSkillsTaxonomy replaces the required-skills keyword taxonomy.
func WithSkillsTaxonomy(taxonomy []Category) Option {
	return func(o *engineOptions) {
		o.skillsTaxonomy = taxonomy
	}
}

// WithExperienceTaxonomy replaces the required-experience keyword taxonomy.
func WithExperienceTaxonomy(taxonomy []Category) Option {
	return func(o *engineOptions) {
		o.experienceTaxonomy = taxonomy
	}
}

// New builds an engine over an already-parsed role catalog. Every role
// starts at score zero with nothing eliminated. The catalog must be
// non-empty with unique role names.
func New(roles []RoleRecord, studentStatus bool, opts ...Option) (*Engine, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: empty role catalog", ErrDatasetLoad)
	}

	options := engineOptions{
		calendars:          DefaultCalendars(),
		skillsTaxonomy:     RequiredSkillsTaxonomy(),
		experienceTaxonomy: RequiredExperienceTaxonomy(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	skills, err := NewSkillCategorizer(options.skillsTaxonomy)
	if err != nil {
		return nil, fmt.Errorf("skills taxonomy: %w", err)
	}
	experience, err := NewSkillCategorizer(options.experienceTaxonomy)
	if err != nil {
		return nil, fmt.Errorf("experience taxonomy: %w", err)
	}

	e := &Engine{
		roles:         roles,
		scores:        make(map[string]int, len(roles)),
		eliminated:    make(map[string]bool),
		studentStatus: studentStatus,
		calendars:     options.calendars,
		skills:        skills,
		experience:    experience,
	}

	for i := range roles {
		name := roles[i].Name
		if _, exists := e.scores[name]; exists {
			return nil, fmt.Errorf("%w: duplicate role name %q", ErrDatasetLoad, name)
		}
		e.scores[name] = 0
	}

	return e, nil
}

// ProcessOptions carry per-answer scoring options.
type ProcessOptions struct {
	// CommitmentType selects the competition calendar for the time
	// commitment question. Empty defaults to district.
	CommitmentType CommitmentType

	// Eliminate removes roles that fail a rule instead of just scoring
	// them. Some rules eliminate unconditionally or never; see each rule.
	Eliminate bool
}

// Process applies the scoring rule for the given question id to every role.
// The answer is validated first, so a failed call leaves scores and
// eliminations untouched and the question can be re-asked.
func (e *Engine) Process(questionID int, answer string, opts ProcessOptions) error {
	if questionID < 0 || questionID >= len(questionKinds) {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}

	ct := opts.CommitmentType
	if ct == "" {
		ct = CommitmentDistrict
	}

	switch questionKinds[questionID] {
	case QuestionAge:
		return e.scoreAge(answer, opts.Eliminate)
	case QuestionPhysicalActivity:
		return e.scorePhysicalActivity(answer, opts.Eliminate)
	case QuestionStanding:
		return e.scoreStanding(answer, opts.Eliminate)
	case QuestionMobility:
		return e.scoreMobility(answer, opts.Eliminate)
	case QuestionTimeCommitment:
		return e.scoreTimeCommitment(answer, ct, opts.Eliminate)
	case QuestionWorkPreference:
		return e.scoreWorkPreference(answer, opts.Eliminate)
	case QuestionLeadership:
		return e.scoreLeadership(answer, opts.Eliminate)
	case QuestionPriorExperience:
		return e.scorePriorExperience(answer)
	case QuestionGameKnowledge:
		return e.scoreGameKnowledge(answer, opts.Eliminate)
	case QuestionRequiredSkills:
		return e.scoreRequiredSkills(answer, opts.Eliminate)
	case QuestionRequiredExperience:
		return e.scoreRequiredExperience(answer)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
}

// addScore adds delta to a role's running score.
func (e *Engine) addScore(name string, delta int) {
	e.scores[name] += delta
}

// eliminate removes a role from active consideration. Elimination is
// idempotent and permanent for the life of the engine; the role keeps its
// score as a fallback source.
func (e *Engine) eliminate(name string) {
	if e.eliminated[name] {
		return
	}
	e.eliminated[name] = true
	e.eliminatedOrder = append(e.eliminatedOrder, name)
}

// Score returns a role's current score.
func (e *Engine) Score(name string) int {
	return e.scores[name]
}

// RemainingCount returns the number of non-eliminated roles.
func (e *Engine) RemainingCount() int {
	return len(e.roles) - len(e.eliminatedOrder)
}

// EliminatedRoles returns the eliminated role names in elimination order.
func (e *Engine) EliminatedRoles() []string {
	out := make([]string, len(e.eliminatedOrder))
	copy(out, e.eliminatedOrder)
	return out
}

// Reset clears all scores and eliminations, returning the engine to its
// just-constructed state over the same catalog.
func (e *Engine) Reset() {
	for i := range e.roles {
		e.scores[e.roles[i].Name] = 0
	}
	e.eliminated = make(map[string]bool)
	e.eliminatedOrder = nil
}

// Results holds the ranked recommendation lists, each a comma-joined list
// of role names or the literal "None".
type Results struct {
	BestFit  string `json:"best-fit roles"`
	NextBest string `json:"next-best roles"`
}

// rankedNames returns role names sorted by score descending. Ties keep
// catalog order. When activeOnly is set, eliminated roles are excluded.
func (e *Engine) rankedNames(activeOnly bool) []string {
	names := make([]string, 0, len(e.roles))
	for i := range e.roles {
		name := e.roles[i].Name
		if activeOnly && e.eliminated[name] {
			continue
		}
		names = append(names, name)
	}

	sort.SliceStable(names, func(a, b int) bool {
		return e.scores[names[a]] > e.scores[names[b]]
	})
	return names
}

// TopMatches returns the n best-fit roles among active roles, backfilled
// from the full scoreboard when too few remain. With every role eliminated,
// the best-fit list falls back to the full scoreboard ranking. Reading
// results does not change engine state; Process can still be called after.
func (e *Engine) TopMatches(n int) Results {
	if n <= 0 {
		n = DefaultTopMatches
	}

	active := e.rankedNames(true)
	if len(active) == 0 {
		all := e.rankedNames(false)
		if len(all) > n {
			all = all[:n]
		}
		return Results{BestFit: strings.Join(all, ", "), NextBest: noneResult}
	}

	bestCount := n
	if len(active) < bestCount {
		bestCount = len(active)
	}
	best := active[:bestCount]

	results := Results{
		BestFit:  strings.Join(best, ", "),
		NextBest: noneResult,
	}

	if len(active) < n {
		listed := make(map[string]bool, len(best))
		for _, name := range best {
			listed[name] = true
		}

		next := make([]string, 0, n-bestCount)
		for _, name := range e.rankedNames(false) {
			if listed[name] {
				continue
			}
			next = append(next, name)
			if len(next) == n-bestCount {
				break
			}
		}
		if len(next) > 0 {
			results.NextBest = strings.Join(next, ", ")
		}
	}

	return results
}

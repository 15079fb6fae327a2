package matching

import (
	"fmt"
	"strings"
)

// scoreRequiredSkills matches the user's declared skill category against
// each role's required-skills text, categorized by the skills taxonomy.
func (e *Engine) scoreRequiredSkills(answer string, eliminate bool) error {
	return e.scoreRequirementCategory(e.skills, RoleRecord.skillsField, answer, ScoreSkillCategoryMatch, eliminate)
}

// scoreRequiredExperience matches the user's declared experience category
// against each role's required-experience text. Unlike skills, a mismatch
// never eliminates: experience gaps are a soft signal only.
func (e *Engine) scoreRequiredExperience(answer string) error {
	return e.scoreRequirementCategory(e.experience, RoleRecord.experienceField, answer, ScoreExperienceCategoryMatch, false)
}

func (r RoleRecord) skillsField() string     { return r.RequiredSkills }
func (r RoleRecord) experienceField() string { return r.RequiredExperience }

// scoreRequirementCategory is the shared mechanism behind the skills and
// experience rules. Each role's requirement text is reduced to its top
// taxonomy category; a role whose top category is in the user's set (their
// answer plus the implicit "NONE") earns points.
//
// Boolean requirement fields short-circuit the categorizer: false maps to
// "NONE", while a bare true is ambiguous and aborts the call.
func (e *Engine) scoreRequirementCategory(cat *SkillCategorizer, field func(RoleRecord) string, answer string, points int, eliminate bool) error {
	userSkills := map[string]bool{
		strings.TrimSpace(answer): true,
		CategoryNone:              true,
	}

	for i := range e.roles {
		role := &e.roles[i]
		requirement := strings.TrimSpace(field(*role))

		var top string
		switch {
		case requirement == "":
			continue
		case isFalse(requirement):
			top = CategoryNone
		case isBareTrue(requirement):
			return fmt.Errorf("%w: role %q has a bare true requirement with no text to categorize", ErrAmbiguousRequirement, role.Name)
		default:
			best, ok := cat.TopCategory(cat.Categorize(requirement))
			if !ok {
				continue
			}
			top = best
		}

		if userSkills[top] {
			e.addScore(role.Name, points)
		} else if eliminate {
			e.eliminate(role.Name)
		}
	}

	return nil
}

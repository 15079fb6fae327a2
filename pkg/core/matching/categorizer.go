package matching

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is one named bucket in a keyword taxonomy.
type Category struct {
	Name     string
	Keywords []string
}

// NoCategory is the sentinel returned by TopCategory for an empty score map.
const NoCategory = ""

// CategoryNone is the taxonomy label for "no requirements". Boolean-false
// requirement fields map to it directly, without running the matcher.
const CategoryNone = "NONE"

// SkillCategorizer scores free-text requirement strings against a keyword
// taxonomy using whole-word, case-insensitive matching. Category order is
// significant: ties in TopCategory go to the earlier category.
type SkillCategorizer struct {
	categories []string
	patterns   map[string]*regexp.Regexp
}

// NewSkillCategorizer compiles one whole-word matcher per category.
// Categories with no keywords are rejected.
func NewSkillCategorizer(taxonomy []Category) (*SkillCategorizer, error) {
	c := &SkillCategorizer{
		categories: make([]string, 0, len(taxonomy)),
		patterns:   make(map[string]*regexp.Regexp, len(taxonomy)),
	}

	for _, cat := range taxonomy {
		escaped := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			if kw == "" {
				continue
			}
			escaped = append(escaped, regexp.QuoteMeta(kw))
		}
		if len(escaped) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", cat.Name)
		}

		pattern, err := regexp.Compile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for category %q: %w", cat.Name, err)
		}

		c.categories = append(c.categories, cat.Name)
		c.patterns[cat.Name] = pattern
	}

	return c, nil
}

// Categorize counts keyword hits per category in the given text. A phrase
// appearing in several categories' keyword lists counts toward each of them.
// Empty input yields an empty map.
func (c *SkillCategorizer) Categorize(text string) map[string]int {
	if text == "" {
		return map[string]int{}
	}

	scores := make(map[string]int, len(c.categories))
	for _, name := range c.categories {
		scores[name] = len(c.patterns[name].FindAllString(text, -1))
	}
	return scores
}

// TopCategory returns the category with the highest hit count, breaking ties
// by taxonomy order. It returns (NoCategory, false) for an empty score map;
// an all-zero map still yields the first category.
func (c *SkillCategorizer) TopCategory(scores map[string]int) (string, bool) {
	if len(scores) == 0 {
		return NoCategory, false
	}

	best := NoCategory
	bestCount := -1
	for _, name := range c.categories {
		count, ok := scores[name]
		if !ok {
			continue
		}
		if count > bestCount {
			best = name
			bestCount = count
		}
	}
	if bestCount < 0 {
		return NoCategory, false
	}
	return best, true
}

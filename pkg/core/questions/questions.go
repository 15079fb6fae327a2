// Package questions defines the assessment questionnaire: the fixed set of
// questions, their input types, and their answer options. Question ids line
// up with the matching engine's scoring rules, so id N's answer is scored by
// rule N.
package questions

import (
	"errors"
	"fmt"
)

// InputType tells the frontend how to render a question.
type InputType string

const (
	// TypeDropdown is a dropdown with a custom prompt.
	TypeDropdown InputType = "custom-dropdown"

	// TypeSelect2 is a binary choice (Yes/No).
	TypeSelect2 InputType = "select-2"

	// TypeSelect3 is a three-option choice (Yes/No/No Preference).
	TypeSelect3 InputType = "select-3"

	// TypeMultiSelect allows multiple selections.
	TypeMultiSelect InputType = "multiselect"
)

// ErrUnknownQuestion is returned for ids outside the catalog.
var ErrUnknownQuestion = errors.New("unknown question id")

// Question is one assessment question with its display metadata.
type Question struct {
	ID          int       `json:"id"`
	Key         string    `json:"key"`
	Text        string    `json:"question"`
	Type        InputType `json:"type"`
	Options     []string  `json:"options,omitempty"`
	Prompt      string    `json:"prompt,omitempty"`
	Description string    `json:"description,omitempty"`
}

var catalog = []Question{
	{
		ID:      0,
		Key:     "age",
		Text:    "What is your age?",
		Type:    TypeDropdown,
		Options: []string{"13 to 15 years old", "16 to 17 years old", "18 and older"},
		Prompt:  "Select your age",
	},
	{
		ID:      1,
		Key:     "physical_ability",
		Text:    "Do you prefer roles with physical activity?",
		Type:    TypeSelect3,
		Options: []string{"Yes", "No", "No Preference"},
	},
	{
		ID:      2,
		Key:     "physical_ability_stand",
		Text:    "Are you able to stand for long periods of time?",
		Type:    TypeSelect2,
		Options: []string{"Yes", "No"},
	},
	{
		ID:      3,
		Key:     "physical_ability_move",
		Text:    "Are you able to move around for long periods of time (e.g., walking, lifting)?",
		Type:    TypeSelect2,
		Options: []string{"Yes", "No"},
	},
	{
		ID:          4,
		Key:         "availability",
		Text:        "How many days are you available to volunteer for?",
		Type:        TypeMultiSelect,
		Options:     []string{"Friday", "Saturday", "Sunday"},
		Prompt:      "Select your availability",
		Description: "You can select multiple answers.",
	},
	{
		ID:      5,
		Key:     "working_preference",
		Text:    "Do you prefer working behind the scenes, front-facing, or no preference?",
		Type:    TypeSelect3,
		Options: []string{"BTS", "Front-facing", "No Preference"},
	},
	{
		ID:      6,
		Key:     "leadership_preference",
		Text:    "Do you prefer roles with leadership responsibilities?",
		Type:    TypeSelect3,
		Options: []string{"Yes", "No", "No Preference"},
	},
	{
		ID:      7,
		Key:     "prior_experience",
		Text:    "Do you have any prior experience with FIRST, volunteering or participating in the competitions?",
		Type:    TypeSelect2,
		Options: []string{"Yes", "No"},
	},
	{
		ID:          8,
		Key:         "game_knowledge",
		Text:        "How much knowledge do you have of the FIRST Robotics Competition and game rules?",
		Type:        TypeDropdown,
		Options:     []string{"None", "Limited", "Average", "Thorough"},
		Prompt:      "Select your level of knowledge",
		Description: "Select one option from the dropdown.",
	},
	{
		ID:   9,
		Key:  "required_skills",
		Text: "Which of the following required skills do you have?",
		Type: TypeMultiSelect,
		Options: []string{
			"Basic computer literacy",
			"Programming (C++, Java, Python, or LabVIEW)",
			"Photo and video editing",
			"Control systems and diagnostics",
			"Technical writing",
			"Event coordination",
			"FIRST Robotics safety protocol compliance",
			"None",
		},
		Prompt:      "Select your skills",
		Description: "You can select multiple answers.",
	},
	{
		ID:   10,
		Key:  "experience",
		Text: "Which of the following experiences do you have?",
		Type: TypeMultiSelect,
		Options: []string{
			"FIRST Robotics Competition Control System experience",
			"4 years of FIRST Robotics Competition referee experience",
			"2 years of FIRST robot build experience",
			"Event management experience",
			"3 years of Robotics Competition judging experience",
			"Technical inspection experience",
			"None",
		},
		Prompt:      "Select your experience",
		Description: "You can select multiple answers.",
	},
}

// Total returns the number of questions in the assessment.
func Total() int {
	return len(catalog)
}

// Get returns the question with the given id.
func Get(id int) (Question, error) {
	if id < 0 || id >= len(catalog) {
		return Question{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	return catalog[id], nil
}

// ByKey returns the question with the given key name.
func ByKey(key string) (Question, bool) {
	for _, q := range catalog {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// All returns the questions in presentation order.
func All() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// IsValidID reports whether id is within the catalog.
func IsValidID(id int) bool {
	return id >= 0 && id < len(catalog)
}

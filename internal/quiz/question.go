package quiz

import (
	"slices"
	"strings"
	"unicode"
)

// Option is one multiple-choice line, labelled a to d.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is the parsed form of one block. A non-nil Problem means the block
// is malformed: it is shown to the user but never scored.
type Question struct {
	Prompt       string
	Options      []Option
	CorrectLabel string
	Problem      error
}

func (q Question) IsMalformed() bool {
	return q.Problem != nil
}

func (q Question) HasOption(label string) bool {
	for _, o := range q.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// leadingLetter returns the first letter of s, lower-cased, or "" if s has none.
func leadingLetter(s string) string {
	i := strings.IndexFunc(s, unicode.IsLetter)
	if i < 0 {
		return ""
	}
	for _, r := range s[i:] {
		return string(unicode.ToLower(r))
	}
	return ""
}

// selectionLabel accepts a bare label ("b", "B") or a label with its option
// text ("b)", "b) 4") and returns the lower-cased label. Anything else
// yields "".
func selectionLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	label := strings.ToLower(s[:1])
	if !slices.Contains(optionLabels, label) {
		return ""
	}
	if len(s) > 1 && s[1] != ')' {
		return ""
	}
	return label
}

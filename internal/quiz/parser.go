package quiz

import (
	"errors"
	"strings"
)

const (
	blockSeparator = "\n\n"
	promptMarker   = "q:"
	answerMarker   = "Answer:"
)

var optionLabels = []string{"a", "b", "c", "d"}

// Parse converts a raw model response into one Question per blank-line
// separated block, in order. It never fails: a block missing its prompt,
// options or answer comes back with Problem set.
func Parse(raw string) []Question {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	blocks := strings.Split(text, blockSeparator)
	questions := make([]Question, 0, len(blocks))
	for _, block := range blocks {
		questions = append(questions, parseBlock(block))
	}
	return questions
}

func parseBlock(block string) Question {
	var (
		q          Question
		havePrompt bool
		haveAnswer bool
	)

	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		trimmed := strings.TrimSpace(line)

		if !havePrompt && len(trimmed) >= len(promptMarker) && strings.EqualFold(trimmed[:len(promptMarker)], promptMarker) {
			q.Prompt = strings.TrimSpace(trimmed[len(promptMarker):])
			havePrompt = true
		}

		if label, ok := optionLabel(trimmed); ok {
			q.Options = append(q.Options, Option{
				Label: label,
				Text:  strings.TrimSpace(trimmed[2:]),
			})
		}

		if !haveAnswer && strings.Contains(line, answerMarker) {
			haveAnswer = true
			q.CorrectLabel = answerLabel(line)
		}
	}

	var problems []error
	if !havePrompt {
		problems = append(problems, ErrMissingPrompt)
	}
	if len(q.Options) == 0 {
		problems = append(problems, ErrMissingOptions)
	}
	if !haveAnswer || q.CorrectLabel == "" {
		problems = append(problems, ErrMissingAnswer)
	}

	switch {
	case len(problems) == 1:
		q.Problem = problems[0]
	case len(problems) > 1:
		q.Problem = errors.Join(problems...)
	case !q.HasOption(q.CorrectLabel):
		q.Problem = ErrAnswerLabelMismatch
	}

	return q
}

// optionLabel reports whether a trimmed line starts with one of "a)".."d)".
func optionLabel(trimmed string) (string, bool) {
	if len(trimmed) < 2 || trimmed[1] != ')' {
		return "", false
	}
	for _, label := range optionLabels {
		if trimmed[:1] == label {
			return label, true
		}
	}
	return "", false
}

// answerLabel keeps what follows the last colon, e.g. "b)" or "**b)**", and
// reduces it to its leading letter.
func answerLabel(line string) string {
	value := line[strings.LastIndex(line, ":")+1:]
	return leadingLetter(strings.ToLower(strings.TrimSpace(value)))
}

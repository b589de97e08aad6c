package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedQuestion marks a block that cannot be scored. It is carried
	// on the Question, never returned from Parse.
	ErrMalformedQuestion = errors.New("malformed question")

	ErrMissingPrompt       = fmt.Errorf("%w: missing prompt line", ErrMalformedQuestion)
	ErrMissingOptions      = fmt.Errorf("%w: missing option lines", ErrMalformedQuestion)
	ErrMissingAnswer       = fmt.Errorf("%w: missing answer line", ErrMalformedQuestion)
	ErrAnswerLabelMismatch = fmt.Errorf("%w: answer label does not match any option", ErrMalformedQuestion)

	ErrUncheckableSelection = errors.New("cannot check a question with no selection")
	ErrUnknownOption        = errors.New("unknown option label")
	ErrQuestionOutOfRange   = errors.New("question index out of range")

	ErrNoQuiz        = errors.New("no quiz generated for this session")
	ErrEmptyTopic    = errors.New("topic is required")
	ErrEmptyResponse = errors.New("empty response from quiz generator")
)

package microlearning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/kina-lambda/internal/gemini"
)

type Step int

const (
	StepIntro Step = iota + 1
	StepSuggestion
	StepChat
)

func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepSuggestion:
		return "suggestion"
	case StepChat:
		return "chat"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

const maxConfidence = 10

var (
	ErrWrongStep         = errors.New("operation not allowed at the current step")
	ErrEmptyTopic        = errors.New("topic is required")
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 10")
	ErrEmptyMessage      = errors.New("message is required")
)

// Wizard is the micro-learning flow of one session:
// intro (topic and confidence) -> suggestion -> chat with the study twin.
type Wizard struct {
	Step       Step
	Topic      string
	Confidence int
	Suggestion string
	History    []gemini.Turn
}

func newWizard() *Wizard {
	return &Wizard{Step: StepIntro}
}

func (w *Wizard) expect(step Step) error {
	if w.Step != step {
		return fmt.Errorf("%w: at %s, need %s", ErrWrongStep, w.Step, step)
	}
	return nil
}

func (w *Wizard) start(topic string, confidence int) error {
	if err := w.expect(StepIntro); err != nil {
		return err
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}
	if confidence < 0 || confidence > maxConfidence {
		return ErrInvalidConfidence
	}

	w.Topic = topic
	w.Confidence = confidence
	w.Step = StepSuggestion
	return nil
}

func (w *Wizard) ask() error {
	if err := w.expect(StepSuggestion); err != nil {
		return err
	}
	w.Step = StepChat
	return nil
}

func (w *Wizard) record(message, reply string) {
	w.History = append(w.History,
		gemini.Turn{Role: gemini.RoleUser, Text: message},
		gemini.Turn{Role: gemini.RoleModel, Text: reply},
	)
}

func (w *Wizard) reset() {
	*w = *newWizard()
}

func (w *Wizard) view() *WizardView {
	history := make([]gemini.Turn, len(w.History))
	copy(history, w.History)

	return &WizardView{
		Step:       w.Step.String(),
		Topic:      w.Topic,
		Confidence: w.Confidence,
		Suggestion: w.Suggestion,
		History:    history,
	}
}

type WizardView struct {
	Step       string        `json:"step"`
	Topic      string        `json:"topic,omitempty"`
	Confidence int           `json:"confidence"`
	Suggestion string        `json:"suggestion,omitempty"`
	History    []gemini.Turn `json:"history"`
}

func suggestionPrompt(topic string, confidence int) string {
	return fmt.Sprintf(
		"User is studying: %s, confidence: %d/10. Suggest action plan, style-based activities & encouragement.",
		topic, confidence,
	)
}

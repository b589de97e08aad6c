package tutor

import (
	"time"

	"github.com/saulo-duarte/kina-lambda/internal/translate"
)

type LearningPathRequest struct {
	Language  string        `json:"language"`
	Knowledge string        `json:"knowledge"`
	Goal      string        `json:"goal"`
	Style     LearningStyle `json:"style"`
}

type ChunkRequest struct {
	Content string     `json:"content"`
	Style   ChunkStyle `json:"style"`
}

type ScenarioRequest struct {
	Topic   string         `json:"topic"`
	Persona Persona        `json:"persona"`
	Tone    Tone           `json:"tone"`
	Length  ScenarioLength `json:"length"`
}

// Document is a generated markdown text offered for display and download.
type Document struct {
	Title       string             `json:"title"`
	Filename    string             `json:"filename"`
	Language    translate.Language `json:"language"`
	Content     string             `json:"content"`
	GeneratedAt time.Time          `json:"generated_at"`
}

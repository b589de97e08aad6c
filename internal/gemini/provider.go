package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("empty response from model")

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of a chat history.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[GEMINI] Raw response:\n%s", raw)

	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

func (p *geminiProvider) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	log := config.WithContext(ctx)

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Role)))
	}

	chat, err := p.client.Chats.Create(ctx, p.model, nil, contents)
	if err != nil {
		log.WithError(err).Error("Failed to open Gemini chat")
		return "", fmt.Errorf("failed to create chat: %w", err)
	}

	result, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		log.WithError(err).Error("Gemini chat message failed")
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}

	reply := result.Text()
	if reply == "" {
		return "", ErrEmptyResponse
	}

	log.WithField("history_turns", len(history)).Debug("[GEMINI] Chat reply received")
	return reply, nil
}

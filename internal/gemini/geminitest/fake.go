// Package geminitest provides a scripted gemini.Provider for tests.
package geminitest

import (
	"context"
	"sync"

	"github.com/saulo-duarte/kina-lambda/internal/gemini"
)

type Fake struct {
	mu sync.Mutex

	Reply string
	Err   error

	Prompts   []string
	Histories [][]gemini.Turn
	Messages  []string
}

func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

func (f *Fake) Chat(_ context.Context, history []gemini.Turn, message string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Histories = append(f.Histories, append([]gemini.Turn(nil), history...))
	f.Messages = append(f.Messages, message)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

func (f *Fake) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Prompts) == 0 {
		return ""
	}
	return f.Prompts[len(f.Prompts)-1]
}

package tutor_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/kina-lambda/internal/gemini/geminitest"
	"github.com/saulo-duarte/kina-lambda/internal/translate"
	"github.com/saulo-duarte/kina-lambda/internal/tutor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocalizer struct {
	langs []translate.Language
	err   error
}

func (f *fakeLocalizer) Localize(_ context.Context, text string, lang translate.Language) (string, error) {
	f.langs = append(f.langs, lang)
	if f.err != nil {
		return "", f.err
	}
	if lang == translate.English {
		return text, nil
	}
	return "(" + string(lang) + ") " + text, nil
}

func TestLearningPlan(t *testing.T) {
	gen := &geminitest.Fake{Reply: "## Stage 1"}
	loc := &fakeLocalizer{}
	svc := tutor.NewService(gen, loc)

	doc, err := svc.LearningPlan(context.Background(), tutor.LearningPathRequest{
		Language:  "spanish",
		Knowledge: "basic python",
		Goal:      "learn machine learning",
		Style:     tutor.StyleVisual,
	})
	require.NoError(t, err)

	assert.Equal(t, "(spanish) ## Stage 1", doc.Content)
	assert.Equal(t, "learning_plan.txt", doc.Filename)
	assert.Equal(t, translate.Spanish, doc.Language)

	prompt := gen.LastPrompt()
	assert.Contains(t, prompt, "Current knowledge: basic python")
	assert.Contains(t, prompt, "Goal: learn machine learning")
	assert.Contains(t, prompt, "Preferred learning style: Visual")
}

func TestLearningPlanDefaultsToEnglish(t *testing.T) {
	loc := &fakeLocalizer{}
	svc := tutor.NewService(&geminitest.Fake{Reply: "plan"}, loc)

	doc, err := svc.LearningPlan(context.Background(), tutor.LearningPathRequest{Goal: "go", Style: tutor.StyleMixed})
	require.NoError(t, err)
	assert.Equal(t, "plan", doc.Content)
	assert.Equal(t, []translate.Language{translate.English}, loc.langs)
}

func TestLearningPlanValidation(t *testing.T) {
	gen := &geminitest.Fake{Reply: "plan"}
	svc := tutor.NewService(gen, &fakeLocalizer{})

	tests := map[string]tutor.LearningPathRequest{
		"UnknownLanguage": {Language: "klingon", Goal: "x", Style: tutor.StyleMixed},
		"UnknownStyle":    {Goal: "x", Style: "Osmosis"},
		"MissingGoal":     {Goal: "  ", Style: tutor.StyleReading},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.LearningPlan(context.Background(), req)
			assert.ErrorIs(t, err, tutor.ErrInvalidInput)
		})
	}
	assert.Empty(t, gen.Prompts)
}

func TestLearningPlanTranslationFailure(t *testing.T) {
	boom := errors.New("translate down")
	svc := tutor.NewService(&geminitest.Fake{Reply: "plan"}, &fakeLocalizer{err: boom})

	_, err := svc.LearningPlan(context.Background(), tutor.LearningPathRequest{Language: "french", Goal: "x", Style: tutor.StyleMixed})
	assert.ErrorIs(t, err, boom)
}

func TestChunkContent(t *testing.T) {
	gen := &geminitest.Fake{Reply: "## Chunk"}
	svc := tutor.NewService(gen, &fakeLocalizer{})

	doc, err := svc.ChunkContent(context.Background(), tutor.ChunkRequest{Content: "photosynthesis...", Style: tutor.ChunkByKeyConcepts})
	require.NoError(t, err)
	assert.Equal(t, "chunked_content.txt", doc.Filename)
	assert.Contains(t, gen.LastPrompt(), "based on: By Key Concepts")

	_, err = svc.ChunkContent(context.Background(), tutor.ChunkRequest{Content: "", Style: tutor.ChunkByTopic})
	assert.ErrorIs(t, err, tutor.ErrInvalidInput)
	_, err = svc.ChunkContent(context.Background(), tutor.ChunkRequest{Content: "x", Style: "By Vibes"})
	assert.ErrorIs(t, err, tutor.ErrInvalidInput)
}

func TestBuildScenario(t *testing.T) {
	gen := &geminitest.Fake{Reply: "**You:** hi"}
	svc := tutor.NewService(gen, &fakeLocalizer{})

	doc, err := svc.BuildScenario(context.Background(), tutor.ScenarioRequest{
		Topic:   "Giving constructive feedback",
		Persona: tutor.PersonaManager,
		Tone:    tutor.ToneSupportive,
		Length:  tutor.LengthShort,
	})
	require.NoError(t, err)
	assert.Equal(t, "learning_scenario.txt", doc.Filename)
	assert.Contains(t, gen.LastPrompt(), `alternating between "You" and "Manager"`)

	_, err = svc.BuildScenario(context.Background(), tutor.ScenarioRequest{Topic: "x", Persona: "Pirate", Tone: tutor.ToneFormal, Length: tutor.LengthLong})
	assert.ErrorIs(t, err, tutor.ErrInvalidInput)
}

func TestHandlerDownload(t *testing.T) {
	svc := tutor.NewService(&geminitest.Fake{Reply: "## Scenario"}, &fakeLocalizer{})
	h := tutor.ScenarioRoutes(tutor.NewHandler(svc))
	body := `{"topic":"feedback","persona":"Learner","tone":"Casual","length":"Medium (3-4 turns)"}`

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/?download=true", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "learning_scenario.txt")
	assert.Equal(t, "## Scenario", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content":"## Scenario"`)
}

func TestHandlerErrors(t *testing.T) {
	svc := tutor.NewService(&geminitest.Fake{Err: errors.New("down")}, &fakeLocalizer{})
	h := tutor.ChunkerRoutes(tutor.NewHandler(svc))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"x","style":"By Topic"}`)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"x","style":"nope"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

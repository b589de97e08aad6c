package quiz_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/kina-lambda/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedBlock = `Q: What is 2+2?
a) 3
b) 4
c) 5
d) 6
Answer: b)`

const sampleQuiz = `Q: What is 2+2?
a) 3
b) 4
c) 5
d) 6
Answer: b)

Q: Which planet is known as the red planet?
a) Venus
b) Mars
c) Jupiter
d) Saturn
Answer: b)

Q: What is the boiling point of water at sea level?
a) 90°C
b) 100°C
c) 110°C
d) 120°C

Q: Which gas do plants absorb?
a) Oxygen
b) Nitrogen
c) Carbon dioxide
d) Helium
Answer: c)`

func TestParseWellFormedBlock(t *testing.T) {
	questions := quiz.Parse(wellFormedBlock)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "What is 2+2?", q.Prompt)
	assert.Equal(t, []quiz.Option{
		{Label: "a", Text: "3"},
		{Label: "b", Text: "4"},
		{Label: "c", Text: "5"},
		{Label: "d", Text: "6"},
	}, q.Options)
	assert.Equal(t, "b", q.CorrectLabel)
	assert.False(t, q.IsMalformed())
	assert.NoError(t, q.Problem)
}

func TestParseIsDeterministic(t *testing.T) {
	assert.Equal(t, quiz.Parse(sampleQuiz), quiz.Parse(sampleQuiz))
}

func TestParsePreservesBlockCountAndOrder(t *testing.T) {
	questions := quiz.Parse(sampleQuiz)
	require.Len(t, questions, 4)

	assert.Equal(t, "What is 2+2?", questions[0].Prompt)
	assert.Equal(t, "Which planet is known as the red planet?", questions[1].Prompt)
	assert.Equal(t, "What is the boiling point of water at sea level?", questions[2].Prompt)
	assert.Equal(t, "Which gas do plants absorb?", questions[3].Prompt)
}

func TestParseToleratesOneGarbledBlock(t *testing.T) {
	questions := quiz.Parse(sampleQuiz)
	require.Len(t, questions, 4)

	for i, q := range questions {
		if i == 2 {
			assert.True(t, q.IsMalformed(), "question %d should be malformed", i+1)
			assert.ErrorIs(t, q.Problem, quiz.ErrMissingAnswer)
			assert.ErrorIs(t, q.Problem, quiz.ErrMalformedQuestion)
			assert.Equal(t, "What is the boiling point of water at sea level?", q.Prompt)
			assert.Len(t, q.Options, 4)
			continue
		}
		assert.False(t, q.IsMalformed(), "question %d should parse", i+1)
	}
}

func TestParseMalformedCauses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []error
	}{
		{
			name:  "MissingPrompt",
			input: "a) 3\nb) 4\nAnswer: b)",
			want:  []error{quiz.ErrMissingPrompt},
		},
		{
			name:  "MissingOptions",
			input: "Q: What is 2+2?\nAnswer: b)",
			want:  []error{quiz.ErrMissingOptions},
		},
		{
			name:  "MissingAnswer",
			input: "Q: What is 2+2?\na) 3\nb) 4",
			want:  []error{quiz.ErrMissingAnswer},
		},
		{
			name:  "EmptyAnswer",
			input: "Q: What is 2+2?\na) 3\nb) 4\nAnswer:",
			want:  []error{quiz.ErrMissingAnswer},
		},
		{
			name:  "OnlyProse",
			input: "Sure! Here is your quiz about planets.",
			want:  []error{quiz.ErrMissingPrompt, quiz.ErrMissingOptions, quiz.ErrMissingAnswer},
		},
		{
			name:  "AnswerLabelMismatch",
			input: "Q: What is 2+2?\na) 3\nb) 4\nAnswer: d)",
			want:  []error{quiz.ErrAnswerLabelMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := quiz.Parse(tt.input)
			require.Len(t, questions, 1)

			q := questions[0]
			require.True(t, q.IsMalformed())
			assert.True(t, errors.Is(q.Problem, quiz.ErrMalformedQuestion))
			for _, want := range tt.want {
				assert.ErrorIs(t, q.Problem, want)
			}
		})
	}
}

func TestParseMismatchIsDistinctFromMissingAnswer(t *testing.T) {
	q := quiz.Parse("Q: What is 2+2?\na) 3\nb) 4\nAnswer: d)")[0]

	assert.ErrorIs(t, q.Problem, quiz.ErrAnswerLabelMismatch)
	assert.NotErrorIs(t, q.Problem, quiz.ErrMissingAnswer)
	assert.Equal(t, "d", q.CorrectLabel)
}

func TestParseLineRules(t *testing.T) {
	t.Run("PromptMarkerIsCaseInsensitiveAndIndented", func(t *testing.T) {
		q := quiz.Parse("   q:   Lower case marker  \na) yes\nAnswer: a)")[0]
		assert.Equal(t, "Lower case marker", q.Prompt)
		assert.False(t, q.IsMalformed())
	})

	t.Run("FirstPromptLineWins", func(t *testing.T) {
		q := quiz.Parse("Q: first\nQ: second\na) x\nAnswer: a)")[0]
		assert.Equal(t, "first", q.Prompt)
	})

	t.Run("OptionLabelsAreCaseSensitive", func(t *testing.T) {
		q := quiz.Parse("Q: pick\nA) upper\nb) lower\ne) out of range\nAnswer: b)")[0]
		assert.Equal(t, []quiz.Option{{Label: "b", Text: "lower"}}, q.Options)
	})

	t.Run("IndentedOptionsAreKept", func(t *testing.T) {
		q := quiz.Parse("Q: pick\n   a)   spaced   \nAnswer: a)")[0]
		assert.Equal(t, []quiz.Option{{Label: "a", Text: "spaced"}}, q.Options)
	})

	t.Run("DuplicateLabelsAreNotDeduplicated", func(t *testing.T) {
		q := quiz.Parse("Q: pick\na) one\na) two\nAnswer: a)")[0]
		assert.Len(t, q.Options, 2)
	})

	t.Run("AnswerUsesTextAfterLastColon", func(t *testing.T) {
		q := quiz.Parse("Q: pick\na) x\nc) y\nCorrect Answer: note: C)")[0]
		assert.Equal(t, "c", q.CorrectLabel)
		assert.False(t, q.IsMalformed())
	})

	t.Run("AnswerMarkdownIsIgnored", func(t *testing.T) {
		q := quiz.Parse("Q: pick\na) x\nb) y\n**Answer:** b)")[0]
		assert.Equal(t, "b", q.CorrectLabel)
	})

	t.Run("AnswerMarkerIsCaseSensitive", func(t *testing.T) {
		q := quiz.Parse("Q: pick\na) x\nanswer: a)")[0]
		assert.ErrorIs(t, q.Problem, quiz.ErrMissingAnswer)
	})

	t.Run("WindowsLineEndings", func(t *testing.T) {
		raw := strings.ReplaceAll(wellFormedBlock+"\n\n"+wellFormedBlock, "\n", "\r\n")
		questions := quiz.Parse(raw)
		require.Len(t, questions, 2)
		assert.False(t, questions[1].IsMalformed())
	})
}

func TestParseBlockSplitting(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, quiz.Parse(""))
		assert.Empty(t, quiz.Parse(" \n\n \n"))
	})

	t.Run("SurroundingWhitespaceIsTrimmed", func(t *testing.T) {
		questions := quiz.Parse("\n\n\n" + wellFormedBlock + "\n\n\n")
		require.Len(t, questions, 1)
		assert.False(t, questions[0].IsMalformed())
	})

	t.Run("ExtraBlankLineYieldsMalformedBlock", func(t *testing.T) {
		questions := quiz.Parse(wellFormedBlock + "\n\n\n\n" + wellFormedBlock)
		require.Len(t, questions, 3)
		assert.False(t, questions[0].IsMalformed())
		assert.True(t, questions[1].IsMalformed())
		assert.False(t, questions[2].IsMalformed())
	})

	t.Run("PreambleBecomesMalformedBlock", func(t *testing.T) {
		questions := quiz.Parse("Here is your quiz:\n\n" + wellFormedBlock)
		require.Len(t, questions, 2)
		assert.True(t, questions[0].IsMalformed())
		assert.False(t, questions[1].IsMalformed())
	})
}

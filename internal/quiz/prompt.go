package quiz

import "fmt"

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 10
)

const quizPromptTemplate = `
You are a quiz master.
Generate %d multiple choice questions (MCQs) for the topic: %s.
Each question must include:
- Question
- Four options (a, b, c, d)
- Correct answer line: Answer: x)
Separate questions with one blank line and do not add any other text.
Format:
Q: [question]
a) ...
b) ...
c) ...
d) ...
Answer: x)
`

func BuildPrompt(req GenerateRequest) string {
	count := req.Count
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	return fmt.Sprintf(quizPromptTemplate, count, req.Topic)
}

package tutor

import "fmt"

const learningPathPrompt = `
You are KINA, an expert AI tutor.
The user has the following:
- Current knowledge: %s
- Goal: %s
- Preferred learning style: %s

Please generate a full markdown learning roadmap that includes:
1. Stage-by-stage steps with estimated timelines.
2. Visual-style flow or layout described in text if user chose 'Visual'.
3. Three **specific YouTube videos** including titles and real video **hyperlinks**.
4. Recommended resources, tools or tutorials related to the goal.
5. Personalized study tips matching the selected learning style.

Format all sections clearly with markdown headers (##) and bullet points.
Example: [How Neural Networks Learn](https://www.youtube.com/watch?v=aircAruvnKk)
`

const chunkerPrompt = `
You are KINA, an expert instructional designer.
The user has pasted the following raw content:
---
%s
---
Please chunk this content into clear, labeled sections based on: %s.
Each chunk should include:
- A short heading (##)
- A short summary or key point
- (Optional) suggestion of what format this would work well in (e.g., video, quiz, flashcard)

Format the output in Markdown for readability.
`

const scenarioPrompt = `
You are KINA, an instructional designer assistant.

Please generate a realistic, dialogue-based learning scenario based on:
- Topic: %s
- Persona Role: %s
- Tone: %s
- Desired Length: %s

Structure the output like a roleplay, alternating between "You" and "%s".
Highlight learner decisions or challenges clearly.
Add markdown formatting for readability (bold names, headers, bullet points if helpful).
`

func BuildLearningPathPrompt(req LearningPathRequest) string {
	return fmt.Sprintf(learningPathPrompt, req.Knowledge, req.Goal, req.Style)
}

func BuildChunkerPrompt(req ChunkRequest) string {
	return fmt.Sprintf(chunkerPrompt, req.Content, req.Style)
}

func BuildScenarioPrompt(req ScenarioRequest) string {
	return fmt.Sprintf(scenarioPrompt, req.Topic, req.Persona, req.Tone, req.Length, req.Persona)
}

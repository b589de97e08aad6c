package tutor

type LearningStyle string

const (
	StyleVisual  LearningStyle = "Visual"
	StyleReading LearningStyle = "Reading"
	StyleHandsOn LearningStyle = "Hands-on"
	StyleMixed   LearningStyle = "Mixed"
)

var AllLearningStyles = []LearningStyle{StyleVisual, StyleReading, StyleHandsOn, StyleMixed}

func (s LearningStyle) IsValid() bool {
	return contains(AllLearningStyles, s)
}

type ChunkStyle string

const (
	ChunkByTopic       ChunkStyle = "By Topic"
	ChunkByObjective   ChunkStyle = "By Learning Objective"
	ChunkByKeyConcepts ChunkStyle = "By Key Concepts"
)

var AllChunkStyles = []ChunkStyle{ChunkByTopic, ChunkByObjective, ChunkByKeyConcepts}

func (s ChunkStyle) IsValid() bool {
	return contains(AllChunkStyles, s)
}

type Persona string

const (
	PersonaLearner Persona = "Learner"
	PersonaManager Persona = "Manager"
	PersonaSME     Persona = "Subject Matter Expert (SME)"
	PersonaPeer    Persona = "Peer/Colleague"
)

var AllPersonas = []Persona{PersonaLearner, PersonaManager, PersonaSME, PersonaPeer}

func (p Persona) IsValid() bool {
	return contains(AllPersonas, p)
}

type Tone string

const (
	ToneFormal      Tone = "Formal"
	ToneCasual      Tone = "Casual"
	ToneSupportive  Tone = "Supportive"
	ToneChallenging Tone = "Challenging"
)

var AllTones = []Tone{ToneFormal, ToneCasual, ToneSupportive, ToneChallenging}

func (t Tone) IsValid() bool {
	return contains(AllTones, t)
}

type ScenarioLength string

const (
	LengthShort  ScenarioLength = "Short (1-2 turns)"
	LengthMedium ScenarioLength = "Medium (3-4 turns)"
	LengthLong   ScenarioLength = "Long (5+ turns)"
)

var AllScenarioLengths = []ScenarioLength{LengthShort, LengthMedium, LengthLong}

func (l ScenarioLength) IsValid() bool {
	return contains(AllScenarioLengths, l)
}

func contains[T comparable](all []T, v T) bool {
	for _, a := range all {
		if a == v {
			return true
		}
	}
	return false
}

package translate

import (
	"fmt"
	"strings"
)

type Language string

const (
	English Language = "english"
	Spanish Language = "spanish"
	French  Language = "french"
	Chinese Language = "chinese"
)

var languageCodes = map[Language]string{
	English: "en",
	Spanish: "es",
	French:  "fr",
	Chinese: "zh-CN",
}

// ConverterLanguages are the targets offered by the language converter.
var ConverterLanguages = []Language{Spanish, French, Chinese}

func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := languageCodes[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return l, nil
}

func (l Language) Code() string {
	return languageCodes[l]
}

func (l Language) IsValid() bool {
	_, ok := languageCodes[l]
	return ok
}

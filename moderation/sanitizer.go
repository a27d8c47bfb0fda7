//go:generate go run go.uber.org/mock/mockgen -source=sanitizer.go -destination=../mocks/mock_sanitizer.go -package=mocks
package moderation

import (
	"log/slog"

	"github.com/abadojack/whatlanggo"
)

// minConfidence below which no language is reported.
const minConfidence = 0.5

// Sanitized is a message text ready to be stored.
type Sanitized struct {
	Text          string
	CensoredWords []string
	Lang          string
}

type ISanitizer interface {
	Sanitize(text string) Sanitized
}

// Sanitizer censors a text and tags it with its language.
type Sanitizer struct {
	moderator *Moderator
	log       *slog.Logger
}

func NewSanitizer(moderator *Moderator, log *slog.Logger) *Sanitizer {
	return &Sanitizer{moderator: moderator, log: log}
}

func (s *Sanitizer) Sanitize(text string) Sanitized {
	// Detection runs on the original text, masks would skew it.
	lang := DetectLanguage(text)
	censored, words := s.moderator.Censor(text)
	if len(words) > 0 {
		s.log.Info("Message censored", "words", len(words), "lang", lang)
	}
	return Sanitized{Text: censored, CensoredWords: words, Lang: lang}
}

// DetectLanguage returns the ISO 639-1 code of text, empty when unsure.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if info.Confidence < minConfidence {
		return ""
	}
	return info.Lang.Iso6391()
}

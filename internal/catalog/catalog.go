// Package catalog describes the speech models and voices the gateway
// advertises, and can probe a live Riva server for language support.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Model identifiers used by the stock Riva deployment.
const (
	ModelConformerStreaming = "conformer-streaming"
	ModelConformerOffline   = "conformer-offline"
	ModelFastpitchHifigan   = "fastpitch_hifigan"
)

// Models is the catalog payload served on /models.
type Models struct {
	ASRModels          map[string][]string `json:"asr_models"`
	TTSModels          map[string][]string `json:"tts_models"`
	DefaultASRModel    string              `json:"default_asr_model"`
	DefaultASRLanguage string              `json:"default_asr_language"`
	DefaultTTSModel    string              `json:"default_tts_model"`
	DefaultTTSLanguage string              `json:"default_tts_language"`
}

// Default returns the static catalog used when no live probe ran.
func Default() Models {
	return Models{
		ASRModels: map[string][]string{
			ModelConformerStreaming: {"en-US"},
			ModelConformerOffline:   {"en-US"},
		},
		TTSModels: map[string][]string{
			ModelFastpitchHifigan: {"en-US"},
		},
		DefaultASRModel:    ModelConformerStreaming,
		DefaultASRLanguage: "en-US",
		DefaultTTSModel:    ModelFastpitchHifigan,
		DefaultTTSLanguage: "en-US",
	}
}

// Voice is one synthesizable voice.
type Voice struct {
	Name         string `json:"name"`
	LanguageCode string `json:"language_code"`
}

// DefaultVoices lists the voices shipped with the stock Riva TTS models.
var DefaultVoices = []Voice{
	{Name: "English-US-Female-1", LanguageCode: "en-US"},
	{Name: "English-US-Male-1", LanguageCode: "en-US"},
}

// Voices returns the voices available for a language; an empty language
// returns everything.
func Voices(languageCode string) []Voice {
	languageCode = strings.TrimSpace(languageCode)
	if languageCode == "" {
		out := make([]Voice, len(DefaultVoices))
		copy(out, DefaultVoices)
		return out
	}
	var out []Voice
	for _, voice := range DefaultVoices {
		if strings.EqualFold(voice.LanguageCode, languageCode) {
			out = append(out, voice)
		}
	}
	return out
}

// DefaultVoice returns the first voice for a language, falling back to the
// catalog's first voice when the language has none.
func DefaultVoice(languageCode string) (Voice, bool) {
	voices := Voices(languageCode)
	if len(voices) > 0 {
		return voices[0], true
	}
	if len(DefaultVoices) > 0 {
		return DefaultVoices[0], true
	}
	return Voice{}, false
}

// ValidateLanguage rejects strings that do not parse as BCP 47 tags.
func ValidateLanguage(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}

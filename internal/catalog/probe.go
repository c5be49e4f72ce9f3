package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/voicegate/voicegate/internal/riva/rivapb"
)

// DefaultProbeLanguages is the candidate set tried against a live server.
var DefaultProbeLanguages = []string{
	"en-US", "en-GB", "es-ES", "es-US", "fr-FR", "de-DE", "it-IT",
	"pt-BR", "ru-RU", "zh-CN", "ja-JP", "ko-KR", "ar-AR", "hi-IN",
	"nl-NL", "nl-BE",
}

const probeTimeout = time.Second

// Probe asks the server which languages it will recognize by issuing
// empty offline requests per candidate and classifying the response.
// A clean reply or any complaint other than the vendor's "Unavailable
// model" wording means the language is deployed: the empty audio itself
// triggers an invalid-argument reply on supported models.
func Probe(ctx context.Context, client rivapb.RivaSpeechRecognitionClient, languages []string, logf func(string, ...any)) Models {
	if len(languages) == 0 {
		languages = DefaultProbeLanguages
	}

	var supported []string
	for _, lang := range languages {
		if client == nil {
			break
		}
		if logf != nil {
			logf("probing language %s", lang)
		}
		if probeLanguage(ctx, client, lang) {
			supported = append(supported, lang)
		}
	}
	sort.Strings(supported)

	models := Default()
	if len(supported) > 0 {
		models.ASRModels = map[string][]string{
			ModelConformerStreaming: supported,
			ModelConformerOffline:   append([]string(nil), supported...),
		}
		models.DefaultASRLanguage = supported[0]
		for _, lang := range supported {
			if lang == "en-US" {
				models.DefaultASRLanguage = "en-US"
				break
			}
		}
	} else if logf != nil {
		logf("no languages detected, defaulting to en-US")
	}
	return models
}

func probeLanguage(ctx context.Context, client rivapb.RivaSpeechRecognitionClient, lang string) bool {
	callCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req := &rivapb.RecognizeRequest{
		Config: &rivapb.RecognitionConfig{
			Encoding:        rivapb.AudioEncoding_LINEAR_PCM,
			SampleRateHertz: 16000,
			LanguageCode:    lang,
			MaxAlternatives: 1,
		},
	}
	_, err := client.Recognize(callCtx, req)
	if err == nil {
		return true
	}
	return !strings.Contains(err.Error(), "Unavailable model")
}

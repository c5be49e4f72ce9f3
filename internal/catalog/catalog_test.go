package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/voicegate/voicegate/internal/catalog"
	"github.com/voicegate/voicegate/internal/riva"
	"github.com/voicegate/voicegate/internal/riva/rivatest"
)

func TestDefaultCatalogShape(t *testing.T) {
	models := catalog.Default()
	if models.DefaultASRModel != catalog.ModelConformerStreaming {
		t.Fatalf("default asr model = %q", models.DefaultASRModel)
	}
	if langs := models.ASRModels[catalog.ModelConformerStreaming]; len(langs) == 0 || langs[0] != "en-US" {
		t.Fatalf("streaming languages = %v", langs)
	}
	if models.DefaultTTSModel != catalog.ModelFastpitchHifigan {
		t.Fatalf("default tts model = %q", models.DefaultTTSModel)
	}
}

func TestVoicesFilterByLanguage(t *testing.T) {
	voices := catalog.Voices("en-US")
	if len(voices) == 0 {
		t.Fatal("expected en-US voices")
	}
	for _, voice := range voices {
		if voice.LanguageCode != "en-US" {
			t.Fatalf("voice %q has language %q", voice.Name, voice.LanguageCode)
		}
	}
	if got := catalog.Voices("ja-JP"); len(got) != 0 {
		t.Fatalf("ja-JP voices = %v, want none", got)
	}
	if got := catalog.Voices(""); len(got) != len(catalog.DefaultVoices) {
		t.Fatalf("unfiltered voices = %d, want %d", len(got), len(catalog.DefaultVoices))
	}
}

func TestDefaultVoiceFallsBack(t *testing.T) {
	voice, ok := catalog.DefaultVoice("ja-JP")
	if !ok {
		t.Fatal("expected fallback voice")
	}
	if voice.Name != catalog.DefaultVoices[0].Name {
		t.Fatalf("fallback voice = %q", voice.Name)
	}
}

func TestValidateLanguage(t *testing.T) {
	if err := catalog.ValidateLanguage("en-US"); err != nil {
		t.Fatalf("en-US should be valid: %v", err)
	}
	if err := catalog.ValidateLanguage(""); err != nil {
		t.Fatalf("empty language should be allowed: %v", err)
	}
	if err := catalog.ValidateLanguage("!!nope!!"); err == nil {
		t.Fatal("expected error for malformed language tag")
	}
}

func TestProbeClassifiesLanguages(t *testing.T) {
	server := rivatest.Start(t)
	server.ASR.SupportedLanguages = map[string]bool{"en-US": true, "de-DE": true}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := riva.Dial(ctx, riva.Config{Addr: server.Addr})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	models := catalog.Probe(ctx, client.ASR(), []string{"en-US", "de-DE", "fr-FR"}, nil)

	langs := models.ASRModels[catalog.ModelConformerStreaming]
	if len(langs) != 2 || langs[0] != "de-DE" || langs[1] != "en-US" {
		t.Fatalf("probed languages = %v, want [de-DE en-US]", langs)
	}
	if models.DefaultASRLanguage != "en-US" {
		t.Fatalf("default language = %q, want en-US", models.DefaultASRLanguage)
	}
}

func TestProbeFallsBackToDefaults(t *testing.T) {
	server := rivatest.Start(t)
	server.ASR.SupportedLanguages = map[string]bool{}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := riva.Dial(ctx, riva.Config{Addr: server.Addr})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	models := catalog.Probe(ctx, client.ASR(), []string{"fr-FR"}, nil)
	if langs := models.ASRModels[catalog.ModelConformerStreaming]; len(langs) != 1 || langs[0] != "en-US" {
		t.Fatalf("fallback languages = %v, want [en-US]", langs)
	}
}

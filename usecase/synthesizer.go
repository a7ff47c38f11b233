package usecase

import (
	"context"
	"fmt"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
)

// NewSynthesizer picks the synthesis backend named by Tts.Provider.
func NewSynthesizer(l *log.Logger, c *config.Config) (domain.Synthesizer, error) {
	switch c.Tts.Provider {
	case "", "google":
		return NewGoogleSynthesizer(context.Background(), l, c)
	case "http":
		return NewTtsUsecase(l, c), nil
	case "stub":
		return NewStubSynthesizer(), nil
	default:
		return nil, fmt.Errorf("unknown tts provider %q", c.Tts.Provider)
	}
}

// VoiceConfig and AudioConfig are the settings snapshot handed to one run.
func VoiceConfig(c *config.Config) domain.VoiceConfig {
	return domain.VoiceConfig{
		Name:            c.Speech.Voice,
		LanguageCode:    c.Speech.LanguageCode,
		AllowedTiers:    c.Speech.AllowedTiers,
		FallbackVariant: c.Speech.FallbackVariant,
	}
}

func AudioConfig(c *config.Config) domain.AudioConfig {
	return domain.AudioConfig{
		Encoding:        c.Speech.AudioEncoding,
		EffectsProfile:  c.Speech.AudioProfile,
		SpeakingRate:    c.Speech.SpeakingRate,
		Pitch:           c.Speech.Pitch,
		VolumeGainDb:    c.Speech.Volume,
		SampleRateHertz: c.Speech.SampleRate,
	}
}

package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"

	"google.golang.org/api/option"
	"google.golang.org/api/texttospeech/v1"
)

// GoogleSynthesizer calls the Cloud Text-to-Speech text:synthesize method.
type GoogleSynthesizer struct {
	l   *log.Logger
	svc *texttospeech.Service
}

func NewGoogleSynthesizer(ctx context.Context, l *log.Logger, c *config.Config) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if c.Tts.ApiKey != "" {
		opts = append(opts, option.WithAPIKey(c.Tts.ApiKey))
	}
	if c.Tts.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.Tts.CredentialsFile))
	}
	if c.Tts.BaseUrl != "" {
		opts = append(opts, option.WithEndpoint(c.Tts.BaseUrl))
	}
	return newGoogleSynthesizer(ctx, l, opts...)
}

func newGoogleSynthesizer(ctx context.Context, l *log.Logger, opts ...option.ClientOption) (*GoogleSynthesizer, error) {
	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleSynthesizer{
		l:   l.WithModule("GoogleSynthesizer"),
		svc: svc,
	}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, req domain.SynthesisRequest) ([]byte, error) {
	audio := &texttospeech.AudioConfig{
		AudioEncoding:   req.Audio.Encoding,
		SpeakingRate:    req.Audio.SpeakingRate,
		Pitch:           req.Audio.Pitch,
		VolumeGainDb:    req.Audio.VolumeGainDb,
		SampleRateHertz: req.Audio.SampleRateHertz,
	}
	if req.Audio.EffectsProfile != "" {
		audio.EffectsProfileId = []string{req.Audio.EffectsProfile}
	}

	resp, err := g.svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Ssml: req.Input},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: req.Voice.LanguageCode,
			Name:         req.Voice.Name,
		},
		AudioConfig: audio,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", req.Voice.Name, err)
	}

	b, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return b, nil
}

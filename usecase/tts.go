package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"strings"
	"time"
)

// TtsUsecase speaks to a JSON relay endpoint that returns base64 audio.
type TtsUsecase struct {
	l      *log.Logger
	config *config.Config
	client *http.Client
}

func NewTtsUsecase(l *log.Logger, c *config.Config) *TtsUsecase {
	return &TtsUsecase{
		l:      l.WithModule("TtsUsecase"),
		config: c,
		client: &http.Client{Timeout: time.Minute},
	}
}

// Synthesize posts one request to Tts.BaseUrl.
func (t *TtsUsecase) Synthesize(ctx context.Context, req domain.SynthesisRequest) ([]byte, error) {
	requestBody := map[string]interface{}{
		"audio": map[string]interface{}{
			"voice_type":    req.Voice.Name,
			"language_code": req.Voice.LanguageCode,
			"encoding":      strings.ToLower(req.Audio.Encoding),
			"speed_ratio":   req.Audio.SpeakingRate,
			"pitch":         req.Audio.Pitch,
			"volume_gain":   req.Audio.VolumeGainDb,
			"sample_rate":   req.Audio.SampleRateHertz,
			"profile":       req.Audio.EffectsProfile,
		},
		"request": map[string]string{
			"ssml": req.Input,
		},
	}

	body, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.Tts.BaseUrl, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if t.config.Tts.ApiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+t.config.Tts.ApiKey)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts api returned non-200 status: %s", resp.Status)
	}

	var result domain.TtsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(result.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio: %w", err)
	}
	return audio, nil
}

package domain

import "context"

// Segment is one independently synthesizable unit of markup.
// Voice is the voice named by the segment itself, empty means the configured default.
type Segment struct {
	Index  int    `json:"index"`
	Markup string `json:"markup"`
	Voice  string `json:"voice,omitempty"`
}

// VoiceConfig is the default voice plus the tiers the account may use.
type VoiceConfig struct {
	Name            string
	LanguageCode    string
	AllowedTiers    []string
	FallbackVariant string
}

type AudioConfig struct {
	Encoding        string  `json:"audioEncoding"`
	EffectsProfile  string  `json:"effectsProfileId"`
	SpeakingRate    float64 `json:"speakingRate"`
	Pitch           float64 `json:"pitch"`
	VolumeGainDb    float64 `json:"volumeGainDb"`
	SampleRateHertz int64   `json:"sampleRateHertz"`
}

type VoiceSelection struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

// SynthesisRequest is everything the remote service needs for one segment.
type SynthesisRequest struct {
	Input string         `json:"ssml"`
	Voice VoiceSelection `json:"voice"`
	Audio AudioConfig    `json:"audioConfig"`
}

// Synthesizer turns one request into encoded audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
}

// RenderMode tells the content renderer who is asking for the page.
type RenderMode int

const (
	RenderModeNormal  RenderMode = iota // a reader's browser
	RenderModeContent                   // speech fetch, speakable region template
	RenderModeFull                      // speech fetch, full page for path queries
)

func (m RenderMode) IsSpeech() bool {
	return m == RenderModeContent || m == RenderModeFull
}

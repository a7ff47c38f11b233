package ssml

import (
	"fmt"
	"strings"

	"speaker/domain"

	"github.com/samber/lo"
)

const unknownTier = "unknown"

// ParseVoiceName splits a voice name like "en-US-Wavenet-D" into its
// language code "en-US" and lower cased tier "wavenet".
func ParseVoiceName(name string) (languageCode, tier string) {
	parts := strings.Split(name, "-")
	tier = unknownTier
	if len(parts) >= 2 {
		languageCode = parts[0] + "-" + parts[1]
	}
	if len(parts) >= 3 && parts[2] != "" {
		tier = strings.ToLower(parts[2])
	}
	return languageCode, tier
}

// BuildRequest turns one segment into a synthesis request. The voice is the
// segment's own, else the first voice tag in its markup, else the default.
// A voice outside the allowed tiers falls back to the standard variant of
// its language.
func BuildRequest(seg domain.Segment, voice domain.VoiceConfig, audio domain.AudioConfig, maxChars int) (domain.SynthesisRequest, error) {
	if maxChars > 0 && len(seg.Markup) > maxChars {
		return domain.SynthesisRequest{}, fmt.Errorf("%w: segment %d has %d characters, limit %d",
			domain.ErrSizeLimitExceeded, seg.Index, len(seg.Markup), maxChars)
	}

	name := seg.Voice
	if name == "" {
		name = VoiceName(seg.Markup)
	}
	if name == "" {
		name = voice.Name
	}

	lang, tier := ParseVoiceName(name)
	if lang == "" {
		lang = voice.LanguageCode
	}
	allowed := voice.AllowedTiers
	if len(allowed) == 0 {
		allowed = []string{"standard"}
	}
	allowed = lo.Map(allowed, func(t string, _ int) string { return strings.ToLower(t) })
	if !lo.Contains(allowed, tier) {
		variant := voice.FallbackVariant
		if variant == "" {
			variant = "Standard-A"
		}
		name = lang + "-" + variant
	}

	return domain.SynthesisRequest{
		Input: "<speak>" + StripVoice(seg.Markup) + "</speak>",
		Voice: domain.VoiceSelection{LanguageCode: lang, Name: name},
		Audio: audio,
	}, nil
}

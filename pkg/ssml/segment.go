package ssml

import (
	"strings"

	"speaker/domain"

	"github.com/samber/lo"
)

const cutMarker = "{|speaker|}"

var voiceCutter = strings.NewReplacer(
	"<voice", cutMarker+"<voice",
	"</voice>", "</voice>"+cutMarker,
)

// VoiceSegmenter splits sanitized markup at voice boundaries.
type VoiceSegmenter interface {
	Segment(markup string) []domain.Segment
}

// MarkerSegmenter cuts before every opening and after every closing voice
// tag, then repairs each piece on its own.
type MarkerSegmenter struct{}

func NewMarkerSegmenter() *MarkerSegmenter {
	return &MarkerSegmenter{}
}

func (MarkerSegmenter) Segment(markup string) []domain.Segment {
	pieces := lo.FilterMap(strings.Split(voiceCutter.Replace(markup), cutMarker), func(p string, _ int) (string, bool) {
		if strings.TrimSpace(p) == "" {
			return "", false
		}
		fixed := Repair(p)
		return fixed, fixed != ""
	})
	return lo.Map(pieces, func(p string, i int) domain.Segment {
		return domain.Segment{Index: i, Markup: p, Voice: VoiceName(p)}
	})
}

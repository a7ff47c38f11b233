package ssml

import (
	"fmt"

	"speaker/domain"
)

// Decorate nests content in say-as, then emphasis, then voice. The voice
// wrapper is only added when it differs from defaultVoice.
func Decorate(content string, d domain.Decoration, defaultVoice string) string {
	d = d.Normalized()
	if d.SayAs != "" {
		content = fmt.Sprintf(`<say-as interpret-as="%s">%s</say-as>`, attrEscaper.Replace(d.SayAs), content)
	}
	if d.Emphasis != "" {
		content = fmt.Sprintf(`<emphasis level="%s">%s</emphasis>`, attrEscaper.Replace(d.Emphasis), content)
	}
	if d.Voice != "" && d.Voice != defaultVoice {
		content = fmt.Sprintf(`<voice name="%s">%s</voice>`, attrEscaper.Replace(d.Voice), content)
	}
	return content
}

// Pause renders a break of ms milliseconds.
func Pause(ms int, strength string) string {
	switch strength {
	case "", "none", "undefined":
		return fmt.Sprintf(`<break time="%dms" />`, ms)
	}
	return fmt.Sprintf(`<break time="%dms" strength="%s" />`, ms, attrEscaper.Replace(strength))
}

package ssml

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// SpeechTags is the markup vocabulary that survives sanitizing.
var SpeechTags = []string{"p", "break", "say-as", "sub", "emphasis", "prosody", "voice"}

var (
	scriptRe = regexp.MustCompile(`(?is)<\s*script.+?<\s*/\s*script.*?>`)
	styleRe  = regexp.MustCompile(`(?is)<\s*style.+?<\s*/\s*style.*?>`)
	spaceRe  = regexp.MustCompile(`[ ]{2,}|\t`)
)

// unspoken elements are dropped with their content.
var unspoken = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Sanitizer reduces rendered HTML to speech markup.
type Sanitizer struct {
	muteMarker string
	keep       func(string) bool
}

// NewSanitizer returns a sanitizer that drops elements carrying muteMarker
// as an attribute or as a class token.
func NewSanitizer(muteMarker string) *Sanitizer {
	return &Sanitizer{
		muteMarker: muteMarker,
		keep:       allowList(SpeechTags...),
	}
}

// Sanitize prepares the speakable region of a content item.
func (s *Sanitizer) Sanitize(raw string) string {
	return s.clean(raw, true)
}

// Clean is Sanitize without mute removal, used for template content.
func (s *Sanitizer) Clean(raw string) string {
	return s.clean(raw, false)
}

func (s *Sanitizer) clean(raw string, mute bool) string {
	text := scriptRe.ReplaceAllString(raw, "")
	text = styleRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}

	root, err := parseFragment(text)
	if err != nil {
		return ""
	}
	dropNodes(root, func(n *html.Node) bool {
		switch n.Type {
		case html.CommentNode, html.DoctypeNode:
			return true
		case html.ElementNode:
			return unspoken[n.Data] || (mute && s.isMuted(n))
		}
		return false
	})
	return strings.TrimSpace(render(root, s.keep))
}

// DropMuted removes every muted element under root, with its subtree.
func (s *Sanitizer) DropMuted(root *html.Node) {
	dropNodes(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && s.isMuted(n)
	})
}

func (s *Sanitizer) isMuted(n *html.Node) bool {
	if s.muteMarker == "" {
		return false
	}
	if _, ok := attr(n, s.muteMarker); ok {
		return true
	}
	class, _ := attr(n, "class")
	return slices.Contains(strings.Fields(class), s.muteMarker)
}

// Repair re-parses a fragment that may have dangling or unclosed tags and
// serializes it well formed. It returns "" when nothing speakable is left.
func Repair(fragment string) string {
	root, err := parseFragment(fragment)
	if err != nil {
		return ""
	}
	dropNodes(root, func(n *html.Node) bool { return n.Type == html.CommentNode })
	pruneEmpty(root)
	if !hasSpeech(root) {
		return ""
	}
	return strings.TrimSpace(render(root, keepAll))
}

// VoiceName returns the name of the first voice tag in markup.
func VoiceName(markup string) string {
	if !strings.Contains(markup, "<voice") {
		return ""
	}
	root, err := parseFragment(markup)
	if err != nil {
		return ""
	}
	v := findElement(root, "voice")
	if v == nil {
		return ""
	}
	name, _ := attr(v, "name")
	return strings.TrimSpace(name)
}

// StripVoice unwraps every voice tag, keeping what they enclose.
func StripVoice(markup string) string {
	if !strings.Contains(markup, "<voice") {
		return markup
	}
	root, err := parseFragment(markup)
	if err != nil {
		return markup
	}
	return strings.TrimSpace(render(root, func(tag string) bool { return tag != "voice" }))
}

// Between returns the text between the first start marker and the end
// marker that follows it, or "" when either is missing.
func Between(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return ""
	}
	return rest[:j]
}

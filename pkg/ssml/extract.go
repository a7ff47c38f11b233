package ssml

import (
	"bytes"
	"fmt"
	"strings"

	"speaker/domain"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// TemplateExtractor builds segments from a rendered page and the ordered
// directives of a speech template.
type TemplateExtractor struct {
	sanitizer *Sanitizer
	maxChars  int
}

func NewTemplateExtractor(s *Sanitizer, maxChars int) *TemplateExtractor {
	return &TemplateExtractor{sanitizer: s, maxChars: maxChars}
}

// Extract resolves every directive against document in order. A path that
// matches nothing is skipped, a segment over the size limit fails the whole
// extraction.
func (e *TemplateExtractor) Extract(document string, directives domain.Directives, defaultVoice string) ([]domain.Segment, error) {
	if len(directives) == 0 {
		return nil, fmt.Errorf("%w: template has no directives", domain.ErrInvalidDirective)
	}
	doc, err := htmlquery.Parse(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	e.sanitizer.DropMuted(doc)

	segments := make([]domain.Segment, 0, len(directives))
	for i, d := range directives {
		var markup, voice string
		switch v := d.(type) {
		case domain.ElementDirective:
			node, err := htmlquery.Query(doc, v.XPath)
			if err != nil {
				return nil, fmt.Errorf("%w: directive %d path %q: %v", domain.ErrInvalidDirective, i, v.XPath, err)
			}
			if node == nil {
				continue
			}
			markup, voice = e.decorate(innerHTML(node), v.Decoration, defaultVoice)
		case domain.TextDirective:
			markup, voice = e.decorate(v.Content, v.Decoration, defaultVoice)
		case domain.PauseDirective:
			markup = Pause(v.TimeMs, v.Strength)
		default:
			return nil, fmt.Errorf("%w: directive %d has type %T", domain.ErrInvalidDirective, i, d)
		}
		if markup == "" {
			continue
		}
		if e.maxChars > 0 && len(markup) > e.maxChars {
			return nil, fmt.Errorf("%w: directive %d resolves to %d characters, limit %d", domain.ErrSizeLimitExceeded, i, len(markup), e.maxChars)
		}
		segments = append(segments, domain.Segment{Index: len(segments), Markup: markup, Voice: voice})
	}
	return segments, nil
}

func (e *TemplateExtractor) decorate(raw string, d domain.Decoration, defaultVoice string) (string, string) {
	content := e.sanitizer.Clean(raw)
	if content == "" {
		return "", ""
	}
	voice := d.Normalized().Voice
	if voice == defaultVoice {
		voice = ""
	}
	return Decorate(content, d, defaultVoice), voice
}

func innerHTML(n *html.Node) string {
	if n.Type == html.TextNode {
		return textEscaper.Replace(n.Data)
	}
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ContentTemplateID selects content based generation instead of a stored template.
const ContentTemplateID = "content"

type SpeechTemplate struct {
	ID        string     `json:"id" gorm:"primaryKey;size:64"`
	Name      string     `json:"name" gorm:"size:255"`
	Elements  Directives `json:"elements" gorm:"type:text"`
	Default   PostTypes  `json:"default" gorm:"type:text"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type DirectiveType string

const (
	DirectiveElement DirectiveType = "element"
	DirectiveText    DirectiveType = "text"
	DirectivePause   DirectiveType = "pause"
)

// Directive is one instruction of a speech template.
// It is one of ElementDirective, TextDirective or PauseDirective.
type Directive interface {
	Type() DirectiveType
}

// Decoration values "none", "undefined" and "" mean the default.
type Decoration struct {
	SayAs    string
	Emphasis string
	Voice    string
}

// Normalized clears every default value.
func (d Decoration) Normalized() Decoration {
	return Decoration{
		SayAs:    decorationValue(d.SayAs),
		Emphasis: decorationValue(d.Emphasis),
		Voice:    decorationValue(d.Voice),
	}
}

func decorationValue(v string) string {
	switch v {
	case "none", "undefined":
		return ""
	}
	return v
}

type ElementDirective struct {
	XPath string
	Decoration
}

type TextDirective struct {
	Content string
	Decoration
}

type PauseDirective struct {
	TimeMs   int
	Strength string
}

func (ElementDirective) Type() DirectiveType { return DirectiveElement }
func (TextDirective) Type() DirectiveType    { return DirectiveText }
func (PauseDirective) Type() DirectiveType   { return DirectivePause }

type Directives []Directive

type directiveJSON struct {
	Type     DirectiveType `json:"type"`
	XPath    string        `json:"xpath,omitempty"`
	Content  string        `json:"content,omitempty"`
	SayAs    string        `json:"sayAs,omitempty"`
	Emphasis string        `json:"emphasis,omitempty"`
	Voice    string        `json:"voice,omitempty"`
	Time     flexInt       `json:"time,omitempty"`
	Strength string        `json:"strength,omitempty"`
}

// flexInt accepts 500 as well as "500", form posts send numbers as strings.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*n = flexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

func (ds Directives) MarshalJSON() ([]byte, error) {
	out := make([]directiveJSON, 0, len(ds))
	for _, d := range ds {
		switch v := d.(type) {
		case ElementDirective:
			out = append(out, directiveJSON{Type: DirectiveElement, XPath: v.XPath, SayAs: v.SayAs, Emphasis: v.Emphasis, Voice: v.Voice})
		case TextDirective:
			out = append(out, directiveJSON{Type: DirectiveText, Content: v.Content, SayAs: v.SayAs, Emphasis: v.Emphasis, Voice: v.Voice})
		case PauseDirective:
			out = append(out, directiveJSON{Type: DirectivePause, Time: flexInt(v.TimeMs), Strength: v.Strength})
		default:
			return nil, fmt.Errorf("%w: %T", ErrInvalidDirective, d)
		}
	}
	return json.Marshal(out)
}

func (ds *Directives) UnmarshalJSON(b []byte) error {
	var raw []directiveJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDirective, err)
	}
	out := make(Directives, 0, len(raw))
	for i, r := range raw {
		switch r.Type {
		case DirectiveElement:
			if r.XPath == "" {
				return fmt.Errorf("%w: element %d has no path", ErrInvalidDirective, i)
			}
			out = append(out, ElementDirective{XPath: r.XPath, Decoration: Decoration{SayAs: r.SayAs, Emphasis: r.Emphasis, Voice: r.Voice}})
		case DirectiveText:
			out = append(out, TextDirective{Content: r.Content, Decoration: Decoration{SayAs: r.SayAs, Emphasis: r.Emphasis, Voice: r.Voice}})
		case DirectivePause:
			if r.Time < 0 {
				return fmt.Errorf("%w: pause %d has negative time", ErrInvalidDirective, i)
			}
			out = append(out, PauseDirective{TimeMs: int(r.Time), Strength: r.Strength})
		default:
			return fmt.Errorf("%w: unknown type %q", ErrInvalidDirective, r.Type)
		}
	}
	*ds = out
	return nil
}

func (ds Directives) Value() (driver.Value, error) {
	b, err := json.Marshal(ds)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (ds *Directives) Scan(src any) error {
	b, err := scanBytes(src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, ds)
}

// PostTypes lists the content types a template is the default for.
type PostTypes []string

func (p PostTypes) Value() (driver.Value, error) {
	if p == nil {
		p = PostTypes{}
	}
	b, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PostTypes) Scan(src any) error {
	b, err := scanBytes(src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, (*[]string)(p))
}

func scanBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}

type SetDefaultReq struct {
	PostType string `json:"postType"`
}

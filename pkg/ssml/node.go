package ssml

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidTags never carry content. The HTML parser does not know them and
// nests everything that follows inside, hoistVoid undoes that.
var voidTags = map[string]bool{
	"break": true,
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// parseFragment parses markup the way a browser parses the body of a page.
// The returned root is a synthetic body element holding the fragment.
func parseFragment(markup string) (*html.Node, error) {
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	hoistVoid(root)
	return root, nil
}

func hoistVoid(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && voidTags[c.Data] {
			for c.LastChild != nil {
				gc := c.LastChild
				c.RemoveChild(gc)
				n.InsertBefore(gc, c.NextSibling)
			}
			continue
		}
		hoistVoid(c)
	}
}

// dropNodes removes every descendant of n matching drop, with its subtree.
func dropNodes(n *html.Node, drop func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if drop(c) {
			n.RemoveChild(c)
		} else {
			dropNodes(c, drop)
		}
		c = next
	}
}

// pruneEmpty removes elements left without any content.
func pruneEmpty(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			pruneEmpty(c)
			if c.FirstChild == nil && !voidTags[c.Data] {
				n.RemoveChild(c)
			}
		}
		c = next
	}
}

// hasSpeech reports whether anything under n would produce sound or silence.
func hasSpeech(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return true
			}
		case html.ElementNode:
			if voidTags[c.Data] || hasSpeech(c) {
				return true
			}
		}
	}
	return false
}

func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// render serializes the children of root. Elements rejected by keep are
// unwrapped, their children are still written. Text is escaped so that
// decoded entities cannot be mistaken for markup.
func render(root *html.Node, keep func(tag string) bool) string {
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&b, c, keep)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *html.Node, keep func(tag string) bool) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(textEscaper.Replace(n.Data))
	case html.ElementNode:
		if !keep(n.Data) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				renderNode(b, c, keep)
			}
			return
		}
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(a.Val))
			b.WriteByte('"')
		}
		if voidTags[n.Data] {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c, keep)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c, keep)
		}
	}
}

func keepAll(string) bool { return true }

func allowList(tags ...string) func(string) bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return func(tag string) bool { return set[tag] }
}

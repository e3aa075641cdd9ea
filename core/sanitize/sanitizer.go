// Package sanitize implements the host-side cleaning collaborator.
// It applies a tool's per-field rule table to a saved record before
// persistence: structured fields (level, align) pass through untouched,
// freeform markup fields keep only their allowed inline tags. Noise
// elements are removed with their content; disallowed tags are unwrapped,
// keeping their text.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/blockhead/core"
)

// noiseSelectors are elements removed together with their content.
// These never carry meaningful heading text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"iframe", "svg", "canvas",
	"form", "button", "input", "select", "textarea",
}

// keptAttrs are the only attributes preserved on allowed tags.
var keptAttrs = map[string]bool{"href": true}

// Sanitizer cleans saved records per a tool's rule table.
type Sanitizer struct{}

// New creates a Sanitizer.
func New() *Sanitizer {
	return &Sanitizer{}
}

// Record applies the rule table to a header record. Only the text field is
// freeform markup; level and alignment carry a pass-through rule and are
// returned untouched.
func (s *Sanitizer) Record(d core.HeaderData, rules map[string]core.SanitizeRule) (core.HeaderData, error) {
	rule, ok := rules["text"]
	if !ok || rule.Passthrough {
		return d, nil
	}
	text, err := s.Fragment(d.Text, rule.Tags)
	if err != nil {
		return d, fmt.Errorf("sanitizing text: %w", err)
	}
	d.Text = text
	return d, nil
}

// Fragment cleans one HTML fragment, keeping only the allowed inline tags.
func (s *Sanitizer) Fragment(fragment string, allowed []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	// Remove noise elements first (operates on the whole parsed tree).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", nil
	}

	allow := make(map[string]bool, len(allowed))
	for _, tag := range allowed {
		allow[strings.ToLower(tag)] = true
	}

	root := body.Get(0)
	unwrapDisallowed(root, allow)

	var b strings.Builder
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&b, child); err != nil {
			return "", fmt.Errorf("serializing fragment: %w", err)
		}
	}
	return b.String(), nil
}

// unwrapDisallowed replaces disallowed element nodes under root with their
// children, bottom-up, and strips attributes the allow-list does not keep.
func unwrapDisallowed(root *html.Node, allow map[string]bool) {
	child := root.FirstChild
	for child != nil {
		next := child.NextSibling
		unwrapDisallowed(child, allow)
		if child.Type == html.ElementNode {
			if allow[child.Data] {
				stripAttrs(child)
			} else {
				unwrap(root, child)
			}
		}
		child = next
	}
}

// unwrap splices node's children into parent at node's position and drops
// the node itself.
func unwrap(parent, node *html.Node) {
	for node.FirstChild != nil {
		grandchild := node.FirstChild
		node.RemoveChild(grandchild)
		parent.InsertBefore(grandchild, node)
	}
	parent.RemoveChild(node)
}

func stripAttrs(node *html.Node) {
	kept := node.Attr[:0]
	for _, a := range node.Attr {
		if node.DataAtom == atom.A && keptAttrs[a.Key] {
			kept = append(kept, a)
		}
	}
	node.Attr = kept
}

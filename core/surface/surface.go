// Package surface implements the Surface interface on top of x/net/html
// nodes, with goquery for text extraction. It is the concrete rendering
// surface used by the CLI and the tests; tool logic only ever sees the
// core.Surface and core.Element interfaces.
package surface

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/blockhead/core"
)

// HTMLSurface creates elements backed by html.Nodes.
type HTMLSurface struct{}

// New creates an HTMLSurface.
func New() *HTMLSurface {
	return &HTMLSurface{}
}

// CreateElement creates a detached element with the given (lowercase) tag.
func (s *HTMLSurface) CreateElement(tag string) core.Element {
	tag = strings.ToLower(tag)
	return &Node{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Node adapts one html.Node to core.Element.
type Node struct {
	node *html.Node
}

// Unwrap exposes the underlying html.Node for serialization.
func (n *Node) Unwrap() *html.Node {
	return n.node
}

// TagName returns the element's lowercase tag.
func (n *Node) TagName() string {
	return n.node.Data
}

// SetText replaces the element's content with a single text node.
func (n *Node) SetText(text string) {
	n.removeChildren()
	n.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the element's rendered text content, tags stripped.
func (n *Node) Text() string {
	return goquery.NewDocumentFromNode(n.node).Text()
}

// SetInnerHTML replaces the element's content with a parsed HTML fragment.
// An unparseable fragment leaves the element empty.
func (n *Node) SetInnerHTML(fragment string) {
	n.removeChildren()
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return
	}
	for _, child := range parsed {
		n.node.AppendChild(child)
	}
}

// InnerHTML serializes the element's content.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&b, child); err != nil {
			return ""
		}
	}
	return b.String()
}

// OuterHTML serializes the element itself.
func (n *Node) OuterHTML() string {
	var b strings.Builder
	if err := html.Render(&b, n.node); err != nil {
		return ""
	}
	return b.String()
}

// SetStyle sets one declaration in the element's style attribute, keeping
// declaration order stable.
func (n *Node) SetStyle(name, value string) {
	decls := parseStyle(n.Attr("style"))
	replaced := false
	for i, d := range decls {
		if d.name == name {
			decls[i].value = value
			replaced = true
			break
		}
	}
	if !replaced {
		decls = append(decls, declaration{name: name, value: value})
	}
	n.SetAttr("style", serializeStyle(decls))
}

// Style returns one declaration's value from the style attribute.
func (n *Node) Style(name string) string {
	for _, d := range parseStyle(n.Attr("style")) {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// SetAttr sets an attribute, replacing any existing value.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.node.Attr {
		if a.Key == name {
			n.node.Attr[i].Val = value
			return
		}
	}
	n.node.Attr = append(n.node.Attr, html.Attribute{Key: name, Val: value})
}

// Attr returns an attribute's value, empty when absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// AddClass adds a class token if not already present.
func (n *Node) AddClass(name string) {
	classes := strings.Fields(n.Attr("class"))
	for _, c := range classes {
		if c == name {
			return
		}
	}
	classes = append(classes, name)
	n.SetAttr("class", strings.Join(classes, " "))
}

// RemoveClass removes a class token.
func (n *Node) RemoveClass(name string) {
	classes := strings.Fields(n.Attr("class"))
	kept := classes[:0]
	for _, c := range classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	n.SetAttr("class", strings.Join(kept, " "))
}

// HasClass reports whether a class token is present.
func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// AppendChild attaches a child element, detaching it from any previous
// parent first. Elements from a different Surface implementation are
// ignored.
func (n *Node) AppendChild(child core.Element) {
	cn, ok := child.(*Node)
	if !ok {
		return
	}
	if cn.node.Parent != nil {
		cn.node.Parent.RemoveChild(cn.node)
	}
	n.node.AppendChild(cn.node)
}

// ReplaceWith swaps this element for repl at its attachment point.
// No-op when detached or when repl is from a different Surface.
func (n *Node) ReplaceWith(repl core.Element) {
	rn, ok := repl.(*Node)
	if !ok || n.node.Parent == nil {
		return
	}
	if rn.node.Parent != nil {
		rn.node.Parent.RemoveChild(rn.node)
	}
	parent := n.node.Parent
	parent.InsertBefore(rn.node, n.node)
	parent.RemoveChild(n.node)
}

// Parent returns the parent element, nil when detached.
func (n *Node) Parent() core.Element {
	if n.node.Parent == nil {
		return nil
	}
	return &Node{node: n.node.Parent}
}

// Children returns the element children in document order.
func (n *Node) Children() []core.Element {
	var children []core.Element
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

func (n *Node) removeChildren() {
	for n.node.FirstChild != nil {
		n.node.RemoveChild(n.node.FirstChild)
	}
}

// --- style attribute helpers ---

type declaration struct {
	name  string
	value string
}

func parseStyle(style string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		decls = append(decls, declaration{name: name, value: value})
	}
	return decls
}

func serializeStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.name+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

package htmlrender

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rgonek/lexical-renderer/richtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ClassMapper returns the class attribute for an output node, or "" for none.
// It is the hook for site styling; the renderer itself emits no classes.
type ClassMapper func(node *richtext.OutputNode) string

// Options configures HTML serialization.
type Options struct {
	ClassMapper ClassMapper
	// IndentWidth is the padding in pixels per indent level. Zero means 40.
	IndentWidth int
	// UnknownComments emits an HTML comment for unknown-placeholder nodes.
	UnknownComments bool
}

// Renderer serializes output trees to HTML.
type Renderer struct {
	options Options
}

// New creates a new HTML Renderer.
func New(options Options) *Renderer {
	if options.IndentWidth <= 0 {
		options.IndentWidth = 40
	}
	return &Renderer{options: options}
}

// Render writes the HTML for tree to w. A nil tree writes nothing.
func (r *Renderer) Render(w io.Writer, tree *richtext.OutputNode) error {
	if tree == nil {
		return nil
	}

	for _, node := range r.build(tree) {
		if err := html.Render(w, node); err != nil {
			return fmt.Errorf("failed to render html: %w", err)
		}
	}
	return nil
}

// RenderString returns the HTML for tree.
func (r *Renderer) RenderString(tree *richtext.OutputNode) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, tree); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

var markAtoms = map[richtext.Mark]atom.Atom{
	richtext.MarkBold:          atom.Strong,
	richtext.MarkItalic:        atom.Em,
	richtext.MarkStrikethrough: atom.S,
	richtext.MarkUnderline:     atom.U,
	richtext.MarkCode:          atom.Code,
}

func (r *Renderer) build(node *richtext.OutputNode) []*html.Node {
	switch node.Role {
	case richtext.RoleRoot:
		return r.buildChildren(node)
	case richtext.RoleParagraph:
		p := r.block(atom.P, node)
		if node.Blank {
			p.AppendChild(element(atom.Br))
			return []*html.Node{p}
		}
		return []*html.Node{appendAll(p, r.buildChildren(node))}
	case richtext.RoleHeading:
		level := min(max(node.Level, 1), 6)
		return []*html.Node{appendAll(r.block(headingAtoms[level-1], node), r.buildChildren(node))}
	case richtext.RoleList:
		return []*html.Node{appendAll(r.list(node), r.buildChildren(node))}
	case richtext.RoleListItem:
		return []*html.Node{r.listItem(node)}
	case richtext.RoleQuote:
		return []*html.Node{appendAll(r.block(atom.Blockquote, node), r.buildChildren(node))}
	case richtext.RoleLink:
		return []*html.Node{appendAll(r.link(node), r.buildChildren(node))}
	case richtext.RoleText:
		return []*html.Node{r.textRun(node)}
	case richtext.RoleBreak:
		return []*html.Node{element(atom.Br)}
	case richtext.RoleTab:
		return []*html.Node{text("\t")}
	case richtext.RoleRule:
		return []*html.Node{r.withClass(element(atom.Hr), node)}
	case richtext.RoleEmbed:
		return []*html.Node{r.embed(node)}
	default:
		if r.options.UnknownComments && node.NodeType != "" {
			return []*html.Node{{Type: html.CommentNode, Data: " unknown: " + node.NodeType + " "}}
		}
		return nil
	}
}

func (r *Renderer) buildChildren(node *richtext.OutputNode) []*html.Node {
	var out []*html.Node
	for _, child := range node.Children {
		out = append(out, r.build(child)...)
	}
	return out
}

func (r *Renderer) block(a atom.Atom, node *richtext.OutputNode) *html.Node {
	el := element(a)

	var styles []string
	if node.Align != "" {
		styles = append(styles, "text-align: "+node.Align)
	}
	if node.Indent > 0 {
		styles = append(styles, fmt.Sprintf("padding-inline-start: %dpx", node.Indent*r.options.IndentWidth))
	}
	if len(styles) > 0 {
		setAttr(el, "style", strings.Join(styles, "; "))
	}
	if node.Direction != "" {
		setAttr(el, "dir", node.Direction)
	}

	return r.withClass(el, node)
}

func (r *Renderer) list(node *richtext.OutputNode) *html.Node {
	if !node.Ordered() {
		el := r.block(atom.Ul, node)
		if node.ListKind == richtext.ListCheck {
			setAttr(el, "data-list", "check")
		}
		return el
	}

	el := r.block(atom.Ol, node)
	if node.Start > 1 {
		setAttr(el, "start", strconv.Itoa(node.Start))
	}
	return el
}

func (r *Renderer) listItem(node *richtext.OutputNode) *html.Node {
	li := r.block(atom.Li, node)
	if node.Checked != nil {
		checkbox := element(atom.Input)
		setAttr(checkbox, "type", "checkbox")
		setAttr(checkbox, "disabled", "")
		if *node.Checked {
			setAttr(checkbox, "checked", "")
		}
		li.AppendChild(checkbox)
	}
	return appendAll(li, r.buildChildren(node))
}

// link emits an anchor even without a destination so its text survives.
func (r *Renderer) link(node *richtext.OutputNode) *html.Node {
	a := element(atom.A)
	if node.Href != "" {
		setAttr(a, "href", node.Href)
	}
	if node.Target != "" {
		setAttr(a, "target", node.Target)
	}
	if node.Rel != "" {
		setAttr(a, "rel", node.Rel)
	}
	return r.withClass(a, node)
}

// textRun nests one element per mark, outermost first.
func (r *Renderer) textRun(node *richtext.OutputNode) *html.Node {
	var outer, inner *html.Node
	for _, mark := range node.Marks {
		a, ok := markAtoms[mark]
		if !ok {
			continue
		}
		el := element(a)
		if outer == nil {
			outer = el
		} else {
			inner.AppendChild(el)
		}
		inner = el
	}

	class := r.classFor(node)
	if outer == nil {
		if class == "" {
			return text(node.Text)
		}
		outer = element(atom.Span)
		inner = outer
	}
	if class != "" {
		setAttr(outer, "class", class)
	}

	inner.AppendChild(text(node.Text))
	return outer
}

func (r *Renderer) embed(node *richtext.OutputNode) *html.Node {
	img := element(atom.Img)
	setAttr(img, "src", node.Src)
	setAttr(img, "alt", node.Alt)
	if node.Width > 0 {
		setAttr(img, "width", strconv.Itoa(node.Width))
	}
	if node.Height > 0 {
		setAttr(img, "height", strconv.Itoa(node.Height))
	}
	return r.withClass(img, node)
}

func (r *Renderer) classFor(node *richtext.OutputNode) string {
	if r.options.ClassMapper == nil {
		return ""
	}
	return strings.TrimSpace(r.options.ClassMapper(node))
}

func (r *Renderer) withClass(el *html.Node, node *richtext.OutputNode) *html.Node {
	if class := r.classFor(node); class != "" {
		setAttr(el, "class", class)
	}
	return el
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

func setAttr(el *html.Node, key, value string) {
	el.Attr = append(el.Attr, html.Attribute{Key: key, Val: value})
}

func appendAll(parent *html.Node, children []*html.Node) *html.Node {
	for _, child := range children {
		parent.AppendChild(child)
	}
	return parent
}

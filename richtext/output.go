package richtext

import (
	"fmt"
	"strings"
)

// Role tags an output node with its presentational meaning.
type Role string

const (
	RoleRoot      Role = "root"
	RoleParagraph Role = "paragraph"
	RoleHeading   Role = "heading"
	RoleList      Role = "list"
	RoleListItem  Role = "listitem"
	RoleQuote     Role = "quote"
	RoleLink      Role = "link"
	RoleText      Role = "text"
	RoleBreak     Role = "break"
	RoleTab       Role = "tab"
	RoleRule      Role = "rule"
	RoleEmbed     Role = "embed"
	RoleUnknown   Role = "unknown"
)

// ListKind is the ordering kind of a list.
type ListKind string

const (
	ListBullet ListKind = "bullet"
	ListNumber ListKind = "number"
	ListCheck  ListKind = "check"
)

// OutputNode is one node of the rendered tree. Containers own their children
// exclusively; a returned tree is never shared between renders.
type OutputNode struct {
	Role Role `json:"role"`

	// heading
	Level int `json:"level,omitempty"`

	// list and listitem
	ListKind ListKind `json:"listKind,omitempty"`
	Start    int      `json:"start,omitempty"`
	Checked  *bool    `json:"checked,omitempty"`
	Value    int      `json:"value,omitempty"`

	// link
	Href   string `json:"href,omitempty"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`

	// text run; Marks is outermost first
	Text  string `json:"text,omitempty"`
	Marks []Mark `json:"marks,omitempty"`

	// embed
	Src    string `json:"src,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	// block presentation
	Align     string `json:"align,omitempty"`
	Indent    int    `json:"indent,omitempty"`
	Direction string `json:"direction,omitempty"`

	// Blank marks a paragraph with no content that must still occupy a line.
	Blank bool `json:"blank,omitempty"`

	// NodeType is the input type name of an unknown-placeholder node.
	NodeType string `json:"nodeType,omitempty"`

	Children []*OutputNode `json:"children,omitempty"`
}

// Tag returns the role vocabulary used by presentation layers,
// e.g. "heading:2" or "list:ordered".
func (n *OutputNode) Tag() string {
	switch n.Role {
	case RoleHeading:
		return fmt.Sprintf("heading:%d", n.Level)
	case RoleList:
		if n.Ordered() {
			return "list:ordered"
		}
		return "list:unordered"
	default:
		return string(n.Role)
	}
}

// Ordered reports whether a list numbers its items.
func (n *OutputNode) Ordered() bool {
	return n.Role == RoleList && n.ListKind == ListNumber
}

// HasMark reports whether a text run carries the given mark.
func (n *OutputNode) HasMark(mark Mark) bool {
	for _, m := range n.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *OutputNode) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// PlainText concatenates the text of the subtree; breaks become newlines.
func (n *OutputNode) PlainText() string {
	var sb strings.Builder
	n.writePlainText(&sb)
	return sb.String()
}

func (n *OutputNode) writePlainText(sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Role {
	case RoleText, RoleTab:
		sb.WriteString(n.Text)
	case RoleBreak:
		sb.WriteString("\n")
	}
	for _, child := range n.Children {
		child.writePlainText(sb)
	}
}

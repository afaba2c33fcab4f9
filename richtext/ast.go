package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NodeType identifies a node variant in the editor tree.
type NodeType string

const (
	TypeRoot           NodeType = "root"
	TypeParagraph      NodeType = "paragraph"
	TypeHeading        NodeType = "heading"
	TypeList           NodeType = "list"
	TypeListItem       NodeType = "listitem"
	TypeQuote          NodeType = "quote"
	TypeLink           NodeType = "link"
	TypeAutoLink       NodeType = "autolink"
	TypeText           NodeType = "text"
	TypeLineBreak      NodeType = "linebreak"
	TypeTab            NodeType = "tab"
	TypeHorizontalRule NodeType = "horizontalrule"
	TypeImage          NodeType = "image"
	TypeUpload         NodeType = "upload"
)

// Document is the value stored by the CMS for one rich-text field.
type Document struct {
	Root *Node `json:"root"`
}

// Node represents any node in the editor tree (root, paragraph, text, etc.).
//
// Format holds the inline bitmask of text nodes. Element nodes use the same
// wire field for their alignment, which is decoded into Align instead.
// Fields without a dedicated member are kept in Attrs.
type Node struct {
	Type      string         `json:"type"`
	Version   int            `json:"version"`
	Text      string         `json:"text,omitempty"`
	Format    int            `json:"-"`
	Align     string         `json:"-"`
	Indent    int            `json:"indent,omitempty"`
	Direction string         `json:"direction,omitempty"`
	Children  []Node         `json:"children,omitempty"`
	Attrs     map[string]any `json:"-"`

	// set by the lenient decoder
	invalid     bool
	badChildren bool
	badField    string
}

// ParseDocument decodes an editor JSON value. Structural problems inside the
// tree are kept on the nodes for the renderer to report; only invalid JSON
// is an error. A literal null yields a nil document.
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rich-text JSON: %w", err)
	}
	return &doc, nil
}

// IsEmpty reports whether the document has nothing to render.
func IsEmpty(doc *Document) bool {
	if doc == nil || doc.Root == nil {
		return true
	}
	return len(ChildrenOf(*doc.Root)) == 0
}

// ChildrenOf returns the ordered children of a node whose variant owns
// children. Leaves, unknown variants and malformed collections yield nil.
func ChildrenOf(node Node) []Node {
	if !node.HasChildren() || node.Malformed() {
		return nil
	}
	return node.Children
}

// HasChildren reports whether the node's variant owns a children sequence.
func (n Node) HasChildren() bool {
	switch NodeType(n.Type) {
	case TypeRoot, TypeParagraph, TypeHeading, TypeList, TypeListItem, TypeQuote, TypeLink, TypeAutoLink:
		return true
	default:
		return false
	}
}

// Malformed reports whether the node, one of its fields, or its children
// collection could not be decoded.
func (n Node) Malformed() bool {
	return n.invalid || n.badChildren || n.badField != ""
}

// GetStringAttr returns a string attribute or the fallback.
func (n Node) GetStringAttr(key, fallback string) string {
	if value, ok := n.Attrs[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// GetIntAttr returns an integer attribute or the fallback.
func (n Node) GetIntAttr(key string, fallback int) int {
	if value, ok := toInt(n.Attrs[key]); ok {
		return value
	}
	return fallback
}

// GetBoolAttr returns a boolean attribute and whether it was present.
func (n Node) GetBoolAttr(key string) (bool, bool) {
	value, ok := n.Attrs[key].(bool)
	return value, ok
}

// GetMapAttr returns a nested object attribute.
func (n Node) GetMapAttr(key string) map[string]any {
	value, _ := n.Attrs[key].(map[string]any)
	return value
}

func toInt(raw any) (int, bool) {
	switch value := raw.(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	case int64:
		return int(value), true
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return int(parsed), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// UnmarshalJSON decodes a node without failing on structural problems.
// The subtree is decoded once and nodes are built from the generic value,
// so decoding stays linear in the input size at any nesting depth.
func (n *Node) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		*n = Node{invalid: true}
		return nil
	}
	*n = nodeFromValue(value)
	return nil
}

func nodeFromValue(value any) Node {
	fields, ok := value.(map[string]any)
	if !ok {
		return Node{invalid: true}
	}

	var n Node
	for key, raw := range fields {
		if raw == nil {
			continue
		}
		switch key {
		case "type":
			if n.Type, ok = raw.(string); !ok {
				n.badField = key
			}
		case "version":
			if version, ok := raw.(float64); ok {
				n.Version = int(version)
			}
		case "text":
			if n.Text, ok = raw.(string); !ok {
				n.badField = key
			}
		case "format":
			switch format := raw.(type) {
			case float64:
				n.Format = int(format)
			case string:
				n.Align = format
			}
		case "indent":
			if indent, ok := raw.(float64); ok {
				n.Indent = int(indent)
			}
		case "direction":
			n.Direction, _ = raw.(string)
		case "children":
			items, ok := raw.([]any)
			if !ok {
				n.badChildren = true
				continue
			}
			n.Children = make([]Node, len(items))
			for i, item := range items {
				n.Children[i] = nodeFromValue(item)
			}
		default:
			if n.Attrs == nil {
				n.Attrs = make(map[string]any)
			}
			n.Attrs[key] = raw
		}
	}

	return n
}

// MarshalJSON writes the node in the editor's wire shape.
func (n Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(n.Attrs)+7)
	for key, value := range n.Attrs {
		out[key] = value
	}

	out["type"] = n.Type
	out["version"] = n.Version
	if NodeType(n.Type) == TypeText {
		out["text"] = n.Text
		out["format"] = n.Format
	} else if n.HasChildren() {
		out["format"] = n.Align
		out["indent"] = n.Indent
		children := n.Children
		if children == nil {
			children = []Node{}
		}
		out["children"] = children
	}
	if n.Direction != "" {
		out["direction"] = n.Direction
	}

	return json.Marshal(out)
}

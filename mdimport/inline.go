package mdimport

import (
	"strings"

	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertInlineChildren(parent ast.Node, stack *markStack) []richtext.Node {
	var content []richtext.Node

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, node := range s.convertInlineNode(child, stack) {
			content = appendInlineNode(content, node)
		}
	}

	return content
}

func (s *state) convertInlineNode(node ast.Node, stack *markStack) []richtext.Node {
	switch typed := node.(type) {
	case *ast.Text:
		var content []richtext.Node
		if textValue := string(typed.Value(s.source)); textValue != "" {
			content = append(content, s.newTextNode(textValue, stack))
		}

		if typed.HardLineBreak() {
			content = append(content, lineBreak())
		} else if typed.SoftLineBreak() {
			content = append(content, s.newTextNode(" ", stack))
		}

		return content

	case *ast.String:
		return []richtext.Node{s.newTextNode(string(typed.Value), stack)}

	case *ast.Emphasis:
		mark := richtext.MarkItalic
		if typed.Level >= 2 {
			mark = richtext.MarkBold
		}
		return s.withMark(typed, stack, mark)

	case *extast.Strikethrough:
		return s.withMark(typed, stack, richtext.MarkStrikethrough)

	case *ast.CodeSpan:
		return s.withMark(typed, stack, richtext.MarkCode)

	case *ast.Link:
		return []richtext.Node{s.convertLinkNode(typed, stack)}

	case *ast.AutoLink:
		return []richtext.Node{s.convertAutoLinkNode(typed, stack)}

	case *ast.Image:
		return []richtext.Node{s.convertImageNode(typed)}

	case *ast.RawHTML:
		s.addWarning(richtext.WarningUnknownNode, typed.Kind().String(), "inline HTML dropped")
		return nil

	case *extast.TaskCheckBox:
		if checkBoxConsumed(typed) {
			return nil
		}
		s.addWarning(
			richtext.WarningUnknownNode,
			typed.Kind().String(),
			"task checkbox outside a check list kept as text",
		)
		if typed.IsChecked {
			return []richtext.Node{s.newTextNode("[x] ", stack)}
		}
		return []richtext.Node{s.newTextNode("[ ] ", stack)}

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node, stack)
		}
		return s.warnUnknownInline(node, stack)
	}
}

func (s *state) withMark(node ast.Node, stack *markStack, mark richtext.Mark) []richtext.Node {
	stack.push(mark)
	content := s.convertInlineChildren(node, stack)
	stack.popByType(mark)
	return content
}

func (s *state) convertLinkNode(node *ast.Link, stack *markStack) richtext.Node {
	link := element(richtext.TypeLink, 3, s.convertInlineChildren(node, stack))
	fields := map[string]any{
		"linkType": "custom",
		"newTab":   false,
		"url":      strings.TrimSpace(string(node.Destination)),
	}
	attrs := map[string]any{"fields": fields}
	if title := strings.TrimSpace(string(node.Title)); title != "" {
		attrs["title"] = title
	}
	return withAttrs(link, attrs)
}

func (s *state) convertAutoLinkNode(node *ast.AutoLink, stack *markStack) richtext.Node {
	href := string(node.URL(s.source))
	if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
		href = "mailto:" + href
	}

	label := s.newTextNode(string(node.Label(s.source)), stack)
	return withAttrs(element(richtext.TypeAutoLink, 3, []richtext.Node{label}), map[string]any{
		"fields": map[string]any{
			"linkType": "custom",
			"newTab":   false,
			"url":      href,
		},
	})
}

// convertImageNode maps an image to an upload whose value carries the
// resolved media, the shape the CMS stores after population.
func (s *state) convertImageNode(node *ast.Image) richtext.Node {
	value := map[string]any{
		"url": strings.TrimSpace(string(node.Destination)),
	}
	if alt := strings.TrimSpace(s.blockText(node)); alt != "" {
		value["alt"] = alt
	}
	if title := strings.TrimSpace(string(node.Title)); title != "" {
		value["title"] = title
	}

	return richtext.Node{
		Type:    string(richtext.TypeUpload),
		Version: 3,
		Attrs: map[string]any{
			"relationTo": "media",
			"value":      value,
		},
	}
}

package mdimport

import (
	"strings"

	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertListNode(node *ast.List) richtext.Node {
	listType, tag := "bullet", "ul"
	switch {
	case isTaskList(node):
		listType = "check"
	case node.IsOrdered():
		listType, tag = "number", "ol"
	}

	start := 1
	if node.IsOrdered() {
		start = node.Start
	}

	var items []richtext.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		items = append(items, s.convertListItemNode(item, start+len(items), listType == "check"))
	}

	attrs := map[string]any{
		"listType": listType,
		"tag":      tag,
	}
	if listType == "number" {
		attrs["start"] = start
	}
	return withAttrs(element(richtext.TypeList, 1, items), attrs)
}

// convertListItemNode puts the item's text directly under the list item,
// paragraphs separated by line breaks. Nested lists follow the text.
func (s *state) convertListItemNode(node *ast.ListItem, value int, check bool) richtext.Node {
	var children []richtext.Node
	checked := false
	prevInline := false

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if check {
			if box, ok := child.FirstChild().(*extast.TaskCheckBox); ok {
				checked = box.IsChecked
			}
		}

		for _, block := range s.convertBlockNode(child) {
			if block.Type != string(richtext.TypeParagraph) {
				children = append(children, block)
				prevInline = false
				continue
			}
			if prevInline {
				children = append(children, lineBreak())
			}
			children = append(children, trimLeadingSpace(block.Children)...)
			prevInline = true
		}
	}

	attrs := map[string]any{"value": value}
	if check {
		attrs["checked"] = checked
	}
	return withAttrs(element(richtext.TypeListItem, 1, children), attrs)
}

// checkBoxConsumed reports whether box is the checked state of a check list
// item, in which case the list item carries it instead of the text.
func checkBoxConsumed(box *extast.TaskCheckBox) bool {
	container := box.Parent()
	if container == nil || container.FirstChild() != box {
		return false
	}
	item, ok := container.Parent().(*ast.ListItem)
	if !ok || item.FirstChild() != container {
		return false
	}
	list, ok := item.Parent().(*ast.List)
	return ok && isTaskList(list)
}

// isTaskList reports whether every item starts with a task checkbox.
func isTaskList(node *ast.List) bool {
	hasTaskItems := false

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			return false
		}

		container := item.FirstChild()
		if container == nil {
			return false
		}
		switch container.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			if _, ok := container.FirstChild().(*extast.TaskCheckBox); !ok {
				return false
			}
			hasTaskItems = true
		default:
			return false
		}
	}

	return hasTaskItems
}

// trimLeadingSpace drops the space goldmark leaves after a task checkbox.
func trimLeadingSpace(content []richtext.Node) []richtext.Node {
	if len(content) == 0 || content[0].Type != string(richtext.TypeText) {
		return content
	}
	first := content[0]
	trimmed := strings.TrimLeft(first.Text, " \t")
	if trimmed == first.Text {
		return content
	}

	out := make([]richtext.Node, 0, len(content))
	if trimmed != "" {
		first.Text = trimmed
		out = append(out, first)
	}
	return append(out, content[1:]...)
}

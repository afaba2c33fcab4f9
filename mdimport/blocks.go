package mdimport

import (
	"fmt"
	"strings"

	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/yuin/goldmark/ast"
)

// convertParagraphNode converts a paragraph or tight text block. Images are
// lifted out as upload blocks and the text around them stays in paragraphs.
func (s *state) convertParagraphNode(node ast.Node) []richtext.Node {
	content := s.convertInlineChildren(node, newMarkStack())

	var blocks, run []richtext.Node
	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, element(richtext.TypeParagraph, 1, trimBreaks(run)))
			run = nil
		}
	}
	for _, inline := range content {
		if isEmbed(inline) {
			flush()
			blocks = append(blocks, inline)
			continue
		}
		run = append(run, inline)
	}
	flush()

	return blocks
}

func (s *state) convertHeadingNode(node *ast.Heading) richtext.Node {
	content := s.convertInlineChildren(node, newMarkStack())

	level := min(max(node.Level+s.config.HeadingOffset, 1), 6)
	return withAttrs(element(richtext.TypeHeading, 1, content), map[string]any{
		"tag": fmt.Sprintf("h%d", level),
	})
}

// convertBlockquoteNode flattens quoted paragraphs into one quote, separated
// by line breaks. Other quoted blocks are kept as children.
func (s *state) convertBlockquoteNode(node *ast.Blockquote) richtext.Node {
	var children []richtext.Node
	prevInline := false

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		for _, block := range s.convertBlockNode(child) {
			if block.Type != string(richtext.TypeParagraph) {
				children = append(children, block)
				prevInline = false
				continue
			}
			if prevInline {
				children = append(children, lineBreak())
			}
			children = append(children, block.Children...)
			prevInline = true
		}
	}

	return element(richtext.TypeQuote, 1, children)
}

// convertCodeBlockNode keeps code as code-formatted lines; the editor has no
// code block node.
func (s *state) convertCodeBlockNode(node ast.Node) richtext.Node {
	s.addWarning(
		richtext.WarningUnknownNode,
		node.Kind().String(),
		"code block imported as a code-formatted paragraph",
	)

	stack := newMarkStack()
	stack.push(richtext.MarkCode)

	var content []richtext.Node
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimRight(string(segment.Value(s.source)), "\r\n")
		if i > 0 {
			content = append(content, lineBreak())
		}
		content = appendInlineNode(content, s.newTextNode(line, stack))
	}

	return element(richtext.TypeParagraph, 1, trimBreaks(content))
}

func trimBreaks(content []richtext.Node) []richtext.Node {
	for len(content) > 0 && content[0].Type == string(richtext.TypeLineBreak) {
		content = content[1:]
	}
	for len(content) > 0 && content[len(content)-1].Type == string(richtext.TypeLineBreak) {
		content = content[:len(content)-1]
	}
	return content
}

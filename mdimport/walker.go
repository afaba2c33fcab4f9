package mdimport

import (
	"fmt"
	"strings"

	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/yuin/goldmark/ast"
)

func (s *state) convertDocument(root ast.Node) *richtext.Document {
	rootNode := element(richtext.TypeRoot, 1, s.convertBlockChildren(root))
	return &richtext.Document{Root: &rootNode}
}

func (s *state) convertBlockChildren(parent ast.Node) []richtext.Node {
	var content []richtext.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		content = append(content, s.convertBlockNode(child)...)
	}
	return content
}

// convertBlockNode returns the blocks for one markdown block. A paragraph
// holding images yields several blocks because uploads are block level.
func (s *state) convertBlockNode(node ast.Node) []richtext.Node {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.convertParagraphNode(typed)
	case *ast.TextBlock:
		return s.convertParagraphNode(typed)
	case *ast.Heading:
		return []richtext.Node{s.convertHeadingNode(typed)}
	case *ast.Blockquote:
		return []richtext.Node{s.convertBlockquoteNode(typed)}
	case *ast.ThematicBreak:
		return []richtext.Node{{Type: string(richtext.TypeHorizontalRule), Version: 1}}
	case *ast.List:
		return []richtext.Node{s.convertListNode(typed)}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return []richtext.Node{s.convertCodeBlockNode(typed)}
	default:
		return s.warnUnknownBlock(node)
	}
}

// warnUnknownBlock keeps the text of a block the editor has no node for.
func (s *state) warnUnknownBlock(node ast.Node) []richtext.Node {
	textValue := strings.TrimSpace(s.blockText(node))
	if textValue == "" {
		return nil
	}

	nodeKind := node.Kind().String()
	s.addWarning(
		richtext.WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown block node: %s", nodeKind),
	)

	return []richtext.Node{
		element(richtext.TypeParagraph, 1, []richtext.Node{s.newTextNode(textValue, newMarkStack())}),
	}
}

func (s *state) warnUnknownInline(node ast.Node, stack *markStack) []richtext.Node {
	textValue := strings.TrimSpace(s.blockText(node))
	if textValue == "" {
		return nil
	}

	nodeKind := node.Kind().String()
	s.addWarning(
		richtext.WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown inline node: %s", nodeKind),
	)

	return []richtext.Node{s.newTextNode(textValue, stack)}
}

// blockText returns the source text of node. Leaf blocks such as raw HTML
// carry their text in lines rather than in child nodes.
func (s *state) blockText(node ast.Node) string {
	if node.Type() == ast.TypeBlock {
		if lines := node.Lines(); lines != nil && lines.Len() > 0 {
			var sb strings.Builder
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				sb.Write(segment.Value(s.source))
			}
			return sb.String()
		}
	}

	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			sb.Write(textNode.Value(s.source))
			if textNode.SoftLineBreak() || textNode.HardLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		if str, ok := child.(*ast.String); ok {
			sb.Write(str.Value)
			continue
		}
		if sb.Len() > 0 && child.Type() == ast.TypeBlock {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.blockText(child))
	}
	return sb.String()
}

package mdimport

import "github.com/rgonek/lexical-renderer/richtext"

func element(nodeType richtext.NodeType, version int, children []richtext.Node) richtext.Node {
	if children == nil {
		children = []richtext.Node{}
	}
	return richtext.Node{
		Type:     string(nodeType),
		Version:  version,
		Children: children,
	}
}

func withAttrs(node richtext.Node, attrs map[string]any) richtext.Node {
	node.Attrs = attrs
	return node
}

func lineBreak() richtext.Node {
	return richtext.Node{Type: string(richtext.TypeLineBreak), Version: 1}
}

func isEmbed(node richtext.Node) bool {
	return node.Type == string(richtext.TypeUpload)
}

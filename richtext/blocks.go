package richtext

import (
	"strconv"
	"strings"
)

// renderParagraph renders a paragraph. A paragraph without rendered content
// is kept as a blank line so it still occupies vertical space.
func (s *state) renderParagraph(node Node) *OutputNode {
	out := &OutputNode{Role: RoleParagraph}
	s.applyBlockAttrs(out, node)

	out.Children = s.renderChildren(node)
	if len(out.Children) == 0 {
		out.Blank = true
	}
	return out
}

// renderHeading renders a heading at the level given by either a numeric
// "level" or an "h1".."h6" tag.
func (s *state) renderHeading(node Node) *OutputNode {
	level := s.headingLevel(node) + s.config.HeadingOffset
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	out := &OutputNode{Role: RoleHeading, Level: level}
	s.applyBlockAttrs(out, node)
	out.Children = s.renderChildren(node)
	return out
}

func (s *state) headingLevel(node Node) int {
	if level := node.GetIntAttr("level", 0); level > 0 {
		return level
	}

	tag := strings.ToLower(node.GetStringAttr("tag", ""))
	if tag == "" {
		s.missingAttribute(node, "level", s.config.DefaultHeadingLevel)
		return s.config.DefaultHeadingLevel
	}

	level, err := strconv.Atoi(strings.TrimPrefix(tag, "h"))
	if err != nil || !strings.HasPrefix(tag, "h") || level < 1 || level > 6 {
		s.invalidAttribute(node, "tag", tag, s.config.DefaultHeadingLevel)
		return s.config.DefaultHeadingLevel
	}
	return level
}

// renderQuote renders a block quote.
func (s *state) renderQuote(node Node) *OutputNode {
	out := &OutputNode{Role: RoleQuote}
	s.applyBlockAttrs(out, node)
	out.Children = s.renderChildren(node)
	return out
}

// applyBlockAttrs copies alignment, indent and direction onto a block.
func (s *state) applyBlockAttrs(out *OutputNode, node Node) {
	switch node.Align {
	case "left", "center", "right", "justify", "start", "end":
		out.Align = node.Align
	}
	if node.Indent > 0 {
		out.Indent = node.Indent
	}
	switch node.Direction {
	case "ltr", "rtl":
		out.Direction = node.Direction
	}
}

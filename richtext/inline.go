package richtext

import (
	"net/url"
	"strings"
)

// renderText renders a text leaf with its decoded mark stack.
func (s *state) renderText(node Node) *OutputNode {
	if node.Format < 0 {
		s.invalidAttribute(node, "format", node.Format, 0)
		return &OutputNode{Role: RoleText, Text: node.Text}
	}
	if unknown := s.profile.UnknownBits(node.Format); unknown != 0 {
		s.unknownFormat(node, unknown)
	}

	return &OutputNode{
		Role:  RoleText,
		Text:  node.Text,
		Marks: s.profile.Decode(node.Format),
	}
}

// renderLink renders a link container. The container is always emitted so
// the link text survives even when no destination can be resolved.
func (s *state) renderLink(node Node) *OutputNode {
	out := &OutputNode{Role: RoleLink}
	out.Children = s.renderChildren(node)

	fields := node.GetMapAttr("fields")
	href := strings.TrimSpace(node.GetStringAttr("url", stringField(fields, "url")))
	target := node.GetStringAttr("target", "")
	if target == "" {
		if newTab, _ := fields["newTab"].(bool); newTab {
			target = "_blank"
		}
	}
	rel := node.GetStringAttr("rel", "")

	if output, handled := s.applyLinkHook(node.Type, LinkInput{
		SourcePath: s.options.SourcePath,
		NodeType:   node.Type,
		LinkType:   stringField(fields, "linkType"),
		Href:       href,
		Target:     target,
		Rel:        rel,
		Text:       out.PlainText(),
		Attrs:      cloneAnyMap(node.Attrs),
	}); handled {
		href = output.Href
		if output.Target != "" {
			target = output.Target
		}
		if output.Rel != "" {
			rel = output.Rel
		}
	}

	switch target {
	case "", "_blank", "_self", "_parent", "_top":
	default:
		s.invalidAttribute(node, "target", target, "no target")
		target = ""
	}
	if rel == "" && target == "_blank" {
		rel = "noopener noreferrer"
	}

	if href == "" {
		s.missingAttribute(node, "url", "empty href")
	} else if !s.allowedHref(href) {
		s.unsafeLink(node, href)
		href = ""
	}

	out.Href = href
	out.Target = target
	out.Rel = rel
	return out
}

// allowedHref accepts relative references and absolute URLs whose scheme is
// listed in LinkSchemes.
func (s *state) allowedHref(href string) bool {
	parsed, err := url.Parse(href)
	if err != nil {
		return false
	}
	if parsed.Scheme == "" {
		return true
	}

	scheme := strings.ToLower(parsed.Scheme)
	for _, allowed := range s.config.LinkSchemes {
		if scheme == allowed {
			return true
		}
	}
	return false
}

func stringField(attrs map[string]any, key string) string {
	value, _ := attrs[key].(string)
	return value
}

package richtext

import (
	"fmt"
	"net/url"
	"strings"
)

// attrPath names an attribute, optionally nested under object attributes.
type attrPath []string

// Embed attributes differ across schema versions; the first path that
// resolves wins.
var (
	embedSourcePaths = []attrPath{{"src"}, {"url"}, {"value", "url"}, {"value", "src"}}
	embedAltPaths    = []attrPath{{"altText"}, {"alt"}, {"value", "alt"}}
	embedWidthPaths  = []attrPath{{"width"}, {"value", "width"}}
	embedHeightPaths = []attrPath{{"height"}, {"value", "height"}}
)

func (p attrPath) lookup(attrs map[string]any) (any, bool) {
	var current any = attrs
	for _, key := range p {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = object[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func projectString(attrs map[string]any, paths []attrPath) string {
	for _, path := range paths {
		raw, ok := path.lookup(attrs)
		if !ok {
			continue
		}
		if value, ok := raw.(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func projectInt(attrs map[string]any, paths []attrPath) int {
	for _, path := range paths {
		raw, ok := path.lookup(attrs)
		if !ok {
			continue
		}
		if value, ok := toInt(raw); ok && value > 0 {
			return value
		}
	}
	return 0
}

// embedReference returns the media ID of an upload whose value was not
// populated by the CMS.
func embedReference(attrs map[string]any) string {
	switch value := attrs["value"].(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return fmt.Sprintf("%d", int64(value))
	case map[string]any:
		switch id := value["id"].(type) {
		case string:
			return strings.TrimSpace(id)
		case float64:
			return fmt.Sprintf("%d", int64(id))
		}
	}
	return ""
}

// renderEmbed renders an image or upload. An embed without a resolvable
// source, or whose source scheme is not in LinkSchemes, is omitted.
func (s *state) renderEmbed(node Node) *OutputNode {
	src := projectString(node.Attrs, embedSourcePaths)
	alt := projectString(node.Attrs, embedAltPaths)
	width := projectInt(node.Attrs, embedWidthPaths)
	height := projectInt(node.Attrs, embedHeightPaths)

	if output, handled := s.applyEmbedHook(node.Type, EmbedInput{
		SourcePath: s.options.SourcePath,
		NodeType:   node.Type,
		RelationTo: node.GetStringAttr("relationTo", ""),
		ID:         embedReference(node.Attrs),
		URL:        src,
		Alt:        alt,
		Attrs:      cloneAnyMap(node.Attrs),
	}); handled {
		src = output.URL
		if output.Alt != "" {
			alt = output.Alt
		}
		if output.Width > 0 {
			width = output.Width
		}
		if output.Height > 0 {
			height = output.Height
		}
	}

	if src == "" {
		s.unresolvableEmbed(node)
		return nil
	}
	if !s.allowedHref(src) {
		s.unsafeEmbed(node, src)
		return nil
	}

	return &OutputNode{
		Role:   RoleEmbed,
		Src:    s.resolveMediaURL(src),
		Alt:    alt,
		Width:  width,
		Height: height,
	}
}

// resolveMediaURL prefixes relative sources with MediaBaseURL.
func (s *state) resolveMediaURL(src string) string {
	if s.config.MediaBaseURL == "" {
		return src
	}

	ref, err := url.Parse(src)
	if err != nil || ref.IsAbs() || ref.Host != "" {
		return src
	}

	base := s.config.MediaBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return src
	}
	return baseURL.ResolveReference(ref).String()
}

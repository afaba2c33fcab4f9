package richtext

import (
	"errors"
	"fmt"
)

// The functions below are the only places where the renderer degrades.
// Each one records a warning and decides what, if anything, is emitted.

func (s *state) unknownNode(node Node) *OutputNode {
	nodeType := node.Type
	if nodeType == "" {
		nodeType = "(missing type)"
	}

	if s.config.UnknownNodes == UnknownPlaceholder {
		s.addWarning(WarningUnknownNode, nodeType, fmt.Sprintf("unknown node rendered as placeholder: %s", nodeType))
		return &OutputNode{Role: RoleUnknown, NodeType: nodeType}
	}

	s.addWarning(WarningUnknownNode, nodeType, fmt.Sprintf("unknown node skipped: %s", nodeType))
	return nil
}

func (s *state) malformedNode(node Node) {
	if node.invalid {
		s.addWarning(WarningMalformedNode, "", "child is not a node object; skipped")
		return
	}
	if node.badField != "" {
		nodeType := node.Type
		if nodeType == "" {
			nodeType = "(missing type)"
		}
		s.addWarning(WarningMalformedNode, node.Type, fmt.Sprintf("%s field %q has the wrong type; node skipped", nodeType, node.badField))
		return
	}
	s.addWarning(WarningMalformedNode, node.Type, fmt.Sprintf("%s children is not a sequence; subtree skipped", node.Type))
}

func (s *state) depthExceeded(node Node) {
	s.addWarning(
		WarningDepthExceeded,
		node.Type,
		fmt.Sprintf("nesting deeper than %d; subtree skipped", s.config.MaxDepth),
	)
}

func (s *state) missingAttribute(node Node, attr string, fallback any) {
	s.addWarning(
		WarningMissingAttribute,
		node.Type,
		fmt.Sprintf("%s missing %s; using %v", node.Type, attr, fallback),
	)
}

func (s *state) invalidAttribute(node Node, attr string, value, fallback any) {
	s.addWarning(
		WarningMissingAttribute,
		node.Type,
		fmt.Sprintf("%s has invalid %s %v; using %v", node.Type, attr, value, fallback),
	)
}

func (s *state) unknownFormat(node Node, bits int) {
	s.addWarning(
		WarningUnknownFormat,
		node.Type,
		fmt.Sprintf("format bits %#x are not defined by profile %s; ignored", bits, s.profile.Name),
	)
}

func (s *state) unsafeLink(node Node, href string) {
	s.addWarning(
		WarningUnsafeLink,
		node.Type,
		fmt.Sprintf("link href %q is not an allowed URL; href dropped", href),
	)
}

func (s *state) unsafeEmbed(node Node, src string) {
	s.addWarning(
		WarningUnsafeLink,
		node.Type,
		fmt.Sprintf("embed source %q is not an allowed URL; embed dropped", src),
	)
}

func (s *state) unresolvableEmbed(node Node) {
	s.addWarning(
		WarningUnresolvableEmbed,
		node.Type,
		fmt.Sprintf("%s has no resolvable source; skipped", node.Type),
	)
}

// hookFailed reports a hook error. Rendering continues with the built-in behavior.
func (s *state) hookFailed(nodeType, reference string, err error) {
	if errors.Is(err, ErrUnresolved) {
		s.addWarning(
			WarningUnresolvedReference,
			nodeType,
			fmt.Sprintf("unresolved reference %q; using fallback rendering", reference),
		)
		return
	}
	s.addWarning(
		WarningHookFailed,
		nodeType,
		fmt.Sprintf("hook failed for %q: %v; using fallback rendering", reference, err),
	)
}

package richtext

// renderList renders a list. The ordering kind only sets the role of the
// output node; items are rendered the same way for every kind.
func (s *state) renderList(node Node) *OutputNode {
	kind := s.listKind(node)

	out := &OutputNode{
		Role:     RoleList,
		ListKind: kind,
	}
	if kind == ListNumber {
		out.Start = node.GetIntAttr("start", 1)
	}
	s.applyBlockAttrs(out, node)

	s.listKinds = append(s.listKinds, kind)
	out.Children = s.renderChildren(node)
	s.listKinds = s.listKinds[:len(s.listKinds)-1]

	return out
}

func (s *state) listKind(node Node) ListKind {
	switch listType := node.GetStringAttr("listType", ""); listType {
	case "bullet":
		return ListBullet
	case "number":
		return ListNumber
	case "check":
		return ListCheck
	case "":
	default:
		s.invalidAttribute(node, "listType", listType, ListBullet)
		return ListBullet
	}

	switch tag := node.GetStringAttr("tag", ""); tag {
	case "ul":
		return ListBullet
	case "ol":
		return ListNumber
	case "":
		s.missingAttribute(node, "listType", ListBullet)
		return ListBullet
	default:
		s.invalidAttribute(node, "tag", tag, ListBullet)
		return ListBullet
	}
}

// renderListItem renders a list item; it may own nested lists.
func (s *state) renderListItem(node Node) *OutputNode {
	out := &OutputNode{Role: RoleListItem}
	s.applyBlockAttrs(out, node)

	if value := node.GetIntAttr("value", 0); value > 0 {
		out.Value = value
	}
	if s.currentListKind() == ListCheck {
		checked, _ := node.GetBoolAttr("checked")
		out.Checked = &checked
	}

	out.Children = s.renderChildren(node)
	return out
}

func (s *state) currentListKind() ListKind {
	if len(s.listKinds) == 0 {
		return ""
	}
	return s.listKinds[len(s.listKinds)-1]
}

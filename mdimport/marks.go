package mdimport

import "github.com/rgonek/lexical-renderer/richtext"

type markStack struct {
	items []richtext.Mark
}

func newMarkStack() *markStack {
	return &markStack{}
}

func (s *markStack) push(mark richtext.Mark) {
	s.items = append(s.items, mark)
}

func (s *markStack) popByType(mark richtext.Mark) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] != mark {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return true
	}

	return false
}

func (s *markStack) current() []richtext.Mark {
	return s.items
}

func (s *state) newTextNode(textValue string, stack *markStack) richtext.Node {
	return richtext.Node{
		Type:    string(richtext.TypeText),
		Version: 1,
		Text:    textValue,
		Format:  s.profile.Encode(stack.current()),
	}
}

// appendInlineNode appends next, merging adjacent text runs with the same format.
func appendInlineNode(content []richtext.Node, next richtext.Node) []richtext.Node {
	isText := next.Type == string(richtext.TypeText)
	if isText && next.Text == "" {
		return content
	}
	if len(content) == 0 {
		return append(content, next)
	}

	last := &content[len(content)-1]
	if isText && last.Type == string(richtext.TypeText) && last.Format == next.Format {
		last.Text += next.Text
		return content
	}

	return append(content, next)
}

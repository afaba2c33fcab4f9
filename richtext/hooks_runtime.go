package richtext

import (
	"errors"
	"fmt"
	"strings"
)

func (s *state) applyLinkHook(nodeType string, input LinkInput) (LinkOutput, bool) {
	if s.config.LinkHook == nil {
		return LinkOutput{}, false
	}

	output, err := s.config.LinkHook(s.ctx, input)
	if err == nil && output.Handled {
		err = validateLinkOutput(output)
	}
	if err != nil {
		s.hookFailed(nodeType, input.Href, err)
		return LinkOutput{}, false
	}
	if !output.Handled {
		return LinkOutput{}, false
	}

	output.Href = strings.TrimSpace(output.Href)
	output.Target = strings.TrimSpace(output.Target)
	output.Rel = strings.TrimSpace(output.Rel)

	return output, true
}

func (s *state) applyEmbedHook(nodeType string, input EmbedInput) (EmbedOutput, bool) {
	if s.config.EmbedHook == nil {
		return EmbedOutput{}, false
	}

	reference := input.ID
	if reference == "" {
		reference = input.URL
	}

	output, err := s.config.EmbedHook(s.ctx, input)
	if err == nil && output.Handled {
		err = validateEmbedOutput(output)
	}
	if err != nil {
		s.hookFailed(nodeType, reference, err)
		return EmbedOutput{}, false
	}
	if !output.Handled {
		return EmbedOutput{}, false
	}

	output.URL = strings.TrimSpace(output.URL)
	output.Alt = strings.TrimSpace(output.Alt)

	return output, true
}

func validateLinkOutput(output LinkOutput) error {
	if strings.TrimSpace(output.Href) == "" {
		return errors.New("handled link output requires non-empty href")
	}
	return nil
}

func validateEmbedOutput(output EmbedOutput) error {
	if strings.TrimSpace(output.URL) == "" {
		return errors.New("handled embed output requires non-empty url")
	}
	if output.Width < 0 || output.Height < 0 {
		return fmt.Errorf("handled embed output has negative dimensions %dx%d", output.Width, output.Height)
	}
	return nil
}

func cloneAnyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = cloneAnyValue(value)
	}

	return dst
}

func cloneAnyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneAnyMap(typed)
	case []any:
		cloned := make([]any, len(typed))
		for index := range typed {
			cloned[index] = cloneAnyValue(typed[index])
		}
		return cloned
	default:
		return value
	}
}

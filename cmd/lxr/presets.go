package main

import (
	"fmt"
	"strings"

	"github.com/rgonek/lexical-renderer/richtext"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetLegacy   = "legacy"
)

func presetConfig(preset string) (richtext.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return richtext.Config{}, nil
	case presetStrict:
		return richtext.Config{
			UnknownNodes: richtext.UnknownPlaceholder,
			LinkSchemes:  []string{"https", "mailto"},
			MaxDepth:     64,
		}, nil
	case presetLegacy:
		return richtext.Config{
			FormatProfile: richtext.ProfileLegacy,
		}, nil
	default:
		return richtext.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, legacy)", preset)
	}
}

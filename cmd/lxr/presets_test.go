package main

import (
	"testing"

	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetConfig(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		cfg, err := presetConfig(presetBalanced)
		require.NoError(t, err)
		assert.Equal(t, richtext.Config{}, cfg)
	})

	t.Run("empty defaults to balanced", func(t *testing.T) {
		cfg, err := presetConfig("")
		require.NoError(t, err)
		assert.Equal(t, richtext.Config{}, cfg)
	})

	t.Run("strict", func(t *testing.T) {
		cfg, err := presetConfig(presetStrict)
		require.NoError(t, err)
		assert.Equal(t, richtext.UnknownPlaceholder, cfg.UnknownNodes)
		assert.Equal(t, []string{"https", "mailto"}, cfg.LinkSchemes)
		assert.Equal(t, 64, cfg.MaxDepth)
	})

	t.Run("legacy", func(t *testing.T) {
		cfg, err := presetConfig(" Legacy ")
		require.NoError(t, err)
		assert.Equal(t, richtext.ProfileLegacy, cfg.FormatProfile)
	})

	t.Run("every preset builds a renderer", func(t *testing.T) {
		for _, preset := range []string{presetBalanced, presetStrict, presetLegacy} {
			cfg, err := presetConfig(preset)
			require.NoError(t, err)
			_, err = richtext.New(cfg)
			assert.NoError(t, err, preset)
		}
	})
}

func TestPresetConfigInvalid(t *testing.T) {
	_, err := presetConfig("unknown")
	require.Error(t, err)
	assert.Equal(t, `unknown preset "unknown" (allowed: balanced, strict, legacy)`, err.Error())
}

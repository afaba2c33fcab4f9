package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rgonek/lexical-renderer/htmlrender"
	"github.com/rgonek/lexical-renderer/richtext"
	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of the optional YAML config file.
type fileConfig struct {
	Preset   string          `yaml:"preset"`
	Renderer richtext.Config `yaml:"renderer"`
	HTML     htmlConfig      `yaml:"html"`
}

type htmlConfig struct {
	IndentWidth     int  `yaml:"indentWidth"`
	UnknownComments bool `yaml:"unknownComments"`
}

// renderFlags holds the render command's flag values.
type renderFlags struct {
	preset       string
	configPath   string
	profile      string
	mediaBaseURL string
	source       string
	output       string
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := readConfigFile(path)
	if err != nil {
		return cfg, err
	}
	err = decodeFileConfig(path, data, &cfg)
	return cfg, err
}

func readConfigFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

// decodeFileConfig decodes data onto cfg. Keys absent from the file keep
// the values already in cfg, so explicit zero values still override.
func decodeFileConfig(path string, data []byte, cfg *fileConfig) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// resolveConfig layers the preset, the config file and explicit flags, in
// that order.
func resolveConfig(flags renderFlags) (richtext.Config, htmlrender.Options, error) {
	data, err := readConfigFile(flags.configPath)
	if err != nil {
		return richtext.Config{}, htmlrender.Options{}, err
	}

	var file fileConfig
	if err := decodeFileConfig(flags.configPath, data, &file); err != nil {
		return richtext.Config{}, htmlrender.Options{}, err
	}

	preset := flags.preset
	if preset == "" {
		preset = file.Preset
	}
	base, err := presetConfig(preset)
	if err != nil {
		return richtext.Config{}, htmlrender.Options{}, err
	}

	layered := fileConfig{Renderer: base}
	if err := decodeFileConfig(flags.configPath, data, &layered); err != nil {
		return richtext.Config{}, htmlrender.Options{}, err
	}
	cfg := layered.Renderer

	if flags.profile != "" {
		cfg.FormatProfile = richtext.ProfileName(flags.profile)
	}
	if flags.mediaBaseURL != "" {
		cfg.MediaBaseURL = flags.mediaBaseURL
	}

	options := htmlrender.Options{
		IndentWidth:     file.HTML.IndentWidth,
		UnknownComments: file.HTML.UnknownComments,
	}
	return cfg, options, nil
}

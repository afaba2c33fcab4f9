package richtext

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// UnknownPolicy controls behavior for unrecognized node types.
type UnknownPolicy string

const (
	// UnknownSkip omits the node and its subtree.
	UnknownSkip UnknownPolicy = "skip"
	// UnknownPlaceholder emits an unknown-role node naming the type; children are not rendered.
	UnknownPlaceholder UnknownPolicy = "placeholder"
)

// Config holds all renderer configuration options.
type Config struct {
	FormatProfile       ProfileName     `json:"formatProfile,omitempty" yaml:"formatProfile,omitempty"`
	UnknownNodes        UnknownPolicy   `json:"unknownNodes,omitempty" yaml:"unknownNodes,omitempty"`
	DefaultHeadingLevel int             `json:"defaultHeadingLevel,omitempty" yaml:"defaultHeadingLevel,omitempty"`
	HeadingOffset       int             `json:"headingOffset,omitempty" yaml:"headingOffset,omitempty"`
	MediaBaseURL        string          `json:"mediaBaseURL,omitempty" yaml:"mediaBaseURL,omitempty"`
	LinkSchemes         []string        `json:"linkSchemes,omitempty" yaml:"linkSchemes,omitempty"`
	MaxDepth            int             `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	Logger              *zerolog.Logger `json:"-" yaml:"-"`
	LinkHook            LinkHook        `json:"-" yaml:"-"`
	EmbedHook           EmbedHook       `json:"-" yaml:"-"`
}

func (c Config) applyDefaults() Config {
	if c.FormatProfile == "" {
		c.FormatProfile = ProfileLexical
	}
	if c.UnknownNodes == "" {
		c.UnknownNodes = UnknownSkip
	}
	if c.DefaultHeadingLevel == 0 {
		c.DefaultHeadingLevel = 2
	}
	if c.LinkSchemes == nil {
		c.LinkSchemes = []string{"http", "https", "mailto", "tel"}
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}

	return c
}

// clone returns a copy of Config that shares no slices with the caller.
func (c Config) clone() Config {
	cloned := c
	if c.LinkSchemes != nil {
		cloned.LinkSchemes = make([]string, len(c.LinkSchemes))
		for i, scheme := range c.LinkSchemes {
			cloned.LinkSchemes[i] = strings.ToLower(strings.TrimSpace(scheme))
		}
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if _, ok := LookupProfile(c.FormatProfile); !ok {
		return fmt.Errorf("invalid formatProfile %q", c.FormatProfile)
	}
	if c.UnknownNodes != UnknownSkip && c.UnknownNodes != UnknownPlaceholder {
		return fmt.Errorf("invalid unknownNodes policy %q", c.UnknownNodes)
	}
	if c.DefaultHeadingLevel < 1 || c.DefaultHeadingLevel > 6 {
		return fmt.Errorf("defaultHeadingLevel must be between 1 and 6, got %d", c.DefaultHeadingLevel)
	}
	if c.HeadingOffset < 0 || c.HeadingOffset > 5 {
		return fmt.Errorf("headingOffset must be between 0 and 5, got %d", c.HeadingOffset)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	if c.MediaBaseURL != "" {
		base, err := url.Parse(c.MediaBaseURL)
		if err != nil {
			return fmt.Errorf("invalid mediaBaseURL %q: %w", c.MediaBaseURL, err)
		}
		if base.Scheme == "" || base.Host == "" {
			return fmt.Errorf("invalid mediaBaseURL %q: must be absolute", c.MediaBaseURL)
		}
	}
	for _, scheme := range c.LinkSchemes {
		if strings.TrimSpace(scheme) == "" {
			return fmt.Errorf("linkSchemes contains empty entry")
		}
	}

	return nil
}

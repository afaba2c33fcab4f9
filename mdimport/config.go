package mdimport

import (
	"fmt"

	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/rs/zerolog"
)

// Config configures Markdown to rich-text conversion.
type Config struct {
	// FormatProfile selects the bit layout written into text format fields.
	FormatProfile richtext.ProfileName `json:"formatProfile,omitempty" yaml:"formatProfile,omitempty"`
	// HeadingOffset shifts every heading level down, clamped to h6.
	HeadingOffset int             `json:"headingOffset,omitempty" yaml:"headingOffset,omitempty"`
	Logger        *zerolog.Logger `json:"-" yaml:"-"`
}

func (c Config) applyDefaults() Config {
	if c.FormatProfile == "" {
		c.FormatProfile = richtext.ProfileLexical
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if _, ok := richtext.LookupProfile(c.FormatProfile); !ok {
		return fmt.Errorf("invalid formatProfile %q", c.FormatProfile)
	}
	if c.HeadingOffset < 0 || c.HeadingOffset > 5 {
		return fmt.Errorf("headingOffset must be between 0 and 5, got %d", c.HeadingOffset)
	}
	return nil
}

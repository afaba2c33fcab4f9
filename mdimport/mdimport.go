package mdimport

import (
	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Importer converts GFM markdown into rich-text documents.
// An Importer is safe for concurrent use.
type Importer struct {
	config  Config
	profile richtext.FormatProfile
	parser  goldmark.Markdown
}

type state struct {
	config   Config
	profile  richtext.FormatProfile
	source   []byte
	logger   zerolog.Logger
	warnings []richtext.Warning
}

// New creates a new Importer with the given config.
func New(config Config) (*Importer, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	profile, _ := richtext.LookupProfile(cfg.FormatProfile)
	return &Importer{
		config:  cfg,
		profile: profile,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Import parses markdown and returns the equivalent document.
// Markdown without content yields a root with no children.
func (i *Importer) Import(markdown string) (Result, error) {
	s := &state{
		config:  i.config,
		profile: i.profile,
		source:  []byte(markdown),
		logger:  i.config.Logger.With().Str("component", "mdimport").Logger(),
	}

	root := i.parser.Parser().Parse(text.NewReader(s.source))
	doc := s.convertDocument(root)

	s.logger.Debug().
		Int("blocks", len(doc.Root.Children)).
		Int("warnings", len(s.warnings)).
		Msg("markdown imported")

	return Result{
		Document: doc,
		Warnings: s.warnings,
	}, nil
}

func (s *state) addWarning(warnType richtext.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, richtext.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
	s.logger.Warn().
		Str("warning", string(warnType)).
		Str("nodeType", nodeType).
		Msg(message)
}

package richtext

import (
	"context"

	"github.com/rs/zerolog"
)

// Renderer converts editor documents into output trees.
// A Renderer is immutable after New and safe for concurrent use.
type Renderer struct {
	config  Config
	profile FormatProfile
}

type state struct {
	config    Config
	profile   FormatProfile
	ctx       context.Context
	options   RenderOptions
	logger    zerolog.Logger
	warnings  []Warning
	depth     int
	listKinds []ListKind
}

// New creates a new Renderer with the given config.
func New(config Config) (*Renderer, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	profile, _ := LookupProfile(cfg.FormatProfile)
	return &Renderer{
		config:  cfg,
		profile: profile,
	}, nil
}

var defaultRenderer, _ = New(Config{})

// Render renders doc with the default configuration.
func Render(doc *Document) *OutputNode {
	return defaultRenderer.Render(doc)
}

// Render returns the output tree for doc, or nil when doc is nil or empty.
func (r *Renderer) Render(doc *Document) *OutputNode {
	return r.RenderResult(context.Background(), doc, RenderOptions{}).Tree
}

// RenderResult renders doc and returns the tree together with the
// diagnostics raised along the way. ctx is handed to hooks only.
func (r *Renderer) RenderResult(ctx context.Context, doc *Document, opts RenderOptions) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := r.config.Logger.With().Str("component", "richtext").Logger()
	if opts.SourcePath != "" {
		logger = logger.With().Str("source", opts.SourcePath).Logger()
	}

	s := &state{
		config:  r.config,
		profile: r.profile,
		ctx:     ctx,
		options: opts,
		logger:  logger,
	}

	return Result{
		Tree:     s.renderDocument(doc),
		Warnings: s.warnings,
	}
}

func (s *state) renderDocument(doc *Document) *OutputNode {
	if doc == nil || doc.Root == nil {
		return nil
	}
	root := *doc.Root
	if root.Malformed() {
		s.malformedNode(root)
		return nil
	}
	if IsEmpty(doc) {
		return nil
	}

	out := &OutputNode{Role: RoleRoot}
	s.applyBlockAttrs(out, root)
	out.Children = s.renderChildren(root)
	return out
}

// renderNode dispatches on the node variant. It returns nil when the node
// is omitted; callers filter nils instead of inserting gaps.
func (s *state) renderNode(node Node) *OutputNode {
	if node.Malformed() {
		s.malformedNode(node)
		return nil
	}
	if s.config.MaxDepth > 0 && s.depth >= s.config.MaxDepth {
		s.depthExceeded(node)
		return nil
	}

	s.depth++
	defer func() { s.depth-- }()

	switch NodeType(node.Type) {
	case TypeParagraph:
		return s.renderParagraph(node)
	case TypeHeading:
		return s.renderHeading(node)
	case TypeList:
		return s.renderList(node)
	case TypeListItem:
		return s.renderListItem(node)
	case TypeQuote:
		return s.renderQuote(node)
	case TypeLink, TypeAutoLink:
		return s.renderLink(node)
	case TypeText:
		return s.renderText(node)
	case TypeLineBreak:
		return &OutputNode{Role: RoleBreak}
	case TypeTab:
		return &OutputNode{Role: RoleTab, Text: "\t"}
	case TypeHorizontalRule:
		return &OutputNode{Role: RoleRule}
	case TypeImage, TypeUpload:
		return s.renderEmbed(node)
	default:
		return s.unknownNode(node)
	}
}

func (s *state) renderChildren(node Node) []*OutputNode {
	children := ChildrenOf(node)
	if len(children) == 0 {
		return nil
	}

	out := make([]*OutputNode, 0, len(children))
	for _, child := range children {
		if rendered := s.renderNode(child); rendered != nil {
			out = append(out, rendered)
		}
	}
	return out
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
	s.logger.Warn().
		Str("warning", string(warnType)).
		Str("nodeType", nodeType).
		Msg(message)
}

package richtext

import (
	"context"
	"errors"
)

// ErrUnresolved indicates that a hook could not resolve a link or embed reference.
var ErrUnresolved = errors.New("unresolved link or embed reference")

// RenderOptions carries optional per-render context.
type RenderOptions struct {
	SourcePath string
}

// LinkHook can rewrite the destination of a link during rendering,
// e.g. to turn an internal document reference into a site path.
type LinkHook func(ctx context.Context, in LinkInput) (LinkOutput, error)

// EmbedHook can resolve the source of an image or upload,
// typically when the upload value is only a media ID.
type EmbedHook func(ctx context.Context, in EmbedInput) (EmbedOutput, error)

// LinkInput describes a link being rendered.
type LinkInput struct {
	SourcePath string
	NodeType   string
	LinkType   string
	Href       string
	Target     string
	Rel        string
	Text       string
	Attrs      map[string]any
}

// LinkOutput contains hook-provided link data.
type LinkOutput struct {
	Href    string
	Target  string
	Rel     string
	Handled bool
}

// EmbedInput describes an embed being rendered.
type EmbedInput struct {
	SourcePath string
	NodeType   string
	RelationTo string
	ID         string
	URL        string
	Alt        string
	Attrs      map[string]any
}

// EmbedOutput contains hook-provided embed data. Zero dimensions keep the
// values found on the node.
type EmbedOutput struct {
	URL     string
	Alt     string
	Width   int
	Height  int
	Handled bool
}

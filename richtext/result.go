package richtext

// Result holds the output of a render.
type Result struct {
	Tree     *OutputNode `json:"tree,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

// WarningType categorizes render diagnostics.
type WarningType string

const (
	WarningUnknownNode         WarningType = "unknown_node"
	WarningUnknownFormat       WarningType = "unknown_format"
	WarningMissingAttribute    WarningType = "missing_attribute"
	WarningMalformedNode       WarningType = "malformed_node"
	WarningUnresolvableEmbed   WarningType = "unresolvable_embed"
	WarningUnresolvedReference WarningType = "unresolved_reference"
	WarningUnsafeLink          WarningType = "unsafe_link"
	WarningDepthExceeded       WarningType = "depth_exceeded"
	WarningHookFailed          WarningType = "hook_failed"
)

// Warning represents a non-fatal issue encountered during rendering.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}

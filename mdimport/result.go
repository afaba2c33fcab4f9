package mdimport

import "github.com/rgonek/lexical-renderer/richtext"

// Result holds the output of an import.
type Result struct {
	Document *richtext.Document `json:"document"`
	Warnings []richtext.Warning `json:"warnings,omitempty"`
}

package richtext

// Mark is a semantic wrapper applied around a text run.
type Mark string

const (
	MarkBold          Mark = "bold"
	MarkItalic        Mark = "italic"
	MarkStrikethrough Mark = "strikethrough"
	MarkUnderline     Mark = "underline"
	MarkCode          Mark = "code"
)

// markOrder is the nesting order of wrappers, outermost first. It does not
// depend on bit positions, so every profile produces the same stack shape.
var markOrder = []Mark{MarkBold, MarkItalic, MarkStrikethrough, MarkUnderline, MarkCode}

// ProfileName selects a bit layout for the text format field.
type ProfileName string

const (
	// ProfileLexical is the canonical layout: 1 bold, 2 italic, 4 strikethrough, 8 underline, 16 code.
	ProfileLexical ProfileName = "lexical"
	// ProfileLegacy is the layout written by older call sites: 1 bold, 2 italic, 8 underline,
	// 16 strikethrough, 32 code.
	ProfileLegacy ProfileName = "legacy"
)

// FormatProfile maps format bits to marks.
type FormatProfile struct {
	Name ProfileName
	bits map[Mark]int
}

var profiles = map[ProfileName]FormatProfile{
	ProfileLexical: {
		Name: ProfileLexical,
		bits: map[Mark]int{
			MarkBold:          1,
			MarkItalic:        2,
			MarkStrikethrough: 4,
			MarkUnderline:     8,
			MarkCode:          16,
		},
	},
	ProfileLegacy: {
		Name: ProfileLegacy,
		bits: map[Mark]int{
			MarkBold:          1,
			MarkItalic:        2,
			MarkUnderline:     8,
			MarkStrikethrough: 16,
			MarkCode:          32,
		},
	},
}

// LookupProfile returns the named profile.
func LookupProfile(name ProfileName) (FormatProfile, bool) {
	profile, ok := profiles[name]
	return profile, ok
}

// Decode turns a format bitmask into the ordered mark stack. Zero and
// negative values produce no marks.
func (p FormatProfile) Decode(format int) []Mark {
	if format <= 0 {
		return nil
	}

	var marks []Mark
	for _, mark := range markOrder {
		if bit := p.bits[mark]; bit != 0 && format&bit != 0 {
			marks = append(marks, mark)
		}
	}
	return marks
}

// Encode is the inverse of Decode. Marks the profile has no bit for are ignored.
func (p FormatProfile) Encode(marks []Mark) int {
	format := 0
	for _, mark := range marks {
		format |= p.bits[mark]
	}
	return format
}

// UnknownBits returns the bits of format the profile does not assign.
func (p FormatProfile) UnknownBits(format int) int {
	if format <= 0 {
		return 0
	}
	known := 0
	for _, bit := range p.bits {
		known |= bit
	}
	return format &^ known
}

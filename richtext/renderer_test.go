package richtext

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t testing.TB, cfg Config) *Renderer {
	t.Helper()

	r, err := New(cfg)
	require.NoError(t, err)

	return r
}

func mustParse(t testing.TB, input string) *Document {
	t.Helper()

	doc, err := ParseDocument([]byte(input))
	require.NoError(t, err)

	return doc
}

// docWith wraps top-level block JSON into a document value.
func docWith(blocks ...string) string {
	return `{"root":{"type":"root","version":1,"direction":"ltr","format":"","indent":0,"children":[` +
		strings.Join(blocks, ",") + `]}}`
}

func renderJSON(t testing.TB, cfg Config, input string) Result {
	t.Helper()
	return newTestRenderer(t, cfg).RenderResult(context.Background(), mustParse(t, input), RenderOptions{})
}

func countInputNodes(node Node) int {
	total := 1
	for _, child := range node.Children {
		total += countInputNodes(child)
	}
	return total
}

func TestRenderNilAndEmptyDocuments(t *testing.T) {
	r := newTestRenderer(t, Config{})

	assert.Nil(t, r.Render(nil))
	assert.Nil(t, r.Render(&Document{}))
	assert.Nil(t, r.Render(mustParse(t, `{"root":{"type":"root","children":[]}}`)))
	assert.Nil(t, r.Render(mustParse(t, `{"root":{"type":"root"}}`)))
	assert.Nil(t, r.Render(mustParse(t, `null`)))
}

func TestRenderMalformedRoot(t *testing.T) {
	result := renderJSON(t, Config{}, `{"root":{"type":"root","children":{"type":"paragraph"}}}`)

	assert.Nil(t, result.Tree)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningMalformedNode, result.Warnings[0].Type)

	result = renderJSON(t, Config{}, `{"root":"not a node"}`)
	assert.Nil(t, result.Tree)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningMalformedNode, result.Warnings[0].Type)
}

func TestRenderParagraphWithText(t *testing.T) {
	result := renderJSON(t, Config{}, docWith(
		`{"type":"paragraph","version":1,"format":"","indent":0,"direction":"ltr","children":[
			{"type":"text","version":1,"text":"Hello ","format":0},
			{"type":"text","version":1,"text":"world","format":1}
		]}`,
	))

	require.NotNil(t, result.Tree)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, RoleRoot, result.Tree.Role)
	assert.Equal(t, "ltr", result.Tree.Direction)

	require.Len(t, result.Tree.Children, 1)
	paragraph := result.Tree.Children[0]
	assert.Equal(t, "paragraph", paragraph.Tag())
	assert.False(t, paragraph.Blank)

	require.Len(t, paragraph.Children, 2)
	assert.Equal(t, "Hello ", paragraph.Children[0].Text)
	assert.Empty(t, paragraph.Children[0].Marks)
	assert.Equal(t, "world", paragraph.Children[1].Text)
	assert.Equal(t, []Mark{MarkBold}, paragraph.Children[1].Marks)
	assert.Equal(t, "Hello world", result.Tree.PlainText())
}

func TestRenderEmptyParagraphIsBlankLine(t *testing.T) {
	for name, input := range map[string]string{
		"empty children":  `{"type":"paragraph","children":[]}`,
		"absent children": `{"type":"paragraph"}`,
		"only unknown":    `{"type":"paragraph","children":[{"type":"mystery"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			tree := newTestRenderer(t, Config{}).Render(mustParse(t, docWith(input)))

			require.NotNil(t, tree)
			require.Len(t, tree.Children, 1)
			paragraph := tree.Children[0]
			assert.Equal(t, RoleParagraph, paragraph.Role)
			assert.True(t, paragraph.Blank)
			assert.Empty(t, paragraph.Children)
		})
	}
}

func TestRenderHeadingLevels(t *testing.T) {
	tests := []struct {
		name     string
		node     string
		cfg      Config
		level    int
		warnings int
	}{
		{name: "tag", node: `{"type":"heading","tag":"h3","children":[]}`, level: 3},
		{name: "numeric level", node: `{"type":"heading","level":5,"children":[]}`, level: 5},
		{name: "missing defaults to 2", node: `{"type":"heading","children":[]}`, level: 2, warnings: 1},
		{name: "invalid tag defaults to 2", node: `{"type":"heading","tag":"h9","children":[]}`, level: 2, warnings: 1},
		{name: "offset", node: `{"type":"heading","tag":"h1","children":[]}`, cfg: Config{HeadingOffset: 1}, level: 2},
		{name: "offset clamps", node: `{"type":"heading","tag":"h6","children":[]}`, cfg: Config{HeadingOffset: 3}, level: 6},
		{name: "configured default", node: `{"type":"heading","children":[]}`, cfg: Config{DefaultHeadingLevel: 4}, level: 4, warnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderJSON(t, tt.cfg, docWith(tt.node))

			require.Len(t, result.Tree.Children, 1)
			heading := result.Tree.Children[0]
			assert.Equal(t, RoleHeading, heading.Role)
			assert.Equal(t, tt.level, heading.Level)
			assert.Len(t, result.Warnings, tt.warnings)
			for _, warning := range result.Warnings {
				assert.Equal(t, WarningMissingAttribute, warning.Type)
			}
		})
	}
}

func TestRenderListKinds(t *testing.T) {
	tests := []struct {
		name  string
		node  string
		kind  ListKind
		tag   string
		start int
	}{
		{name: "bullet", node: `{"type":"list","listType":"bullet","tag":"ul","children":[]}`, kind: ListBullet, tag: "list:unordered"},
		{name: "number", node: `{"type":"list","listType":"number","start":3,"tag":"ol","children":[]}`, kind: ListNumber, tag: "list:ordered", start: 3},
		{name: "number default start", node: `{"type":"list","listType":"number","children":[]}`, kind: ListNumber, tag: "list:ordered", start: 1},
		{name: "check", node: `{"type":"list","listType":"check","children":[]}`, kind: ListCheck, tag: "list:unordered"},
		{name: "tag only", node: `{"type":"list","tag":"ol","children":[]}`, kind: ListNumber, tag: "list:ordered", start: 1},
		{name: "missing kind", node: `{"type":"list","children":[]}`, kind: ListBullet, tag: "list:unordered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newTestRenderer(t, Config{}).Render(mustParse(t, docWith(tt.node)))

			require.Len(t, tree.Children, 1)
			list := tree.Children[0]
			assert.Equal(t, tt.kind, list.ListKind)
			assert.Equal(t, tt.tag, list.Tag())
			assert.Equal(t, tt.start, list.Start)
		})
	}
}

func TestRenderNestedList(t *testing.T) {
	input := docWith(`{"type":"list","listType":"bullet","tag":"ul","children":[
		{"type":"listitem","value":1,"children":[
			{"type":"text","text":"outer","format":0},
			{"type":"list","listType":"number","tag":"ol","start":1,"children":[
				{"type":"listitem","value":1,"children":[{"type":"text","text":"first","format":0}]},
				{"type":"listitem","value":2,"children":[{"type":"text","text":"second","format":0}]}
			]}
		]}
	]}`)

	result := renderJSON(t, Config{}, input)
	assert.Empty(t, result.Warnings)

	outer := result.Tree.Children[0]
	assert.Equal(t, "list:unordered", outer.Tag())
	require.Len(t, outer.Children, 1)

	item := outer.Children[0]
	assert.Equal(t, RoleListItem, item.Role)
	assert.Nil(t, item.Checked)
	require.Len(t, item.Children, 2)
	assert.Equal(t, "outer", item.Children[0].Text)

	inner := item.Children[1]
	assert.Equal(t, "list:ordered", inner.Tag())
	require.Len(t, inner.Children, 2)
	assert.Equal(t, "first", inner.Children[0].PlainText())
	assert.Equal(t, "second", inner.Children[1].PlainText())
	assert.Equal(t, 2, inner.Children[1].Value)
}

func TestRenderCheckList(t *testing.T) {
	input := docWith(`{"type":"list","listType":"check","children":[
		{"type":"listitem","checked":true,"children":[{"type":"text","text":"done","format":0}]},
		{"type":"listitem","children":[
			{"type":"text","text":"todo","format":0},
			{"type":"list","listType":"bullet","children":[
				{"type":"listitem","checked":true,"children":[{"type":"text","text":"plain","format":0}]}
			]}
		]}
	]}`)

	tree := newTestRenderer(t, Config{}).Render(mustParse(t, input))
	list := tree.Children[0]
	require.Len(t, list.Children, 2)

	require.NotNil(t, list.Children[0].Checked)
	assert.True(t, *list.Children[0].Checked)
	require.NotNil(t, list.Children[1].Checked)
	assert.False(t, *list.Children[1].Checked)

	nested := list.Children[1].Children[1]
	assert.Nil(t, nested.Children[0].Checked)
}

func TestRenderQuoteAndLeaves(t *testing.T) {
	input := docWith(
		`{"type":"quote","children":[
			{"type":"text","text":"line one","format":0},
			{"type":"linebreak","version":1},
			{"type":"tab","text":"\t","format":0},
			{"type":"text","text":"line two","format":0}
		]}`,
		`{"type":"horizontalrule","version":1}`,
	)

	result := renderJSON(t, Config{}, input)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Tree.Children, 2)

	quote := result.Tree.Children[0]
	assert.Equal(t, "quote", quote.Tag())
	require.Len(t, quote.Children, 4)
	assert.Equal(t, RoleBreak, quote.Children[1].Role)
	assert.Empty(t, quote.Children[1].Children)
	assert.Equal(t, RoleTab, quote.Children[2].Role)
	assert.Equal(t, "line one\n\tline two", quote.PlainText())

	assert.Equal(t, RoleRule, result.Tree.Children[1].Role)
}

func TestRenderBlockPresentation(t *testing.T) {
	input := docWith(`{"type":"paragraph","format":"center","indent":2,"direction":"rtl","children":[{"type":"text","text":"x","format":0}]}`,
		`{"type":"paragraph","format":"sideways","indent":0,"direction":null,"children":[{"type":"text","text":"y","format":0}]}`)

	tree := newTestRenderer(t, Config{}).Render(mustParse(t, input))

	first := tree.Children[0]
	assert.Equal(t, "center", first.Align)
	assert.Equal(t, 2, first.Indent)
	assert.Equal(t, "rtl", first.Direction)

	second := tree.Children[1]
	assert.Empty(t, second.Align)
	assert.Empty(t, second.Direction)
}

func TestRenderTextFormatting(t *testing.T) {
	tests := []struct {
		name     string
		profile  ProfileName
		format   int
		marks    []Mark
		warnings int
	}{
		{name: "plain", format: 0},
		{name: "bold italic", format: 1 | 2, marks: []Mark{MarkBold, MarkItalic}},
		{name: "all lexical", format: 31, marks: []Mark{MarkBold, MarkItalic, MarkStrikethrough, MarkUnderline, MarkCode}},
		{name: "underline code", format: 8 | 16, marks: []Mark{MarkUnderline, MarkCode}},
		{name: "lexical unknown bit", format: 32 | 1, marks: []Mark{MarkBold}, warnings: 1},
		{name: "legacy strike code", profile: ProfileLegacy, format: 16 | 32, marks: []Mark{MarkStrikethrough, MarkCode}},
		{name: "legacy unknown bit", profile: ProfileLegacy, format: 4, warnings: 1},
		{name: "negative", format: -1, warnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := docWith(`{"type":"paragraph","children":[{"type":"text","text":"run","format":` + strconv.Itoa(tt.format) + `}]}`)
			result := renderJSON(t, Config{FormatProfile: tt.profile}, input)

			run := result.Tree.Children[0].Children[0]
			assert.Equal(t, RoleText, run.Role)
			assert.Equal(t, "run", run.Text)
			assert.Equal(t, tt.marks, run.Marks)
			assert.Len(t, result.Warnings, tt.warnings)
		})
	}
}

func TestRenderLink(t *testing.T) {
	t.Run("lexical attributes", func(t *testing.T) {
		result := renderJSON(t, Config{}, docWith(`{"type":"paragraph","children":[
			{"type":"link","url":"https://example.com","target":"_self","rel":"nofollow","children":[{"type":"text","text":"site","format":0}]}
		]}`))

		link := result.Tree.Children[0].Children[0]
		assert.Equal(t, RoleLink, link.Role)
		assert.Equal(t, "https://example.com", link.Href)
		assert.Equal(t, "_self", link.Target)
		assert.Equal(t, "nofollow", link.Rel)
		assert.Equal(t, "site", link.PlainText())
		assert.Empty(t, result.Warnings)
	})

	t.Run("fields with new tab", func(t *testing.T) {
		result := renderJSON(t, Config{}, docWith(`{"type":"paragraph","children":[
			{"type":"link","fields":{"url":"/about","newTab":true,"linkType":"custom"},"children":[{"type":"text","text":"about","format":0}]}
		]}`))

		link := result.Tree.Children[0].Children[0]
		assert.Equal(t, "/about", link.Href)
		assert.Equal(t, "_blank", link.Target)
		assert.Equal(t, "noopener noreferrer", link.Rel)
	})

	t.Run("autolink", func(t *testing.T) {
		tree := newTestRenderer(t, Config{}).Render(mustParse(t, docWith(`{"type":"paragraph","children":[
			{"type":"autolink","url":"mailto:hi@example.com","children":[{"type":"text","text":"hi@example.com","format":0}]}
		]}`)))

		link := tree.Children[0].Children[0]
		assert.Equal(t, RoleLink, link.Role)
		assert.Equal(t, "mailto:hi@example.com", link.Href)
	})

	t.Run("missing url keeps text", func(t *testing.T) {
		result := renderJSON(t, Config{}, docWith(`{"type":"paragraph","children":[
			{"type":"link","children":[{"type":"text","text":"click","format":0}]}
		]}`))

		link := result.Tree.Children[0].Children[0]
		assert.Equal(t, RoleLink, link.Role)
		assert.Empty(t, link.Href)
		require.Len(t, link.Children, 1)
		assert.Equal(t, "click", link.Children[0].Text)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, WarningMissingAttribute, result.Warnings[0].Type)
	})

	t.Run("unsafe scheme", func(t *testing.T) {
		result := renderJSON(t, Config{}, docWith(`{"type":"paragraph","children":[
			{"type":"link","url":"javascript:alert(1)","children":[{"type":"text","text":"x","format":0}]}
		]}`))

		link := result.Tree.Children[0].Children[0]
		assert.Empty(t, link.Href)
		assert.Equal(t, "x", link.PlainText())
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, WarningUnsafeLink, result.Warnings[0].Type)
	})

	t.Run("invalid target dropped", func(t *testing.T) {
		result := renderJSON(t, Config{}, docWith(`{"type":"paragraph","children":[
			{"type":"link","url":"https://example.com","target":"frame1","children":[]}
		]}`))

		link := result.Tree.Children[0].Children[0]
		assert.Empty(t, link.Target)
		require.Len(t, result.Warnings, 1)
	})
}

func TestRenderEmbeds(t *testing.T) {
	tests := []struct {
		name   string
		node   string
		cfg    Config
		src    string
		alt    string
		width  int
		height int
	}{
		{
			name: "image src",
			node: `{"type":"image","src":"https://cdn.example.com/a.png","altText":"A","width":640,"height":480}`,
			src:  "https://cdn.example.com/a.png", alt: "A", width: 640, height: 480,
		},
		{
			name: "upload value url",
			node: `{"type":"upload","relationTo":"media","value":{"id":"42","url":"/media/b.jpg","alt":"B","width":100,"height":50}}`,
			src:  "/media/b.jpg", alt: "B", width: 100, height: 50,
		},
		{
			name: "upload value src",
			node: `{"type":"upload","value":{"src":"https://cdn.example.com/c.jpg"}}`,
			src:  "https://cdn.example.com/c.jpg",
		},
		{
			name: "direct url wins over nested",
			node: `{"type":"upload","url":"https://cdn.example.com/direct.jpg","value":{"url":"/nested.jpg"}}`,
			src:  "https://cdn.example.com/direct.jpg",
		},
		{
			name: "media base url",
			node: `{"type":"upload","value":{"url":"/api/media/file/d.png"}}`,
			cfg:  Config{MediaBaseURL: "https://cms.example.com"},
			src:  "https://cms.example.com/api/media/file/d.png",
		},
		{
			name: "non numeric width ignored",
			node: `{"type":"image","src":"e.png","width":"inherit"}`,
			src:  "e.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderJSON(t, tt.cfg, docWith(tt.node))

			require.Len(t, result.Tree.Children, 1)
			embed := result.Tree.Children[0]
			assert.Equal(t, RoleEmbed, embed.Role)
			assert.Equal(t, tt.src, embed.Src)
			assert.Equal(t, tt.alt, embed.Alt)
			assert.Equal(t, tt.width, embed.Width)
			assert.Equal(t, tt.height, embed.Height)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestRenderUnresolvableEmbedIsDropped(t *testing.T) {
	result := renderJSON(t, Config{}, docWith(
		`{"type":"paragraph","children":[{"type":"text","text":"before","format":0}]}`,
		`{"type":"upload","relationTo":"media","value":"65a1f0"}`,
		`{"type":"paragraph","children":[{"type":"text","text":"after","format":0}]}`,
	))

	require.Len(t, result.Tree.Children, 2)
	assert.Equal(t, "before", result.Tree.Children[0].PlainText())
	assert.Equal(t, "after", result.Tree.Children[1].PlainText())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningUnresolvableEmbed, result.Warnings[0].Type)
	assert.Equal(t, "upload", result.Warnings[0].NodeType)
}

func TestRenderUnsafeEmbedIsDropped(t *testing.T) {
	tests := []struct {
		name string
		node string
		cfg  Config
	}{
		{
			name: "javascript src",
			node: `{"type":"image","src":"javascript:alert(1)"}`,
		},
		{
			name: "data src",
			node: `{"type":"upload","value":{"url":"data:image/svg+xml;base64,PHN2Zz4="}}`,
		},
		{
			name: "scheme outside configured list",
			node: `{"type":"image","src":"http://cdn.example.com/a.png"}`,
			cfg:  Config{LinkSchemes: []string{"https"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderJSON(t, tt.cfg, docWith(
				tt.node,
				`{"type":"paragraph","children":[{"type":"text","text":"after","format":0}]}`,
			))

			require.Len(t, result.Tree.Children, 1)
			assert.Equal(t, RoleParagraph, result.Tree.Children[0].Role)
			require.Len(t, result.Warnings, 1)
			assert.Equal(t, WarningUnsafeLink, result.Warnings[0].Type)
			assert.Contains(t, result.Warnings[0].Message, "embed source")
		})
	}
}

func TestRenderUnknownNodeIsOmitted(t *testing.T) {
	input := docWith(`{"type":"paragraph","children":[
		{"type":"text","text":"a","format":0},
		{"type":"mystery","children":[{"type":"text","text":"hidden","format":0}]},
		{"type":"text","text":"b","format":0}
	]}`)

	result := renderJSON(t, Config{}, input)

	paragraph := result.Tree.Children[0]
	require.Len(t, paragraph.Children, 2)
	assert.Equal(t, "a", paragraph.Children[0].Text)
	assert.Equal(t, "b", paragraph.Children[1].Text)
	assert.Equal(t, "ab", paragraph.PlainText())

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningUnknownNode, result.Warnings[0].Type)
	assert.Equal(t, "mystery", result.Warnings[0].NodeType)
}

func TestRenderUnknownNodePlaceholder(t *testing.T) {
	input := docWith(`{"type":"paragraph","children":[
		{"type":"text","text":"a","format":0},
		{"type":"mystery","children":[{"type":"text","text":"hidden","format":0}]}
	]}`)

	result := renderJSON(t, Config{UnknownNodes: UnknownPlaceholder}, input)

	paragraph := result.Tree.Children[0]
	require.Len(t, paragraph.Children, 2)
	placeholder := paragraph.Children[1]
	assert.Equal(t, RoleUnknown, placeholder.Role)
	assert.Equal(t, "mystery", placeholder.NodeType)
	assert.Empty(t, placeholder.Children)
	require.Len(t, result.Warnings, 1)
}

func TestRenderMalformedSubtreeDoesNotBlankPage(t *testing.T) {
	input := docWith(
		`{"type":"paragraph","children":[{"type":"text","text":"kept","format":0}]}`,
		`{"type":"quote","children":"oops"}`,
		`42`,
		`{"type":"paragraph","children":[{"type":"text","text":"also kept","format":0}, null]}`,
	)

	result := renderJSON(t, Config{}, input)

	require.Len(t, result.Tree.Children, 2)
	assert.Equal(t, "kept", result.Tree.Children[0].PlainText())
	assert.Equal(t, "also kept", result.Tree.Children[1].PlainText())

	require.Len(t, result.Warnings, 3)
	for _, warning := range result.Warnings {
		assert.Equal(t, WarningMalformedNode, warning.Type)
	}
	assert.Equal(t, "quote", result.Warnings[0].NodeType)
}

func TestRenderWrongFieldTypesAreReported(t *testing.T) {
	input := docWith(`{"type":"paragraph","children":[
		{"type":"text","text":"ok","format":0},
		{"type":"text","text":5,"format":0}
	]}`, `{"type":7,"children":[]}`)

	result := renderJSON(t, Config{}, input)

	require.Len(t, result.Tree.Children, 1)
	paragraph := result.Tree.Children[0]
	require.Len(t, paragraph.Children, 1)
	assert.Equal(t, "ok", paragraph.PlainText())

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, WarningMalformedNode, result.Warnings[0].Type)
	assert.Equal(t, "text", result.Warnings[0].NodeType)
	assert.Contains(t, result.Warnings[0].Message, `field "text"`)
	assert.Equal(t, WarningMalformedNode, result.Warnings[1].Type)
	assert.Contains(t, result.Warnings[1].Message, `field "type"`)
}

func TestRenderMaxDepth(t *testing.T) {
	input := docWith(`{"type":"paragraph","children":[
		{"type":"link","url":"https://example.com","children":[{"type":"text","text":"deep","format":0}]}
	]}`)

	result := renderJSON(t, Config{MaxDepth: 2}, input)

	link := result.Tree.Children[0].Children[0]
	assert.Equal(t, RoleLink, link.Role)
	assert.Empty(t, link.Children)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningDepthExceeded, result.Warnings[0].Type)
}

func TestRenderDeepNestingWithoutLimit(t *testing.T) {
	const depth = 5000

	node := Node{Type: "text", Text: "bottom"}
	for i := 0; i < depth; i++ {
		node = Node{Type: "quote", Children: []Node{node}}
	}
	doc := &Document{Root: &Node{Type: "root", Children: []Node{node}}}

	tree := newTestRenderer(t, Config{}).Render(doc)

	require.NotNil(t, tree)
	assert.Equal(t, depth+2, tree.Count())
	assert.Equal(t, "bottom", tree.PlainText())
}

func TestRenderIsIdempotentAndNeverGrows(t *testing.T) {
	inputs := []string{
		docWith(`{"type":"paragraph","children":[]}`),
		docWith(`{"type":"heading","tag":"h1","children":[{"type":"text","text":"Title","format":3}]}`,
			`{"type":"list","listType":"number","children":[{"type":"listitem","children":[{"type":"text","text":"x","format":0}]}]}`,
			`{"type":"mystery"}`,
			`{"type":"upload","value":"1"}`),
		docWith(`{"type":"quote","children":[{"type":"link","children":[{"type":"linebreak"}]}]}`),
	}

	r := newTestRenderer(t, Config{})
	for _, input := range inputs {
		doc := mustParse(t, input)

		first := r.Render(doc)
		second := r.Render(doc)
		assert.Equal(t, first, second)
		assert.LessOrEqual(t, first.Count(), countInputNodes(*doc.Root))
	}
}

func TestRenderConcurrentUse(t *testing.T) {
	r := newTestRenderer(t, Config{UnknownNodes: UnknownPlaceholder})
	doc := mustParse(t, docWith(
		`{"type":"paragraph","children":[{"type":"text","text":"shared","format":1},{"type":"mystery"}]}`,
	))
	expected := r.RenderResult(context.Background(), doc, RenderOptions{})

	var wg sync.WaitGroup
	results := make([]Result, 16)
	for i := range results {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			results[index] = r.RenderResult(context.Background(), doc, RenderOptions{})
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}

func TestRenderLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := newTestRenderer(t, Config{Logger: &logger})
	result := r.RenderResult(context.Background(), mustParse(t, docWith(`{"type":"mystery"}`)), RenderOptions{SourcePath: "pages/home"})

	require.Len(t, result.Warnings, 1)
	logged := buf.String()
	assert.Contains(t, logged, `"level":"warn"`)
	assert.Contains(t, logged, `"warning":"unknown_node"`)
	assert.Contains(t, logged, `"nodeType":"mystery"`)
	assert.Contains(t, logged, `"source":"pages/home"`)
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	input := docWith(`{"type":"paragraph","children":[{"type":"link","fields":{"url":"/x"},"children":[{"type":"text","text":"x","format":1}]}]}`)
	doc := mustParse(t, input)
	before := mustParse(t, input)

	r := newTestRenderer(t, Config{
		LinkHook: func(_ context.Context, in LinkInput) (LinkOutput, error) {
			in.Attrs["fields"].(map[string]any)["url"] = "/mutated"
			return LinkOutput{}, nil
		},
	})
	r.Render(doc)

	assert.Equal(t, before, doc)
}

func TestPackageRender(t *testing.T) {
	tree := Render(mustParse(t, docWith(`{"type":"paragraph","children":[{"type":"text","text":"hi","format":0}]}`)))
	require.NotNil(t, tree)
	assert.Equal(t, "hi", tree.PlainText())
}

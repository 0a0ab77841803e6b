package cleaner

import (
	"strings"
	"testing"
)

func mustCleaner(t *testing.T, opts *Options) *Cleaner {
	t.Helper()
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     *Options
		want     string
		contains []string
		excludes []string
	}{
		{
			name: "collapses whitespace runs",
			text: "Hello    world\n\n\nfrom   here",
			want: "Hello world from here",
		},
		{
			name:     "removes urls",
			text:     "Check this out https://example.com/path for more info",
			contains: []string{"Check this out", "for more info"},
			excludes: []string{"https://example.com"},
		},
		{
			name: "keeps urls when disabled",
			text: "see https://example.com now",
			opts: &Options{RemoveURLs: false, CollapseWhitespace: true},
			want: "see https://example.com now",
		},
		{
			name: "strips html tags",
			text: "<p>Hello <b>world</b></p>",
			want: "Hello world",
		},
		{
			name:     "strips markdown syntax",
			text:     "# Heading\n\n**Bold text** and `code` here [link](url)",
			contains: []string{"Heading", "Bold text"},
			excludes: []string{"**", "`", "[link]", "#"},
		},
		{
			name: "removes image syntax including alt text",
			text: "before ![screenshot](https://img.example/a.png) after",
			want: "before after",
		},
		{
			name: "removes link syntax including link text",
			text: "read [the docs](https://docs.example) today",
			want: "read today",
		},
		{
			name: "unwraps emphasis but keeps inner text",
			text: "this is *important* and __very bold__",
			want: "this is important and very bold",
		},
		{
			name: "strips blockquote markers at line start",
			text: "> quoted line\nplain line",
			want: "quoted line plain line",
		},
		{
			name: "keeps markdown when disabled",
			text: "stay **bold**",
			opts: &Options{RemoveMarkdown: false, CollapseWhitespace: true},
			want: "stay **bold**",
		},
		{
			name: "unescapes html entities",
			text: "fish &amp; chips",
			want: "fish & chips",
		},
		{
			name: "unescaped angle brackets are then stripped as tags",
			text: "fast &lt;b&gt;shipping&lt;/b&gt;",
			want: "fast shipping",
		},
		{
			name: "applies nfkc normalization",
			text: "ﬁnally Ｗｉｄｅ",
			want: "finally Wide",
		},
		{
			name: "removes zero width spaces without substitution",
			text: "foo​bar",
			want: "foobar",
		},
		{
			name: "collapses unicode line and paragraph separators",
			text: "word word word",
			want: "word word word",
		},
		{
			name: "collapses next line and vertical tab",
			text: "onetwo\vthree",
			want: "one two three",
		},
		{
			name:     "always removes mentions",
			text:     "thanks @support_team for the fix",
			contains: []string{"thanks", "for the fix"},
			excludes: []string{"@support_team"},
		},
		{
			name: "keeps hashtags by default",
			text: "loving the #golang rewrite",
			want: "loving the #golang rewrite",
		},
		{
			name:     "removes hashtags when enabled",
			text:     "loving the #golang rewrite",
			opts:     &Options{RemoveHashtags: true, CollapseWhitespace: true},
			contains: []string{"loving the", "rewrite"},
			excludes: []string{"#golang"},
		},
		{
			name: "lowercases when enabled",
			text: "MIXED Case Text",
			opts: &Options{Lowercase: true, CollapseWhitespace: true},
			want: "mixed case text",
		},
		{
			name: "empty input yields empty output",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts == nil {
				opts = DefaultOptions()
			}
			c := mustCleaner(t, opts)
			got := c.normalize(tt.text)

			if tt.want != "" || (len(tt.contains) == 0 && len(tt.excludes) == 0) {
				if got != tt.want {
					t.Errorf("normalize(%q) = %q, want %q", tt.text, got, tt.want)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("normalize(%q) = %q, missing %q", tt.text, got, want)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(got, exclude) {
					t.Errorf("normalize(%q) = %q, should not contain %q", tt.text, got, exclude)
				}
			}
		})
	}
}

func TestNormalizeIdempotentOnCleanText(t *testing.T) {
	c := mustCleaner(t, nil)
	clean := "This text is already clean with ordinary punctuation."

	once := c.normalize(clean)
	if once != clean {
		t.Fatalf("first pass changed clean text: %q", once)
	}
	if twice := c.normalize(once); twice != once {
		t.Errorf("second pass not idempotent: %q vs %q", twice, once)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	c := mustCleaner(t, nil)
	input := "# Review\n\nGreat product https://shop.example/item &amp; fast @delivery"

	first := c.normalize(input)
	second := c.normalize(input)
	if first != second {
		t.Errorf("normalize not deterministic: %q vs %q", first, second)
	}
}

func TestNormalizeInvalidUTF8DoesNotPanic(t *testing.T) {
	c := mustCleaner(t, nil)
	got := c.normalize("valid \xff\xfe invalid")
	if !strings.Contains(got, "valid") {
		t.Errorf("expected surviving text, got %q", got)
	}
}

func TestStripHTMLShortCircuit(t *testing.T) {
	// No "<" present: the input must be returned untouched, including any ">"
	if got := stripHTML("a > b"); got != "a > b" {
		t.Errorf("stripHTML(%q) = %q", "a > b", got)
	}
}

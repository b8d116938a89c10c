package extract_test

import (
	"strings"
	"testing"

	"github.com/chriscorrea/tally/internal/extract"
)

const (
	simpleHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Test Article</title>
</head>
<body>
    <header>
        <h1>Site Header</h1>
        <nav>Navigation</nav>
    </header>
    <main>
        <article>
            <h1>Main Article Title</h1>
            <p>This is the main content of the article. It contains important information.</p>
            <p>This is a second paragraph with <strong>bold text</strong> and <em>italic text</em>.</p>
            <ul>
                <li>First list item</li>
                <li>Second list item</li>
            </ul>
        </article>
    </main>
    <aside>
        <p>This is sidebar content that should be filtered out.</p>
    </aside>
    <footer>
        <p>Footer content</p>
    </footer>
</body>
</html>`

	blogPostHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Blog Post</title>
</head>
<body>
    <div class="container">
        <header class="site-header">
            <h1>My Blog</h1>
        </header>
        <div class="content">
            <article class="blog-post">
                <h2>How to Bake the Perfect Carrot Cake</h2>
                <p class="meta">Published on July 5, 2018</p>
                <div class="post-content">
                    <p>Baking a perfect carrot cake requires <strong>sifting flour</strong> for the finest texture.</p>
                    <h3>Ingredients</h3>
                    <ul>
                        <li>2 cups flour (definitely sifted)</li>
                        <li>1 cup carrots, grated</li>
                        <li>3 eggs</li>
                    </ul>
                    <h3>Instructions</h3>
                    <ol>
                        <li>Sift the flour and mix dry ingredients together</li>
                        <li>Mix wet ingredients separately</li>
                        <li>Combine and bake at 350 degrees</li>
                    </ol>
                    <blockquote>
                        <p>The secret is in the sifting!</p>
                    </blockquote>
                </div>
            </article>
        </div>
        <aside class="sidebar">
            <h3>Related Posts</h3>
            <ul>
                <li><a href="#">Chocolate Cake Recipe</a></li>
                <li><a href="#">Vanilla Frosting Tips</a></li>
            </ul>
        </aside>
    </div>
</body>
</html>`

	malformedHTML = `<html>
<body>
    <div class="content">
        <h1>Unclosed Header
        <p>Paragraph without closing tag
        <div class="nested">
            <span>Some text</span>
        </div>
    </div>
</body>`
)

func TestToText(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		selector    string
		includeAll  bool
		expectError bool
		expectEmpty bool
		contains    []string
		notContains []string
	}{
		{
			name:        "simple HTML without selector (main content extraction)",
			html:        simpleHTML,
			contains:    []string{"main content", "bold text", "italic text", "First list item"},
			notContains: []string{"Site Header", "Navigation", "sidebar content", "Footer content"},
		},
		{
			name:        "blog post without selector",
			html:        blogPostHTML,
			contains:    []string{"carrot cake", "sifting flour", "Ingredients", "Instructions"},
			notContains: []string{"My Blog", "Related Posts"},
		},
		{
			name:        "with article selector",
			html:        simpleHTML,
			selector:    "article",
			contains:    []string{"Main Article Title", "main content", "bold text", "First list item"},
			notContains: []string{"Site Header", "Navigation", "sidebar content", "Footer"},
		},
		{
			name:        "with h3 selector (multiple elements)",
			html:        blogPostHTML,
			selector:    "h3",
			contains:    []string{"Ingredients", "Instructions", "Related Posts"},
			notContains: []string{"How to Bake", "carrot cake", "sifting flour"},
		},
		{
			name:        "include all keeps page chrome",
			html:        simpleHTML,
			includeAll:  true,
			contains:    []string{"Site Header", "Navigation", "Main Article Title", "Footer content"},
			notContains: []string{"Test Article"},
		},
		{
			name:        "selector overrides include all",
			html:        blogPostHTML,
			selector:    "blockquote",
			includeAll:  true,
			contains:    []string{"The secret is in the sifting!"},
			notContains: []string{"Ingredients"},
		},
		{
			name:        "non-existent selector",
			html:        simpleHTML,
			selector:    ".non-existent",
			expectError: true,
		},
		{
			name:        "invalid selector",
			html:        simpleHTML,
			selector:    ">>invalid<<",
			expectError: true,
		},
		{
			name:     "malformed HTML with selector",
			html:     malformedHTML,
			selector: ".content",
			contains: []string{"Unclosed Header", "Paragraph without closing", "Some text"},
		},
		{
			name:        "empty HTML",
			html:        "",
			expectEmpty: true,
		},
		{
			name:        "whitespace only HTML",
			html:        "   \n\t   ",
			expectEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := extract.ToText(strings.NewReader(tt.html), tt.selector, tt.includeAll, nil)

			if tt.expectError {
				if err == nil {
					t.Errorf("ToText() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("ToText() unexpected error: %v", err)
			}

			if tt.expectEmpty {
				if result != "" {
					t.Errorf("ToText() expected empty result but got: %q", result)
				}
				return
			}

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("ToText() result should contain %q but doesn't.\nResult: %s", expected, result)
				}
			}

			for _, notExpected := range tt.notContains {
				if strings.Contains(result, notExpected) {
					t.Errorf("ToText() result should not contain %q but does.\nResult: %s", notExpected, result)
				}
			}

			// no markup survives extraction
			for _, marker := range []string{"<", ">", "**", "# "} {
				if strings.Contains(result, marker) {
					t.Errorf("ToText() result contains markup %q.\nResult: %s", marker, result)
				}
			}
		})
	}
}

func TestToTextDropsScripts(t *testing.T) {
	html := `<html><head><style>p { color: red; }</style></head><body><p>Visible text.</p><script>var x = 1;</script></body></html>`

	result, err := extract.ToText(strings.NewReader(html), "", true, nil)
	if err != nil {
		t.Fatalf("ToText() unexpected error: %v", err)
	}
	if result != "Visible text." {
		t.Errorf("ToText() = %q, want %q", result, "Visible text.")
	}
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"doctype", simpleHTML, true},
		{"bare html tag", "<html><body>hi</body></html>", true},
		{"leading whitespace", "\n  <!DOCTYPE html><p>x</p>", true},
		{"plain text", "Hello world. One. Two.", false},
		{"text with angle bracket", "a < b and b > c", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extract.LooksLikeHTML([]byte(tt.data)); got != tt.expected {
				t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

package markup_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/utils/markup"
)

func TestFirstImageSource(t *testing.T) {
	testCases := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "first image is returned",
			fragment: `<p>intro</p><figure><img alt="a" src="https://cdn-images-1.medium.com/a.png"></figure><img src="b.png">`,
			expected: "https://cdn-images-1.medium.com/a.png",
		},
		{
			name:     "self closing tag",
			fragment: `<img src="x.jpg"/>`,
			expected: "x.jpg",
		},
		{
			name:     "upper case tag and attribute",
			fragment: `<IMG SRC="upper.gif">`,
			expected: "upper.gif",
		},
		{
			name:     "entities in attribute are decoded",
			fragment: `<img src="a.png?x=1&amp;y=2">`,
			expected: "a.png?x=1&y=2",
		},
		{
			name:     "first image without src",
			fragment: `<img alt="none"><img src="second.png">`,
			expected: "",
		},
		{
			name:     "no image",
			fragment: `<p>just text</p>`,
			expected: "",
		},
		{
			name:     "empty",
			fragment: "",
			expected: "",
		},
		{
			name:     "malformed",
			fragment: `<p <img src="broken`,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, markup.FirstImageSource(tc.fragment)).Equal(tc.expected)
		})
	}
}

func TestPlainText(t *testing.T) {
	testCases := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "tags stripped and whitespace collapsed",
			fragment: "<h3>Title</h3>\n<p>Hello   <strong>world</strong>,\tagain</p>",
			expected: "Title Hello world, again",
		},
		{
			name:     "entities decoded",
			fragment: "<p>Tom&nbsp;&amp;&nbsp;Jerry</p>",
			expected: "Tom & Jerry",
		},
		{
			name:     "adjacent elements are concatenated",
			fragment: "<p>one</p><p>two</p>",
			expected: "onetwo",
		},
		{
			name:     "comments dropped",
			fragment: "<!-- hidden --> visible ",
			expected: "visible",
		},
		{
			name:     "empty",
			fragment: "",
			expected: "",
		},
		{
			name:     "unterminated tag",
			fragment: "text <a href=",
			expected: "text",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, markup.PlainText(tc.fragment)).Equal(tc.expected)
		})
	}
}

func TestTruncateWords(t *testing.T) {
	words := func(n int) string {
		w := make([]string, n)
		for i := range w {
			w[i] = "word"
		}
		return strings.Join(w, " ")
	}

	t.Run("longer text is cut with ellipsis", func(t *testing.T) {
		got := markup.TruncateWords(words(50), 42)
		gt.V(t, got).Equal(words(42) + markup.Ellipsis)
	})

	t.Run("shorter text is unchanged", func(t *testing.T) {
		gt.V(t, markup.TruncateWords(words(10), 42)).Equal(words(10))
	})

	t.Run("exact length is unchanged", func(t *testing.T) {
		gt.V(t, markup.TruncateWords(words(42), 42)).Equal(words(42))
	})

	t.Run("empty text", func(t *testing.T) {
		gt.V(t, markup.TruncateWords("", 42)).Equal("")
	})
}

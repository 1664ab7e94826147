// Package markup extracts plain values from HTML fragments found in feed items. All functions
// are total: malformed or empty input yields an empty result instead of an error.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ellipsis is appended by TruncateWords when words were dropped.
const Ellipsis = "…"

// FirstImageSource returns the src attribute of the first <img> element in fragment. If the first
// image has no src, it returns an empty string and later images are not considered.
func FirstImageSource(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Img {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == "src" {
					return attr.Val
				}
			}
			return ""
		}
	}
}

// PlainText strips all tags from fragment, collapses whitespace runs into a single space and
// trims the result. Text of adjacent elements is concatenated as-is.
func PlainText(fragment string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))

loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break loop
		case html.TextToken:
			b.Write(z.Text())
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// TruncateWords keeps the first n space-separated words of text. Ellipsis is appended only when
// text had more than n words.
func TruncateWords(text string, n int) string {
	words := strings.Split(text, " ")
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + Ellipsis
}

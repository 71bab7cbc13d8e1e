package sanitizer

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// denylist holds characters stripped from user-supplied query text.
// This is a simple character strip, not HTML escaping.
const denylist = `<>"'&`

// CleanQuery trims surrounding whitespace and removes denylisted characters
// from user input. Applying it twice yields the same result as applying it
// once.
func CleanQuery(input string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(denylist, r) {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(stripped)
}

// StripTags removes all HTML/XML tags from a string, keeping only text
// content. Search providers embed highlight markup in titles and snippets;
// this normalizes them to plain text for citation display.
//
// Note: this is content cleanup, not a security boundary.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}

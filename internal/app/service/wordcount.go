package service

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CountWords returns the number of whitespace-separated tokens in the
// visible text of an HTML document. Script, style and noscript contents
// do not count. A non-HTML body is counted as plain text and an empty
// body counts as zero; there is no minimum or +1 adjustment.
func CountWords(body []byte) int {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return len(strings.Fields(string(body)))
	}

	doc.Find("script, style, noscript").Remove()

	return len(strings.Fields(doc.Text()))
}

// Package textprep cleans pasted review text before analysis.
//
// Reviews copied out of web pages or markdown documents carry markup that
// would otherwise be tokenized and tagged. Block-level elements become blank
// lines so that review boundaries survive the cleanup.
package textprep

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"
)

// Mode names the format of raw input.
type Mode string

const (
	ModeText     Mode = "text"
	ModeHTML     Mode = "html"
	ModeMarkdown Mode = "markdown"
)

// ParseMode validates a mode name. The empty string means ModeText.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case "", ModeText:
		return ModeText, nil
	case ModeHTML, ModeMarkdown:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown input format %q", internalerr.ErrInvalidInput, s)
	}
}

// Prepare converts s from mode to plain text.
func Prepare(mode Mode, s string) string {
	switch mode {
	case ModeHTML:
		return StripHTML(s)
	case ModeMarkdown:
		return MarkdownToText(s)
	default:
		return s
	}
}

var blankRun = regexp.MustCompile(`\n{3,}`)

// StripHTML returns the visible text of an HTML fragment. Block elements are
// separated by blank lines; script and style contents are dropped.
// Input that fails to parse is returned unchanged.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Head:
				return
			case atom.Br:
				buf.WriteString("\n")
				return
			}
		}

		block := n.Type == html.ElementNode && isBlock(n.DataAtom)
		if block {
			buf.WriteString("\n\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if block {
			buf.WriteString("\n\n")
		}
	}
	extractText(doc)

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out := blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(out)
}

// MarkdownToText renders markdown and strips the resulting HTML. Link text
// is kept, link targets are not.
func MarkdownToText(s string) string {
	rendered := blackfriday.Run([]byte(s), blackfriday.WithNoExtensions())
	return StripHTML(string(rendered))
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.Article, atom.Section,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Tr, atom.Table, atom.Pre, atom.Hr:
		return true
	}
	return false
}

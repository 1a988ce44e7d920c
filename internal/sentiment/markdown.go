package sentiment

import (
	"io"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown as plain text with links and
// formatting removed and whitespace collapsed.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainTextRenderer{}))
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

type plainTextRenderer struct{}

func (plainTextRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	switch node.Type {
	case blackfriday.Text, blackfriday.Code:
		w.Write(node.Literal)
	case blackfriday.CodeBlock:
		w.Write(node.Literal)
		io.WriteString(w, "\n")
	case blackfriday.HTMLSpan, blackfriday.HTMLBlock:
		// raw html is dropped
	case blackfriday.Softbreak, blackfriday.Hardbreak:
		io.WriteString(w, " ")
	case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
		if !entering {
			io.WriteString(w, "\n")
		}
	}
	return blackfriday.GoToNext
}

func (plainTextRenderer) RenderHeader(io.Writer, *blackfriday.Node) {}

func (plainTextRenderer) RenderFooter(io.Writer, *blackfriday.Node) {}

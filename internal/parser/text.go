package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/pageflow/internal/content"
)

// TextParser handles plain text files. The text is passed through whole and
// classified later by the line heuristics.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*content.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var text strings.Builder
	for scanner.Scan() {
		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &content.Document{
		Title: stem(filename),
		Text:  text.String(),
	}, nil
}

package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestTextParser_PassesTextThrough(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if doc.Text != input {
		t.Errorf("expected text passed through, got %q", doc.Text)
	}
	if len(doc.Items) != 0 {
		t.Errorf("expected no pre-segmented items, got %d", len(doc.Items))
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", doc.Title)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}

func TestTextParser_CRLF(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("line one\r\nline two\r\n"), "dos.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "line one\nline two" {
		t.Errorf("expected normalised line endings, got %q", doc.Text)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.txt", "*parser.TextParser"},
		{"a.MD", "*parser.MarkdownParser"},
		{"a.markdown", "*parser.MarkdownParser"},
		{"page.htm", "*parser.HTMLParser"},
		{"report.pdf", "*parser.PDFParser"},
		{"memo.docx", "*parser.DOCXParser"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p, err := ForFile(tt.filename, Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fmt.Sprintf("%T", p); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := ForFile("sheet.xls", Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("Doc.DOCX") {
		t.Error("expected extension check to ignore case")
	}
	if IsSupportedExtension("data.csv") {
		t.Error("csv is not supported")
	}
}

func TestPDFOptions(t *testing.T) {
	p, err := ForFile("a.pdf", Options{PDFFallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.(*PDFParser).FallbackPdftotext {
		t.Error("expected pdftotext fallback option to be passed through")
	}
}

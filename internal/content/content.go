package content

// Kind names the variant of an Item.
type Kind string

const (
	KindTitle     Kind = "title"
	KindHeader    Kind = "header"
	KindList      Kind = "list"
	KindParagraph Kind = "paragraph"
)

// Item is a classified unit of extracted document text. The set of
// implementations is closed: Title, Header, List and Paragraph.
type Item interface {
	Kind() Kind
	item()
}

// Title is the document title. It is always level 0 and, when present,
// the first item of a sequence.
type Title struct {
	Text string
}

// Header is a section heading. Level 1 is a top-level section.
type Header struct {
	Text  string
	Level int
}

// List is a run of bullet entries.
type List struct {
	Items []string
}

// Paragraph is a block of body text.
type Paragraph struct {
	Text string
}

func (Title) Kind() Kind     { return KindTitle }
func (Header) Kind() Kind    { return KindHeader }
func (List) Kind() Kind      { return KindList }
func (Paragraph) Kind() Kind { return KindParagraph }

func (Title) item()     {}
func (Header) item()    {}
func (List) item()      {}
func (Paragraph) item() {}

// Heading reports the text and level of a Title or Header.
func Heading(it Item) (text string, level int, ok bool) {
	switch v := it.(type) {
	case Title:
		return v.Text, 0, true
	case Header:
		return v.Text, v.Level, true
	}
	return "", 0, false
}

// TextOf returns the primary text of an item. Lists have none.
func TextOf(it Item) string {
	switch v := it.(type) {
	case Title:
		return v.Text
	case Header:
		return v.Text
	case Paragraph:
		return v.Text
	}
	return ""
}

// Document is what an upstream source hands to the pipeline: a title and
// either a flat text blob or pre-segmented items (or both).
type Document struct {
	Title string
	Text  string
	Items []Item
}

// Empty reports whether the document carries nothing to structure.
func (d Document) Empty() bool {
	return d.Title == "" && d.Text == "" && len(d.Items) == 0
}

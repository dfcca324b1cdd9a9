package content

// Wire is the JSON shape of an item exchanged with the crawl collaborator
// and the editor front-end.
type Wire struct {
	Type  string   `json:"type" validate:"required,oneof=title header list paragraph"`
	Text  string   `json:"text,omitempty" validate:"max=20000"`
	Level *int     `json:"level,omitempty" validate:"omitempty,min=0,max=6"`
	Items []string `json:"items,omitempty" validate:"max=500"`
}

// FromWire converts wire items into typed items. Unknown types are dropped,
// a header without a usable level becomes level 1, and a title anywhere but
// the first position is demoted to a level-1 header.
func FromWire(ws []Wire) []Item {
	items := make([]Item, 0, len(ws))
	for _, w := range ws {
		switch Kind(w.Type) {
		case KindTitle:
			if len(items) == 0 {
				items = append(items, Title{Text: w.Text})
			} else {
				items = append(items, Header{Text: w.Text, Level: 1})
			}
		case KindHeader:
			level := 1
			if w.Level != nil && *w.Level >= 0 {
				level = *w.Level
			}
			if level == 0 && len(items) > 0 {
				level = 1
			}
			if level == 0 {
				items = append(items, Title{Text: w.Text})
			} else {
				items = append(items, Header{Text: w.Text, Level: level})
			}
		case KindList:
			entries := make([]string, 0, len(w.Items))
			entries = append(entries, w.Items...)
			items = append(items, List{Items: entries})
		case KindParagraph:
			items = append(items, Paragraph{Text: w.Text})
		}
	}
	return items
}

// ToWire converts typed items into their wire form.
func ToWire(items []Item) []Wire {
	ws := make([]Wire, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case Title:
			zero := 0
			ws = append(ws, Wire{Type: string(KindTitle), Text: v.Text, Level: &zero})
		case Header:
			level := v.Level
			ws = append(ws, Wire{Type: string(KindHeader), Text: v.Text, Level: &level})
		case List:
			ws = append(ws, Wire{Type: string(KindList), Items: v.Items})
		case Paragraph:
			ws = append(ws, Wire{Type: string(KindParagraph), Text: v.Text})
		}
	}
	return ws
}

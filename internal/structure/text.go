// Package structure turns extracted page content into an ordered sequence of
// content items. Several sources (text heuristics, HTML, Markdown) produce
// the same []content.Item contract consumed by the flow assembler.
package structure

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/pageflow/internal/content"
)

// MaxItems bounds the number of items handed to the assembler.
const MaxItems = 15

// paragraphMinRunes is the length a line must exceed to count as a paragraph.
const paragraphMinRunes = 20

type headerRule struct {
	name    string
	pattern *regexp.Regexp
	build   func(m []string) content.Item
}

type listRule struct {
	name    string
	pattern *regexp.Regexp
}

func headerAt(level int) func(m []string) content.Item {
	return func(m []string) content.Item {
		return content.Header{Text: lastGroup(m), Level: level}
	}
}

// headerRules is evaluated top to bottom; the first match wins.
//
//	chapter   第一章：概述          level 1
//	cjk-enum  一、背景               level 2
//	numeric   1. Background         level 2
//	alpha     A. Background         level 2
var headerRules = []headerRule{
	{"chapter", regexp.MustCompile(`(?i)^(第[一二三四五六七八九十\d]+[章节篇部])[：:\s]+(.+)$`), headerAt(1)},
	{"cjk-enum", regexp.MustCompile(`(?i)^([一二三四五六七八九十]{1,2}[、.\s]+)(.+)$`), headerAt(2)},
	{"numeric", regexp.MustCompile(`(?i)^(\d+[.\s]+)(.+)$`), headerAt(2)},
	{"alpha", regexp.MustCompile(`(?i)^([A-Z][.\s]+)(.+)$`), headerAt(2)},
}

// listRules is checked only when no header rule matched. The captured
// entry text is always the last group.
var listRules = []listRule{
	{"bullet", regexp.MustCompile(`(?i)^[•\-*+◦○●♦※]\s+(.+)$`)},
	{"numbered", regexp.MustCompile(`(?i)^(\(\d+\)|\d+\))\s+(.+)$`)},
	{"lettered", regexp.MustCompile(`(?i)^([a-z](\)|\.))\s+(.+)$`)},
}

var lineBreaks = regexp.MustCompile(`\n+`)

func lastGroup(m []string) string {
	if s := m[len(m)-1]; s != "" {
		return s
	}
	return m[0]
}

func matchHeader(line string) (content.Item, bool) {
	for _, r := range headerRules {
		if m := r.pattern.FindStringSubmatch(line); m != nil {
			return r.build(m), true
		}
	}
	return nil, false
}

func matchListEntry(line string) (string, bool) {
	for _, r := range listRules {
		if m := r.pattern.FindStringSubmatch(line); m != nil {
			return lastGroup(m), true
		}
	}
	return "", false
}

// textState accumulates items while lines are classified.
type textState struct {
	items   []content.Item
	pending []string
}

func (s *textState) flushList() {
	if len(s.pending) == 0 {
		return
	}
	s.items = append(s.items, content.List{Items: s.pending})
	s.pending = nil
}

func (s *textState) consume(line string) {
	if line == "" {
		return
	}
	if h, ok := matchHeader(line); ok {
		s.flushList()
		s.items = append(s.items, h)
		return
	}
	if entry, ok := matchListEntry(line); ok {
		s.pending = append(s.pending, entry)
		return
	}
	if utf8.RuneCountInString(line) > paragraphMinRunes {
		s.flushList()
		s.items = append(s.items, content.Paragraph{Text: line})
	}
}

// FromText classifies a flat text blob line by line. A non-empty title is
// emitted first as the document Title. The result holds at most MaxItems
// items.
func FromText(text, title string) []content.Item {
	var s textState
	if t := strings.TrimSpace(title); t != "" {
		s.items = append(s.items, content.Title{Text: t})
	}
	for _, line := range lineBreaks.Split(text, -1) {
		s.consume(strings.TrimSpace(line))
	}
	s.flushList()

	if len(s.items) > MaxItems {
		s.items = s.items[:MaxItems]
	}
	return s.items
}

var blankLines = regexp.MustCompile(`\n\s*\n`)

// paragraphsOnly splits text on blank lines and keeps the blocks longer than
// minRunes as paragraphs. Whitespace inside a block is collapsed.
func paragraphsOnly(text string, minRunes int) []content.Item {
	var items []content.Item
	for _, block := range blankLines.Split(text, -1) {
		block = collapseSpace(block)
		if utf8.RuneCountInString(block) > minRunes {
			items = append(items, content.Paragraph{Text: block})
		}
	}
	return items
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

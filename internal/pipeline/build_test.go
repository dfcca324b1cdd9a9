package pipeline

import (
	"fmt"
	"testing"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/flow"
)

func TestBuild_TextWithTitle(t *testing.T) {
	g, _ := Build(content.Document{
		Title: "标题",
		Text:  "简介\n\n这是一个测试段落，长度超过二十个字符用于触发段落规则。",
	})
	if len(g.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(g.Nodes))
	}
	if g.Nodes[0].Data.Label != "标题" {
		t.Errorf("expected title node first, got %q", g.Nodes[0].Data.Label)
	}
	if len(g.Edges) != 1 || g.Edges[0].Data.Label != flow.LabelContent {
		t.Errorf("expected one content edge, got %+v", g.Edges)
	}
}

func TestBuild_TwentyParagraphs(t *testing.T) {
	items := make([]content.Item, 20)
	for i := range items {
		items[i] = content.Paragraph{Text: fmt.Sprintf("paragraph %d", i)}
	}
	g, n := Build(content.Document{Items: items})

	if n != 15 {
		t.Errorf("expected 15 items after prioritizing, got %d", n)
	}
	if len(g.Nodes) != 15 {
		t.Fatalf("expected 15 nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 14 {
		t.Fatalf("expected 14 edges, got %d", len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.Data.Label != flow.LabelFollows {
			t.Errorf("expected follows edge, got %q", e.Data.Label)
		}
	}
	if g.Nodes[14].Data.Description != "paragraph 14" {
		t.Errorf("expected the first 15 paragraphs, last is %q", g.Nodes[14].Data.Description)
	}
}

func TestBuild_ChapterHeaders(t *testing.T) {
	g, _ := Build(content.Document{Text: "第一章：概述\n一、背景\n内容段落超过二十字的一段描述文字用于匹配。"})
	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	want := []flow.EdgeLabel{flow.LabelContains, flow.LabelContent}
	if len(g.Edges) != len(want) {
		t.Fatalf("expected %d edges, got %d", len(want), len(g.Edges))
	}
	for i, e := range g.Edges {
		if e.Data.Label != want[i] {
			t.Errorf("edge[%d]: expected %q, got %q", i, want[i], e.Data.Label)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	g, n := Build(content.Document{})
	if n != 0 {
		t.Errorf("expected 0 items, got %d", n)
	}
	if g.Nodes == nil || g.Edges == nil {
		t.Fatal("expected non-nil slices")
	}
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("expected empty graph, got %+v", g)
	}
}

func TestBuild_ListAfterHeader(t *testing.T) {
	g, _ := Build(content.Document{Text: "1. Ingredients\n- flour\n- water\n- salt"})
	if len(g.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(g.Nodes))
	}
	if g.Nodes[1].Data.Description != "flour\n• water\n• salt" {
		t.Errorf("unexpected list description %q", g.Nodes[1].Data.Description)
	}
	if len(g.Edges) != 1 || g.Edges[0].Data.Label != flow.LabelList {
		t.Errorf("expected one list edge, got %+v", g.Edges)
	}
}

func TestStructure_PrependsTitle(t *testing.T) {
	items := Structure(content.Document{
		Title: "Page",
		Items: []content.Item{content.Paragraph{Text: "body"}},
	})
	if len(items) != 2 || items[0] != (content.Title{Text: "Page"}) {
		t.Errorf("expected title prepended, got %#v", items)
	}
}

func TestStructure_NoPrepend(t *testing.T) {
	tests := []struct {
		name  string
		first content.Item
	}{
		{"header first", content.Header{Text: "Intro", Level: 1}},
		{"title first", content.Title{Text: "Other"}},
		{"same text", content.Paragraph{Text: "Page"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Structure(content.Document{Title: "Page", Items: []content.Item{tt.first}})
			if len(items) != 1 || items[0] != tt.first {
				t.Errorf("expected items unchanged, got %#v", items)
			}
		})
	}
}

func TestStructure_ItemsWinOverText(t *testing.T) {
	items := Structure(content.Document{
		Text:  "1. Ignored heading\nThis paragraph text is not used at all.",
		Items: []content.Item{content.Paragraph{Text: "from dom"}},
	})
	if len(items) != 1 || items[0] != (content.Paragraph{Text: "from dom"}) {
		t.Errorf("expected pre-segmented items, got %#v", items)
	}
}

func TestBuild_HeadersNeverDropped(t *testing.T) {
	var items []content.Item
	for i := range 10 {
		items = append(items,
			content.Header{Text: fmt.Sprintf("section %d", i), Level: 1},
			content.Paragraph{Text: "body"},
		)
	}
	g, _ := Build(content.Document{Title: "Doc", Items: items})

	headers := 0
	for _, n := range g.Nodes {
		if n.Data.Type == flow.AccentB && n.Data.Label != "body" {
			headers++
		}
	}
	if headers != 10 {
		t.Errorf("expected all 10 headers kept, got %d", headers)
	}
	if len(g.Nodes) != 15 {
		t.Errorf("expected 15 nodes, got %d", len(g.Nodes))
	}
}

func TestBuild_TitleOnly(t *testing.T) {
	// A title is always emitted, even with nothing to structure under it.
	g, n := Build(content.Document{Title: "T"})
	if n != 1 || len(g.Nodes) != 1 {
		t.Fatalf("expected a single title node, got %d items %d nodes", n, len(g.Nodes))
	}
	if g.Nodes[0].Data.Type != flow.AccentA || len(g.Edges) != 0 {
		t.Errorf("unexpected graph %+v", g)
	}
}

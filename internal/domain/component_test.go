package domain_test

import (
	"testing"

	"sitebuilder/internal/domain"
)

func TestDefaultContent(t *testing.T) {
	want := map[domain.ComponentType]string{
		domain.ComponentTypeText:    "Double click to edit this text...",
		domain.ComponentTypeImage:   "https://via.placeholder.com/200x100",
		domain.ComponentTypeButton:  "Click me",
		domain.ComponentTypeInput:   "Enter text here...",
		domain.ComponentTypeCard:    "Card content",
		domain.ComponentTypeHeader:  "Header Content",
		domain.ComponentTypeFooter:  "Footer Content",
		domain.ComponentTypeSection: "Section Content",
		domain.ComponentTypeGrid:    "Grid Content",
		domain.ComponentTypeList:    "List Content",
		"carousel":                  "",
		"":                          "",
	}
	for typ, content := range want {
		if got := domain.DefaultContent(typ); got != content {
			t.Errorf("DefaultContent(%q) = %q, want %q", typ, got, content)
		}
	}
}

func TestDefaultContentCoversPalette(t *testing.T) {
	p := domain.DefaultPalette()
	for _, item := range append(p.Elements, p.Layouts...) {
		if domain.DefaultContent(item.Type) == "" {
			t.Errorf("palette type %q has no default content", item.Type)
		}
	}
	if len(p.Elements) != 5 || len(p.Layouts) != 5 {
		t.Errorf("unexpected palette size %d/%d", len(p.Elements), len(p.Layouts))
	}
}

func TestDefaultSize(t *testing.T) {
	if w, h := domain.DefaultSize(domain.ComponentTypeImage); w != 200 || h != 100 {
		t.Errorf("image size %vx%v", w, h)
	}
	if w, h := domain.DefaultSize(domain.ComponentTypeCard); w != 150 || h != 50 {
		t.Errorf("card size %vx%v", w, h)
	}
}

func TestComponentPatch_Apply(t *testing.T) {
	c := domain.PlacedComponent{ID: "a", Name: "Text", Content: "old", X: 1, Y: 2, Width: 3, Height: 4,
		Properties: map[string]any{"k": "v"}}

	domain.PositionPatch(10, 20).Apply(&c)
	if c.X != 10 || c.Y != 20 || c.Width != 3 || c.Content != "old" {
		t.Errorf("position patch touched other fields: %+v", c)
	}
	domain.ContentPatch("new").Apply(&c)
	if c.Content != "new" || c.X != 10 {
		t.Errorf("content patch wrong: %+v", c)
	}
	domain.ComponentPatch{Properties: map[string]any{"z": 1}}.Apply(&c)
	if _, ok := c.Properties["k"]; ok || c.Properties["z"] != 1 {
		t.Errorf("properties should be replaced wholesale: %+v", c.Properties)
	}
	if c.ID != "a" {
		t.Errorf("patch must never change the id")
	}
}

func TestPlacedComponent_CloneIsolatesProperties(t *testing.T) {
	c := domain.PlacedComponent{Properties: map[string]any{"a": 1}}
	cp := c.Clone()
	cp.Properties["a"] = 2
	if c.Properties["a"] != 1 {
		t.Error("clone shares the properties map")
	}
}

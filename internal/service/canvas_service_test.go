package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sitebuilder/internal/domain"
	"sitebuilder/internal/service"
)

// ─────────────────────────────────────────────────────────────
// CanvasService tests
// ─────────────────────────────────────────────────────────────

func TestCanvasService_AddAssignsUniqueIDsAndSelects(t *testing.T) {
	svc, emitter := newCanvas(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		c, err := svc.AddComponent(ctx, domain.PlacedComponent{ID: "ignored", Type: domain.ComponentTypeText})
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if c.ID == "ignored" || c.ID == "" {
			t.Fatalf("expected a generated id, got %q", c.ID)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if svc.SelectedID() != c.ID {
			t.Errorf("new component %q should be selected, got %q", c.ID, svc.SelectedID())
		}
	}
	if got := emitter.Count(service.EventCanvasChanged); got != 50 {
		t.Errorf("expected 50 change events, got %d", got)
	}
}

func TestCanvasService_UpdateRefreshesSelection(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	c, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeButton, Content: "Click me"})
	if _, err := svc.UpdateComponent(ctx, c.ID, domain.ContentPatch("Buy now")); err != nil {
		t.Fatal(err)
	}

	sel := svc.Selected()
	if sel == nil || sel.Content != "Buy now" {
		t.Fatalf("selection not refreshed: %+v", sel)
	}
}

func TestCanvasService_UpdateMergesOnlyGivenFields(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	c, _ := svc.AddComponent(ctx, domain.PlacedComponent{
		Type: domain.ComponentTypeCard, Name: "Card", X: 10, Y: 20, Width: 150, Height: 50,
		Properties: map[string]any{"color": "red"},
	})
	got, err := svc.MoveComponent(ctx, c.ID, -40, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if got.X != -40 || got.Y != 5000 {
		t.Errorf("move not applied: (%v, %v)", got.X, got.Y)
	}
	if got.Width != 150 || got.Height != 50 || got.Name != "Card" || got.Properties["color"] != "red" {
		t.Errorf("unrelated fields changed: %+v", got)
	}

	got, err = svc.ResizeComponent(ctx, c.ID, 0, -3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 0 || got.Height != -3 || got.X != -40 {
		t.Errorf("resize not applied as given: %+v", got)
	}
}

func TestCanvasService_DeleteClearsSelection(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	a, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText})
	b, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText})

	svc.SelectComponent(ctx, a.ID)
	if err := svc.DeleteComponent(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if svc.Selected() != nil {
		t.Fatal("selection should be cleared after deleting the selected component")
	}
	if sel := svc.SelectComponent(ctx, a.ID); sel != nil {
		t.Fatalf("selecting a deleted id should yield no selection, got %+v", sel)
	}

	svc.SelectComponent(ctx, b.ID)
	c, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText})
	if err := svc.DeleteComponent(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	if svc.SelectedID() != c.ID {
		t.Errorf("deleting an unselected component must keep the selection")
	}
}

func TestCanvasService_SelectNone(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText})
	if sel := svc.SelectComponent(ctx, ""); sel != nil {
		t.Fatalf("expected no selection, got %+v", sel)
	}
	if svc.SelectedID() != "" {
		t.Errorf("expected empty selected id")
	}
}

func TestCanvasService_UnknownIDs(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	if _, err := svc.UpdateComponent(ctx, "nope", domain.ContentPatch("x")); !errors.Is(err, domain.ErrComponentNotFound) {
		t.Errorf("update: expected ErrComponentNotFound, got %v", err)
	}
	if err := svc.DeleteComponent(ctx, "nope"); !errors.Is(err, domain.ErrComponentNotFound) {
		t.Errorf("delete: expected ErrComponentNotFound, got %v", err)
	}
	if err := svc.BeginContentEdit(ctx, "nope"); !errors.Is(err, domain.ErrComponentNotFound) {
		t.Errorf("edit: expected ErrComponentNotFound, got %v", err)
	}
}

func TestCanvasService_IDsStayUniqueAcrossMixedOperations(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	var live []string
	for i := 0; i < 30; i++ {
		c, err := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeList})
		if err != nil {
			t.Fatal(err)
		}
		live = append(live, c.ID)
		if i%3 == 0 {
			if _, err := svc.MoveComponent(ctx, live[0], float64(i), float64(i)); err != nil {
				t.Fatal(err)
			}
		}
		if i%4 == 0 {
			if err := svc.DeleteComponent(ctx, live[len(live)-1]); err != nil {
				t.Fatal(err)
			}
			live = live[:len(live)-1]
		}
	}

	seen := map[string]bool{}
	for _, c := range svc.ListComponents() {
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != len(live) {
		t.Errorf("expected %d components, got %d", len(live), len(seen))
	}
}

// ── Content editing ────────────────────────────────────────

func TestCanvasService_ContentEditSingleEntity(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	a, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText, Content: "a"})
	b, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText, Content: "b"})

	if err := svc.BeginContentEdit(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.BeginContentEdit(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	if svc.EditingID() != b.ID {
		t.Fatalf("expected %q in edit mode, got %q", b.ID, svc.EditingID())
	}

	got, err := svc.CommitContentEdit(ctx, b.ID, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "hello" {
		t.Errorf("content not saved: %q", got.Content)
	}
	if svc.EditingID() != "" {
		t.Errorf("commit should leave edit mode")
	}
	if untouched, _ := svc.GetComponent(a.ID); untouched.Content != "a" {
		t.Errorf("other component changed: %q", untouched.Content)
	}
}

func TestCanvasService_CancelAndDeleteLeaveEditMode(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	c, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText, Content: "keep"})
	_ = svc.BeginContentEdit(ctx, c.ID)
	svc.CancelContentEdit(ctx)
	if svc.EditingID() != "" {
		t.Fatal("cancel should leave edit mode")
	}
	if got, _ := svc.GetComponent(c.ID); got.Content != "keep" {
		t.Errorf("cancel changed content to %q", got.Content)
	}

	_ = svc.BeginContentEdit(ctx, c.ID)
	_ = svc.DeleteComponent(ctx, c.ID)
	if svc.EditingID() != "" {
		t.Error("deleting the edited component should leave edit mode")
	}
}

func TestCanvasService_EditNeverPointsAtDeletedComponent(t *testing.T) {
	svc, _ := newCanvas(t)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		c, _ := svc.AddComponent(ctx, domain.PlacedComponent{Type: domain.ComponentTypeText})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); _ = svc.BeginContentEdit(ctx, c.ID) }()
		go func() { defer wg.Done(); _ = svc.DeleteComponent(ctx, c.ID) }()
		wg.Wait()

		if id := svc.EditingID(); id != "" {
			if _, err := svc.GetComponent(id); err != nil {
				t.Fatalf("iteration %d: editing deleted component %q", i, id)
			}
		}
	}
}

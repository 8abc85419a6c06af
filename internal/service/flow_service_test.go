package service_test

import (
	"context"
	"errors"
	"testing"

	"sitebuilder/internal/domain"
	"sitebuilder/internal/service"
	"sitebuilder/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// FlowService tests — pages, sections, title editing
// ─────────────────────────────────────────────────────────────

func TestFlowService_SeedsInitialPage(t *testing.T) {
	f, _ := newFlow(t)

	pages := f.ListPages()
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	p := pages[0]
	if p.ID != 1 || p.Title != "Home" || p.Position != (domain.Point{X: 300, Y: 200}) {
		t.Errorf("unexpected initial page %+v", p)
	}
	if p.Sections == nil || len(p.Sections) != 0 {
		t.Errorf("initial page should have an empty section list")
	}
}

func TestFlowService_DoesNotReseedExistingStore(t *testing.T) {
	store := storage.NewPageStore()
	_ = store.CreatePage(&domain.Page{ID: 7, Title: "Landing"})

	f := service.NewFlowService(store, &service.MockEmitter{})
	if pages := f.ListPages(); len(pages) != 1 || pages[0].ID != 7 {
		t.Fatalf("existing pages should be kept as is, got %+v", pages)
	}
}

func TestFlowService_AddPagePlacement(t *testing.T) {
	cases := []struct {
		dir  domain.Direction
		want domain.Point
	}{
		{domain.DirectionRight, domain.Point{X: 600, Y: 200}},
		{domain.DirectionLeft, domain.Point{X: 0, Y: 200}},
		{domain.DirectionBottom, domain.Point{X: 300, Y: 500}},
	}
	for _, tc := range cases {
		t.Run(string(tc.dir), func(t *testing.T) {
			f, emitter := newFlow(t)
			p, err := f.AddPage(context.Background(), tc.dir, 1)
			if err != nil {
				t.Fatal(err)
			}
			if p.ID != 2 || p.Title != "Page 2" {
				t.Errorf("unexpected id/title %d %q", p.ID, p.Title)
			}
			if p.Position != tc.want {
				t.Errorf("expected position %+v, got %+v", tc.want, p.Position)
			}
			if len(p.Sections) != 0 {
				t.Errorf("new page should have no sections")
			}
			if f.State().CurrentPageID != 2 {
				t.Errorf("new page should be current")
			}
			if emitter.Count(service.EventFlowChanged) != 1 {
				t.Errorf("expected one flow event")
			}
		})
	}
}

func TestFlowService_AddPageErrors(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	if _, err := f.AddPage(ctx, "up", 1); !errors.Is(err, domain.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
	if _, err := f.AddPage(ctx, domain.DirectionRight, 42); !errors.Is(err, domain.ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
	if n := len(f.ListPages()); n != 1 {
		t.Errorf("failed adds must not create pages, have %d", n)
	}
}

func TestFlowService_PageIDsAreSequential(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	for want := 2; want <= 6; want++ {
		p, err := f.AddPage(ctx, domain.DirectionBottom, want-1)
		if err != nil {
			t.Fatal(err)
		}
		if p.ID != want {
			t.Fatalf("expected id %d, got %d", want, p.ID)
		}
	}
	if got := f.ListPages()[5].Position; got != (domain.Point{X: 300, Y: 1700}) {
		t.Errorf("chained bottom pages misplaced: %+v", got)
	}
}

// ── Section picker ─────────────────────────────────────────

func TestFlowService_SectionPickerAppendsOneSection(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	if err := f.OpenSectionPicker(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if st := f.State(); st.Modal != domain.ModalPickingSection || st.CurrentPageID != 1 {
		t.Fatalf("unexpected state after open: %+v", st)
	}
	if err := f.ChooseSection(ctx, 1); err != nil {
		t.Fatal(err)
	}
	st := f.State()
	if st.Modal != domain.ModalPickingLayout || st.ChosenSection == nil || st.ChosenSection.Title != "Hero" {
		t.Fatalf("unexpected state after choosing section: %+v", st)
	}

	p, err := f.ChooseLayout(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Sections) != 1 {
		t.Fatalf("expected exactly one section, got %d", len(p.Sections))
	}
	if s := p.Sections[0]; s.ID != 1 || s.Title != "Hero" || s.LayoutID != 2 {
		t.Errorf("unexpected section %+v", s)
	}
	if st := f.State(); st.Modal != domain.ModalClosed || st.ChosenSection != nil {
		t.Errorf("picker should be closed and cleared: %+v", st)
	}
}

func TestFlowService_ReopenPickerStartsAtSectionStep(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	_ = f.OpenSectionPicker(ctx, 1)
	_ = f.ChooseSection(ctx, 3)
	f.CloseModal(ctx)
	if f.State().Modal != domain.ModalClosed {
		t.Fatal("close should close the picker")
	}

	_ = f.OpenSectionPicker(ctx, 1)
	st := f.State()
	if st.Modal != domain.ModalPickingSection || st.ChosenSection != nil {
		t.Fatalf("reopened picker should start fresh: %+v", st)
	}
	if p := mustPage(t, f, 1); len(p.Sections) != 0 {
		t.Errorf("closing must not add sections")
	}
}

func TestFlowService_PickerStepErrors(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	if err := f.ChooseSection(ctx, 1); !errors.Is(err, domain.ErrModalState) {
		t.Errorf("choose section while closed: expected ErrModalState, got %v", err)
	}
	if _, err := f.ChooseLayout(ctx, 1); !errors.Is(err, domain.ErrModalState) {
		t.Errorf("choose layout while closed: expected ErrModalState, got %v", err)
	}

	_ = f.OpenSectionPicker(ctx, 1)
	if _, err := f.ChooseLayout(ctx, 1); !errors.Is(err, domain.ErrModalState) {
		t.Errorf("choose layout before section: expected ErrModalState, got %v", err)
	}
	if err := f.ChooseSection(ctx, 99); !errors.Is(err, domain.ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
	_ = f.ChooseSection(ctx, 2)
	if _, err := f.ChooseLayout(ctx, 99); !errors.Is(err, domain.ErrUnknownLayout) {
		t.Errorf("expected ErrUnknownLayout, got %v", err)
	}
	if f.State().Modal != domain.ModalPickingLayout {
		t.Errorf("a rejected layout must keep the picker open")
	}
	if err := f.OpenSectionPicker(ctx, 99); !errors.Is(err, domain.ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

func TestFlowService_AddSectionDirect(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p, err := f.AddSection(ctx, 1, i, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Sections[len(p.Sections)-1].ID; got != i {
			t.Errorf("expected section id %d, got %d", i, got)
		}
	}
	if _, err := f.AddSection(ctx, 5, 1, 1); !errors.Is(err, domain.ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
	if f.State().Modal != domain.ModalClosed {
		t.Error("direct section add must not touch the picker")
	}
}

// ── Title editing ──────────────────────────────────────────

func TestFlowService_TitleEditCommitTrims(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	if err := f.StartTitleEdit(ctx, 1); err != nil {
		t.Fatal(err)
	}
	p, err := f.CommitTitleEdit(ctx, 1, "  Landing  ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Landing" {
		t.Errorf("expected trimmed title, got %q", p.Title)
	}
	if f.State().EditingPageID != 0 {
		t.Error("commit should leave edit mode")
	}
}

func TestFlowService_BlankTitleKeepsOldTitle(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	_ = f.StartTitleEdit(ctx, 1)
	p, err := f.CommitTitleEdit(ctx, 1, "   ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Home" {
		t.Errorf("blank commit should keep the old title, got %q", p.Title)
	}
	if f.State().EditingPageID != 0 {
		t.Error("blank commit should still leave edit mode")
	}
}

func TestFlowService_OnlyOneTitleEdit(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()
	_, _ = f.AddPage(ctx, domain.DirectionRight, 1)

	_ = f.StartTitleEdit(ctx, 1)
	_ = f.StartTitleEdit(ctx, 2)
	if got := f.State().EditingPageID; got != 2 {
		t.Fatalf("expected page 2 in edit mode, got %d", got)
	}
	if _, err := f.CommitTitleEdit(ctx, 1, "Nope"); !errors.Is(err, domain.ErrNotEditing) {
		t.Errorf("expected ErrNotEditing, got %v", err)
	}
	if p := mustPage(t, f, 1); p.Title != "Home" {
		t.Errorf("page 1 title changed to %q", p.Title)
	}

	f.CancelTitleEdit(ctx)
	if f.State().EditingPageID != 0 {
		t.Error("cancel should leave edit mode")
	}
	if p := mustPage(t, f, 2); p.Title != "Page 2" {
		t.Errorf("cancel changed the title to %q", p.Title)
	}
}

func TestFlowService_RenamePage(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	p, err := f.RenamePage(ctx, 1, " Start ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Start" {
		t.Errorf("expected 'Start', got %q", p.Title)
	}
	if _, err := f.RenamePage(ctx, 9, "x"); !errors.Is(err, domain.ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

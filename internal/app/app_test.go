package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"sitebuilder/internal/config"
	"sitebuilder/internal/domain"
	"sitebuilder/internal/logging"
	"sitebuilder/internal/service"
)

func startedApp(t *testing.T) (*App, *service.MockEmitter) {
	t.Helper()
	a := New(config.Defaults(), nil)
	emitter := &service.MockEmitter{}
	a.start(context.Background(), emitter)
	return a, emitter
}

func TestBindings_BeforeStartup(t *testing.T) {
	a := New(config.Defaults(), nil)

	if _, err := a.AddComponent(ComponentInput{Type: domain.ComponentTypeText}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("AddComponent: expected ErrNotStarted, got %v", err)
	}
	if _, err := a.GetFlowState(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("GetFlowState: expected ErrNotStarted, got %v", err)
	}
	if _, err := a.ZoomIn(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("ZoomIn: expected ErrNotStarted, got %v", err)
	}
	if err := a.ApproveAction("x"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("ApproveAction: expected ErrNotStarted, got %v", err)
	}
}

func TestBindings_DropEditAndDelete(t *testing.T) {
	a, emitter := startedApp(t)

	c, err := a.DropComponent(
		domain.DragItem{Type: domain.ComponentTypeButton},
		domain.Point{X: 220, Y: 140},
		domain.CanvasRect{Left: 200, Top: 100, Width: 800, Height: 600},
	)
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 20 || c.Y != 40 || c.Content != "Click me" {
		t.Errorf("unexpected component %+v", c)
	}

	if err := a.BeginContentEdit(c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := a.CommitContentEdit(c.ID, "Buy"); err != nil {
		t.Fatal(err)
	}
	st, _ := a.GetBuilderState()
	if st.Selected == nil || st.Selected.Content != "Buy" || st.EditingID != "" {
		t.Errorf("unexpected builder state %+v", st)
	}

	if err := a.DeleteComponent(c.ID); err != nil {
		t.Fatal(err)
	}
	st, _ = a.GetBuilderState()
	if len(st.Components) != 0 || st.Selected != nil {
		t.Errorf("delete not reflected: %+v", st)
	}
	if emitter.Count(service.EventCanvasChanged) == 0 {
		t.Error("expected canvas events")
	}
}

func TestBindings_FlowRoundTrip(t *testing.T) {
	a, _ := startedApp(t)

	if _, err := a.AddPage("right", 1); err != nil {
		t.Fatal(err)
	}
	if err := a.OpenSectionPicker(2); err != nil {
		t.Fatal(err)
	}
	if err := a.ChooseSection(6); err != nil {
		t.Fatal(err)
	}
	p, err := a.ChooseLayout(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Sections) != 1 || p.Sections[0].Title != "Pricing" {
		t.Errorf("unexpected page %+v", p)
	}

	if g, _ := a.MouseDown(domain.PointerTarget{Kind: domain.TargetBackground}, domain.Point{}); g != domain.GesturePan {
		t.Fatalf("expected pan, got %q", g)
	}
	if _, err := a.MouseMove(domain.Point{X: 30, Y: 40}); err != nil {
		t.Fatal(err)
	}
	_ = a.MouseUp()

	st, _ := a.GetFlowState()
	if st.Viewport.Offset != (domain.Point{X: 30, Y: 40}) || st.Gesture != domain.GestureNone {
		t.Errorf("unexpected flow state %+v", st)
	}

	_ = a.ResetFlowSession()
	st, _ = a.GetFlowState()
	if st.Viewport != domain.NewViewport() || len(st.Pages) != 2 {
		t.Errorf("reset should restore the viewport and keep pages: %+v", st)
	}
}

func TestBindings_Settings(t *testing.T) {
	a, _ := startedApp(t)

	light := domain.ThemeLight
	got, err := a.UpdateSiteSettings(domain.SiteSettingsPatch{Theme: &light})
	if err != nil || got.Theme != domain.ThemeLight {
		t.Fatalf("unexpected settings %+v, %v", got, err)
	}
	name, _ := a.AddBuilderPage()
	pages, _ := a.ListBuilderPages()
	if name != "Page 4" || len(pages) != 4 {
		t.Errorf("unexpected builder pages %v (%q)", pages, name)
	}
	if err := a.SetDevice("fridge"); !errors.Is(err, domain.ErrInvalidDevice) {
		t.Errorf("expected ErrInvalidDevice, got %v", err)
	}
}

func TestMCPStatus(t *testing.T) {
	a, _ := startedApp(t)

	st := a.GetMCPStatus()
	if st.Enabled || st.Addr != "127.0.0.1:7801" || st.Pending != 0 {
		t.Errorf("unexpected status %+v", st)
	}
	pending, err := a.ListPendingActions()
	if err != nil || len(pending) != 0 {
		t.Errorf("unexpected pending actions %v, %v", pending, err)
	}
}

func TestStandaloneServer_UsesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New(&buf, log.InfoLevel))

	if srv := newStandaloneServer(ctx); srv == nil {
		t.Fatal("expected a server")
	}
	if !strings.Contains(buf.String(), "starting standalone stdio server") {
		t.Errorf("expected startup line on the context logger, got %q", buf.String())
	}
}

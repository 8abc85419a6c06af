package app

import (
	"sitebuilder/internal/domain"
	"sitebuilder/internal/service"
)

// ============================================================
// Flow canvas: pages and sections
// ============================================================

func (a *App) AddPage(direction string, sourcePageID int) (*domain.Page, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.flow.AddPage(a.bindingCtx(), domain.Direction(direction), sourcePageID)
}

func (a *App) OpenSectionPicker(pageID int) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.flow.OpenSectionPicker(a.bindingCtx(), pageID)
}

func (a *App) ChooseSection(sectionID int) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.flow.ChooseSection(a.bindingCtx(), sectionID)
}

func (a *App) ChooseLayout(layoutID int) (*domain.Page, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.flow.ChooseLayout(a.bindingCtx(), layoutID)
}

func (a *App) CloseModal() error {
	if err := a.ready(); err != nil {
		return err
	}
	a.flow.CloseModal(a.bindingCtx())
	return nil
}

func (a *App) StartTitleEdit(pageID int) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.flow.StartTitleEdit(a.bindingCtx(), pageID)
}

func (a *App) CommitTitleEdit(pageID int, title string) (*domain.Page, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.flow.CommitTitleEdit(a.bindingCtx(), pageID, title)
}

func (a *App) CancelTitleEdit() error {
	if err := a.ready(); err != nil {
		return err
	}
	a.flow.CancelTitleEdit(a.bindingCtx())
	return nil
}

func (a *App) GetFlowState() (domain.FlowState, error) {
	if err := a.ready(); err != nil {
		return domain.FlowState{}, err
	}
	return a.flow.State(), nil
}

// ResetFlowSession is called when the flow view mounts.
func (a *App) ResetFlowSession() error {
	if err := a.ready(); err != nil {
		return err
	}
	a.flow.ResetSession(a.bindingCtx())
	return nil
}

func (a *App) GetCatalog() (domain.Catalog, error) {
	if err := a.ready(); err != nil {
		return domain.Catalog{}, err
	}
	return a.flow.Catalog(), nil
}

// ============================================================
// Flow canvas: viewport and gestures
// ============================================================

func (a *App) Pan(dx, dy float64) (domain.Viewport, error) {
	if err := a.ready(); err != nil {
		return domain.Viewport{}, err
	}
	return a.flow.Pan(a.bindingCtx(), dx, dy), nil
}

func (a *App) SetZoom(zoom float64) (domain.Viewport, error) {
	if err := a.ready(); err != nil {
		return domain.Viewport{}, err
	}
	return a.flow.SetZoom(a.bindingCtx(), zoom), nil
}

func (a *App) ZoomIn() (domain.Viewport, error) {
	if err := a.ready(); err != nil {
		return domain.Viewport{}, err
	}
	return a.flow.ZoomIn(a.bindingCtx()), nil
}

func (a *App) ZoomOut() (domain.Viewport, error) {
	if err := a.ready(); err != nil {
		return domain.Viewport{}, err
	}
	return a.flow.ZoomOut(a.bindingCtx()), nil
}

// ToggleLock returns the new lock state.
func (a *App) ToggleLock() (bool, error) {
	if err := a.ready(); err != nil {
		return false, err
	}
	return a.flow.ToggleLock(a.bindingCtx()), nil
}

// MouseDown returns the gesture that started, if any.
func (a *App) MouseDown(target domain.PointerTarget, screen domain.Point) (domain.GestureKind, error) {
	if err := a.ready(); err != nil {
		return domain.GestureNone, err
	}
	return a.flow.MouseDown(a.bindingCtx(), target, screen), nil
}

func (a *App) MouseMove(screen domain.Point) (service.GestureUpdate, error) {
	if err := a.ready(); err != nil {
		return service.GestureUpdate{}, err
	}
	return a.flow.MouseMove(a.bindingCtx(), screen)
}

func (a *App) MouseUp() error {
	if err := a.ready(); err != nil {
		return err
	}
	a.flow.MouseUp(a.bindingCtx())
	return nil
}

func (a *App) TouchStart(touches []domain.Point) error {
	if err := a.ready(); err != nil {
		return err
	}
	a.flow.TouchStart(a.bindingCtx(), touches)
	return nil
}

func (a *App) TouchMove(touches []domain.Point) (domain.Viewport, error) {
	if err := a.ready(); err != nil {
		return domain.Viewport{}, err
	}
	return a.flow.TouchMove(a.bindingCtx(), touches), nil
}

func (a *App) TouchEnd() error {
	if err := a.ready(); err != nil {
		return err
	}
	a.flow.TouchEnd(a.bindingCtx())
	return nil
}

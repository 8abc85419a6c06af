package app

import (
	"sitebuilder/internal/domain"
)

// ============================================================
// Builder canvas
// ============================================================

func (a *App) AddComponent(in ComponentInput) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.canvas.AddComponent(a.bindingCtx(), in.component())
}

func (a *App) UpdateComponent(id string, patch domain.ComponentPatch) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.canvas.UpdateComponent(a.bindingCtx(), id, patch)
}

func (a *App) DeleteComponent(id string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.canvas.DeleteComponent(a.bindingCtx(), id)
}

// SelectComponent selects id. An empty or unknown id clears the selection.
func (a *App) SelectComponent(id string) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.canvas.SelectComponent(a.bindingCtx(), id), nil
}

func (a *App) MoveComponent(id string, x, y float64) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.canvas.MoveComponent(a.bindingCtx(), id, x, y)
}

func (a *App) ResizeComponent(id string, width, height float64) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.canvas.ResizeComponent(a.bindingCtx(), id, width, height)
}

// DropComponent ends a drag over the canvas. pointer is in client
// coordinates and rect is the canvas bounding box the view measured.
func (a *App) DropComponent(item domain.DragItem, pointer domain.Point, rect domain.CanvasRect) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.builder.Drop(a.bindingCtx(), item, pointer, rect)
}

// HoverComponent tracks a placed component being dragged. Palette items
// return nil.
func (a *App) HoverComponent(item domain.DragItem, pointer domain.Point, rect domain.CanvasRect) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.builder.Hover(a.bindingCtx(), item, pointer, rect)
}

func (a *App) BeginContentEdit(id string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.canvas.BeginContentEdit(a.bindingCtx(), id)
}

func (a *App) CommitContentEdit(id, content string) (*domain.PlacedComponent, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.canvas.CommitContentEdit(a.bindingCtx(), id, content)
}

func (a *App) CancelContentEdit() error {
	if err := a.ready(); err != nil {
		return err
	}
	a.canvas.CancelContentEdit(a.bindingCtx())
	return nil
}

func (a *App) GetBuilderState() (domain.BuilderState, error) {
	if err := a.ready(); err != nil {
		return domain.BuilderState{}, err
	}
	return a.builder.State(), nil
}

func (a *App) GetPalette() (domain.Palette, error) {
	if err := a.ready(); err != nil {
		return domain.Palette{}, err
	}
	return a.builder.Palette(), nil
}

func (a *App) SetDevice(device string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.builder.SetDevice(a.bindingCtx(), domain.Device(device))
}

package domain

// CanvasRect is the builder canvas's bounding box in client coordinates.
// The view measures it and hands it to drop and hover handlers.
type CanvasRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Local converts a client-space pointer position into canvas-local coordinates.
func (r CanvasRect) Local(client Point) Point {
	return Point{X: client.X - r.Left, Y: client.Y - r.Top}
}

// Device selects the canvas frame size used while designing.
type Device string

const (
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
	DeviceDesktop Device = "desktop"
)

// CanvasSize is the frame size for a device. Zero means the canvas fills
// the available space.
type CanvasSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DeviceSize returns the canvas frame for d. Unknown devices fall back to desktop.
func DeviceSize(d Device) CanvasSize {
	switch d {
	case DeviceMobile:
		return CanvasSize{Width: 375, Height: 667}
	case DeviceTablet:
		return CanvasSize{Width: 768, Height: 1024}
	default:
		return CanvasSize{}
	}
}

// ValidDevice reports whether d is one of the known presets.
func ValidDevice(d Device) bool {
	switch d {
	case DeviceMobile, DeviceTablet, DeviceDesktop:
		return true
	}
	return false
}

// DragItem is what the view hands over when a drag ends or hovers over the
// canvas. Palette entries have no ID; placed components carry theirs.
type DragItem struct {
	ID   string        `json:"id,omitempty"`
	Type ComponentType `json:"type"`
	Name string        `json:"name"`
	Icon string        `json:"icon"`
}

// IsMove reports whether the item refers to an already placed component.
func (d DragItem) IsMove() bool { return d.ID != "" }

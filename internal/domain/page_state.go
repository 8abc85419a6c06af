package domain

// BuilderState is everything the builder view needs to render the canvas.
type BuilderState struct {
	Components []PlacedComponent `json:"components"`
	Selected   *PlacedComponent  `json:"selected"`
	EditingID  string            `json:"editingId"`
	Device     Device            `json:"device"`
	CanvasSize CanvasSize        `json:"canvasSize"`
}

// ModalStep is the position of the two-step section picker.
type ModalStep string

const (
	ModalClosed         ModalStep = "closed"
	ModalPickingSection ModalStep = "pickingSection"
	ModalPickingLayout  ModalStep = "pickingLayout"
)

// GestureKind is the mouse gesture in progress on the flow canvas.
type GestureKind string

const (
	GestureNone     GestureKind = "none"
	GesturePan      GestureKind = "pan"
	GesturePageDrag GestureKind = "pageDrag"
)

// FlowState is the complete state of the flow canvas for rendering.
type FlowState struct {
	Pages           []Page           `json:"pages"`
	Viewport        Viewport         `json:"viewport"`
	Locked          bool             `json:"locked"`
	EditingPageID   int              `json:"editingPageId"`
	CurrentPageID   int              `json:"currentPageId"`
	Modal           ModalStep        `json:"modal"`
	ChosenSection   *SectionTemplate `json:"chosenSection"`
	Gesture         GestureKind      `json:"gesture"`
	DraggingPageID  int              `json:"draggingPageId"`
	PinchInProgress bool             `json:"pinchInProgress"`
}

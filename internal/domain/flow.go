package domain

// Section is a content block on a flow page. ID is a per-page insertion
// sequence number.
type Section struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	LayoutID int    `json:"layoutId"`
}

// Page is a node on the flow canvas. Position is in canvas space.
type Page struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Position Point     `json:"position"`
}

// Clone returns a copy whose section slice is not shared with p.
func (p Page) Clone() Page {
	p.Sections = append([]Section(nil), p.Sections...)
	if p.Sections == nil {
		p.Sections = []Section{}
	}
	return p
}

// Direction is where a new page is placed relative to its source page.
type Direction string

const (
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
	DirectionBottom Direction = "bottom"
)

// PageSpacing is the canvas distance between a page and one added beside it.
const PageSpacing = 300.0

// Offset returns the canvas displacement for a new page in direction d.
func (d Direction) Offset() (Point, bool) {
	switch d {
	case DirectionLeft:
		return Point{X: -PageSpacing}, true
	case DirectionRight:
		return Point{X: PageSpacing}, true
	case DirectionBottom:
		return Point{Y: PageSpacing}, true
	}
	return Point{}, false
}

// PageStore holds the flow canvas pages.
type PageStore interface {
	CreatePage(p *Page) error
	GetPage(id int) (*Page, error)
	ListPages() []Page
	UpdatePage(p *Page) error
	CountPages() int
}

// TargetKind identifies what a mouse-down on the flow canvas landed on.
type TargetKind string

const (
	TargetBackground TargetKind = "background"
	TargetPageHeader TargetKind = "pageHeader"
	TargetPageBody   TargetKind = "pageBody"
)

// PointerTarget is the element under the pointer when a gesture starts.
type PointerTarget struct {
	Kind   TargetKind `json:"kind"`
	PageID int        `json:"pageId,omitempty"`
}

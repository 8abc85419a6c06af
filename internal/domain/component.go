package domain

type ComponentType string

const (
	ComponentTypeText    ComponentType = "text"
	ComponentTypeImage   ComponentType = "image"
	ComponentTypeButton  ComponentType = "button"
	ComponentTypeInput   ComponentType = "input"
	ComponentTypeCard    ComponentType = "card"
	ComponentTypeHeader  ComponentType = "header"
	ComponentTypeFooter  ComponentType = "footer"
	ComponentTypeSection ComponentType = "section"
	ComponentTypeGrid    ComponentType = "grid"
	ComponentTypeList    ComponentType = "list"
)

// PlacedComponent is an element dropped onto the builder canvas.
// X and Y are canvas-space pixels relative to the canvas top-left corner.
type PlacedComponent struct {
	ID         string         `json:"id"`
	Type       ComponentType  `json:"type"`
	Name       string         `json:"name"`
	Icon       string         `json:"icon"`
	Content    string         `json:"content"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Properties map[string]any `json:"properties"`
}

// Clone returns a copy that shares no mutable state with c.
func (c PlacedComponent) Clone() PlacedComponent {
	props := make(map[string]any, len(c.Properties))
	for k, v := range c.Properties {
		props[k] = v
	}
	c.Properties = props
	return c
}

// ComponentPatch carries a partial update. Nil fields are left untouched;
// a non-nil Properties map replaces the whole map.
type ComponentPatch struct {
	Type       *ComponentType `json:"type,omitempty"`
	Name       *string        `json:"name,omitempty"`
	Icon       *string        `json:"icon,omitempty"`
	Content    *string        `json:"content,omitempty"`
	X          *float64       `json:"x,omitempty"`
	Y          *float64       `json:"y,omitempty"`
	Width      *float64       `json:"width,omitempty"`
	Height     *float64       `json:"height,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Apply merges p into c.
func (p ComponentPatch) Apply(c *PlacedComponent) {
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.X != nil {
		c.X = *p.X
	}
	if p.Y != nil {
		c.Y = *p.Y
	}
	if p.Width != nil {
		c.Width = *p.Width
	}
	if p.Height != nil {
		c.Height = *p.Height
	}
	if p.Properties != nil {
		props := make(map[string]any, len(p.Properties))
		for k, v := range p.Properties {
			props[k] = v
		}
		c.Properties = props
	}
}

// PositionPatch builds a patch that only moves a component.
func PositionPatch(x, y float64) ComponentPatch {
	return ComponentPatch{X: &x, Y: &y}
}

// SizePatch builds a patch that only resizes a component.
func SizePatch(width, height float64) ComponentPatch {
	return ComponentPatch{Width: &width, Height: &height}
}

// ContentPatch builds a patch that only replaces the content text.
func ContentPatch(content string) ComponentPatch {
	return ComponentPatch{Content: &content}
}

// DefaultContent returns the initial content for a freshly dropped component.
// Unknown types get an empty string.
func DefaultContent(t ComponentType) string {
	switch t {
	case ComponentTypeText:
		return "Double click to edit this text..."
	case ComponentTypeImage:
		return "https://via.placeholder.com/200x100"
	case ComponentTypeButton:
		return "Click me"
	case ComponentTypeInput:
		return "Enter text here..."
	case ComponentTypeCard:
		return "Card content"
	case ComponentTypeHeader:
		return "Header Content"
	case ComponentTypeFooter:
		return "Footer Content"
	case ComponentTypeSection:
		return "Section Content"
	case ComponentTypeGrid:
		return "Grid Content"
	case ComponentTypeList:
		return "List Content"
	default:
		return ""
	}
}

// DefaultSize returns the width and height a component gets on creation.
func DefaultSize(t ComponentType) (width, height float64) {
	if t == ComponentTypeImage {
		return 200, 100
	}
	return 150, 50
}

// ComponentStore holds the placed components of the builder canvas in
// insertion order.
type ComponentStore interface {
	CreateComponent(c *PlacedComponent) error
	GetComponent(id string) (*PlacedComponent, error)
	ListComponents() []PlacedComponent
	UpdateComponent(c *PlacedComponent) error
	DeleteComponent(id string) error
}

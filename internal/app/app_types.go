package app

import "sitebuilder/internal/domain"

// ComponentInput is what the view sends to place a component directly,
// without a drag. The id is always assigned by the app.
type ComponentInput struct {
	Type       domain.ComponentType `json:"type"`
	Name       string               `json:"name"`
	Icon       string               `json:"icon"`
	Content    string               `json:"content"`
	X          float64              `json:"x"`
	Y          float64              `json:"y"`
	Width      float64              `json:"width"`
	Height     float64              `json:"height"`
	Properties map[string]any       `json:"properties"`
}

func (in ComponentInput) component() domain.PlacedComponent {
	return domain.PlacedComponent{
		Type:       in.Type,
		Name:       in.Name,
		Icon:       in.Icon,
		Content:    in.Content,
		X:          in.X,
		Y:          in.Y,
		Width:      in.Width,
		Height:     in.Height,
		Properties: in.Properties,
	}
}

// MCPStatus tells the view whether agents can reach the app.
type MCPStatus struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
	Pending int    `json:"pending"`
}

package domain

// PaletteItem is an entry in the component palette. It carries no id: dropping
// it onto the canvas creates a new component.
type PaletteItem struct {
	Type ComponentType `json:"type"`
	Name string        `json:"name"`
	Icon string        `json:"icon"`
}

// Palette groups the draggable entries shown in the builder sidebar.
type Palette struct {
	Elements []PaletteItem `json:"elements"`
	Layouts  []PaletteItem `json:"layouts"`
}

// DefaultPalette returns the fixed builder palette.
func DefaultPalette() Palette {
	return Palette{
		Elements: []PaletteItem{
			{Type: ComponentTypeText, Name: "Text", Icon: "mdi:text"},
			{Type: ComponentTypeImage, Name: "Image", Icon: "mdi:image"},
			{Type: ComponentTypeButton, Name: "Button", Icon: "mdi:button"},
			{Type: ComponentTypeInput, Name: "Input", Icon: "mdi:form-textbox"},
			{Type: ComponentTypeCard, Name: "Card", Icon: "mdi:card"},
		},
		Layouts: []PaletteItem{
			{Type: ComponentTypeHeader, Name: "Header", Icon: "mdi:view-dashboard"},
			{Type: ComponentTypeFooter, Name: "Footer", Icon: "mdi:view-dashboard"},
			{Type: ComponentTypeSection, Name: "Section", Icon: "mdi:view-dashboard"},
			{Type: ComponentTypeGrid, Name: "Grid", Icon: "mdi:grid"},
			{Type: ComponentTypeList, Name: "List", Icon: "mdi:list-box"},
		},
	}
}

// Lookup finds the palette entry for a component type.
func (p Palette) Lookup(t ComponentType) (PaletteItem, bool) {
	for _, group := range [][]PaletteItem{p.Elements, p.Layouts} {
		for _, item := range group {
			if item.Type == t {
				return item, true
			}
		}
	}
	return PaletteItem{}, false
}

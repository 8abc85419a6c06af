package domain

// SectionTemplate is a section type offered in the first step of the
// section picker.
type SectionTemplate struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Layout is a structural template offered in the second step.
type Layout struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Columns int    `json:"columns"`
}

// Catalog is the fixed set of section types and layouts.
type Catalog struct {
	Sections []SectionTemplate `json:"sections"`
	Layouts  []Layout          `json:"layouts"`
}

// DefaultCatalog returns the built-in section and layout catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Sections: []SectionTemplate{
			{ID: 1, Title: "Hero", Icon: "mdi:star-box", Description: "Large banner with headline and call to action"},
			{ID: 2, Title: "About", Icon: "mdi:information", Description: "Who you are"},
			{ID: 3, Title: "Features", Icon: "mdi:format-list-checks", Description: "Highlights of the product"},
			{ID: 4, Title: "Services", Icon: "mdi:briefcase", Description: "What you offer"},
			{ID: 5, Title: "Testimonials", Icon: "mdi:comment-quote", Description: "Customer quotes"},
			{ID: 6, Title: "Pricing", Icon: "mdi:currency-usd", Description: "Plans and prices"},
			{ID: 7, Title: "Gallery", Icon: "mdi:image-multiple", Description: "Image grid"},
			{ID: 8, Title: "Contact", Icon: "mdi:email", Description: "Contact form and details"},
			{ID: 9, Title: "Footer", Icon: "mdi:page-layout-footer", Description: "Links and copyright"},
		},
		Layouts: []Layout{
			{ID: 1, Name: "Full Width", Columns: 1},
			{ID: 2, Name: "Two Columns", Columns: 2},
			{ID: 3, Name: "Three Columns", Columns: 3},
			{ID: 4, Name: "Image Left", Columns: 2},
			{ID: 5, Name: "Image Right", Columns: 2},
			{ID: 6, Name: "Grid", Columns: 4},
		},
	}
}

func (c Catalog) Section(id int) (SectionTemplate, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionTemplate{}, false
}

func (c Catalog) Layout(id int) (Layout, bool) {
	for _, l := range c.Layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

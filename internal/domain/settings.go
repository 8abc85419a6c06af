package domain

// Theme is the site's color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// SiteSettings are the general and appearance settings of the site being built.
type SiteSettings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Theme       Theme  `json:"theme"`
}

// SiteSettingsPatch is a partial settings update; nil fields are kept.
type SiteSettingsPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Theme       *Theme  `json:"theme,omitempty"`
}

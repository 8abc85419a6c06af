package app

import "sitebuilder/internal/domain"

// ============================================================
// Site settings and builder pages
// ============================================================

func (a *App) GetSiteSettings() (domain.SiteSettings, error) {
	if err := a.ready(); err != nil {
		return domain.SiteSettings{}, err
	}
	return a.site.Settings(), nil
}

func (a *App) UpdateSiteSettings(patch domain.SiteSettingsPatch) (domain.SiteSettings, error) {
	if err := a.ready(); err != nil {
		return domain.SiteSettings{}, err
	}
	return a.site.UpdateSettings(a.bindingCtx(), patch)
}

func (a *App) ListBuilderPages() ([]string, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.site.ListPages(), nil
}

// AddBuilderPage appends a page to the builder menu and returns its name.
func (a *App) AddBuilderPage() (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	return a.site.AddPage(a.bindingCtx()), nil
}

package config

// Literal footer links rendered on every page.
const (
	RepositoryURL   = "https://github.com/uktrade/stream-unzip"
	OrganisationURL = "https://www.gov.uk/government/organisations/department-for-business-and-trade"
)

// Default returns the site inputs used when no config file overrides them.
func Default() *SiteConfig {
	return &SiteConfig{
		FontFamily: "system-ui, sans-serif",
		Icons: IconsConfig{
			Shortcut: "/assets/dit-favicon.png",
		},
		Header: HeaderConfig{
			OrganisationName: "Department for Business and Trade",
			LogoPath:         "./docs/assets/dit-logo.svg",
			ProductName:      "stream-unzip",
		},
		ServiceName: "stream-unzip",
		Navigation: []NavigationEntry{
			{Label: "Get started", Path: "/get-started/"},
			{Label: "Features", Path: "/features/"},
			{Label: "API", Path: "/api/"},
			{Label: "Contributing", Path: "/contributing/"},
		},
		Footer: []FooterLink{
			{URL: RepositoryURL, Label: "GitHub repository for stream-unzip"},
			{URL: OrganisationURL, Label: "Created by the Department for Business and Trade (DBT)"},
		},
		Stylesheets: []string{"/assets/styles.css"},
		Generator: GeneratorConfig{
			Input:       "docs",
			Passthrough: []string{"./docs/assets", "./docs/CNAME"},
		},
	}
}

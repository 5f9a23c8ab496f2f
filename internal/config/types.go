package config

// SiteConfig holds the literal inputs for one documentation site build.
// Values are handed to the design-system plugin untouched; none are validated here.
type SiteConfig struct {
	FontFamily  string            `yaml:"font_family,omitempty"`
	Icons       IconsConfig       `yaml:"icons"`
	Header      HeaderConfig      `yaml:"header"`
	ServiceName string            `yaml:"service_name,omitempty"`
	Navigation  []NavigationEntry `yaml:"navigation,omitempty"` // rendered in listed order
	Footer      []FooterLink      `yaml:"footer,omitempty"`     // rendered in listed order
	Stylesheets []string          `yaml:"stylesheets,omitempty"`
	Generator   GeneratorConfig   `yaml:"generator"`
}

// IconsConfig lists favicon paths relative to the site root.
type IconsConfig struct {
	Shortcut string `yaml:"shortcut,omitempty"`
}

// HeaderConfig describes the site header.
type HeaderConfig struct {
	OrganisationName string `yaml:"organisation_name,omitempty"`
	// LogoPath points at a file whose raw text is inlined as the header logo.
	LogoPath    string `yaml:"logo_path"`
	ProductName string `yaml:"product_name,omitempty"`
}

// NavigationEntry is a single service navigation link.
type NavigationEntry struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// FooterLink is a single footer meta link.
type FooterLink struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
}

// GeneratorConfig holds the static-site generator directory settings.
type GeneratorConfig struct {
	Input   string `yaml:"input"`
	Layouts string `yaml:"layouts,omitempty"`
	// Passthrough lists files and directories copied verbatim into the build output.
	Passthrough []string `yaml:"passthrough,omitempty"`
}

package site

// TemplateEngine is the single engine used for data, HTML and Markdown templates.
const TemplateEngine = "njk"

// PluginOptions is the option object registered with the design-system plugin.
// Field names follow the plugin's own option names.
type PluginOptions struct {
	FontFamily        string             `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	Icons             Icons              `json:"icons" yaml:"icons"`
	Header            Header             `json:"header" yaml:"header"`
	ServiceNavigation *ServiceNavigation `json:"serviceNavigation,omitempty" yaml:"serviceNavigation,omitempty"`
	Footer            *Footer            `json:"footer,omitempty" yaml:"footer,omitempty"`
	Stylesheets       []string           `json:"stylesheets,omitempty" yaml:"stylesheets,omitempty"`
}

type Icons struct {
	Shortcut string `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
}

type Header struct {
	OrganisationName string `json:"organisationName,omitempty" yaml:"organisationName,omitempty"`
	// OrganisationLogo is the raw markup of the logo asset.
	OrganisationLogo string `json:"organisationLogo" yaml:"organisationLogo"`
	ProductName      string `json:"productName,omitempty" yaml:"productName,omitempty"`
}

type ServiceNavigation struct {
	ServiceName string           `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	Navigation  []NavigationItem `json:"navigation,omitempty" yaml:"navigation,omitempty"`
}

type NavigationItem struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

type Footer struct {
	Meta FooterMeta `json:"meta" yaml:"meta"`
}

type FooterMeta struct {
	Items []FooterItem `json:"items" yaml:"items"`
}

type FooterItem struct {
	Href string `json:"href" yaml:"href"`
	Text string `json:"text" yaml:"text"`
}

// GeneratorSettings is the generator-level configuration returned from the site config.
type GeneratorSettings struct {
	DataTemplateEngine     string `json:"dataTemplateEngine" yaml:"dataTemplateEngine"`
	HTMLTemplateEngine     string `json:"htmlTemplateEngine" yaml:"htmlTemplateEngine"`
	MarkdownTemplateEngine string `json:"markdownTemplateEngine" yaml:"markdownTemplateEngine"`
	Dir                    Dirs   `json:"dir" yaml:"dir"`
	// PassthroughCopy lists paths the pipeline copies byte-for-byte into the output.
	PassthroughCopy []string `json:"passthroughCopy,omitempty" yaml:"passthroughCopy,omitempty"`
}

type Dirs struct {
	Input   string `json:"input" yaml:"input"`
	Layouts string `json:"layouts,omitempty" yaml:"layouts,omitempty"`
}

package constants

// Version is stamped at build time via -ldflags. "source" means a
// locally built binary.
var Version = "source"

const (
	// TemplateOwner is the GitHub account holding the starter templates.
	TemplateOwner = "themelab"

	// DefaultTemplateName is the starter cloned when no --template is given.
	DefaultTemplateName = "starter-theme"
	DefaultTemplateURL  = "https://github.com/themelab/starter-theme.git"
	DefaultTemplateRef  = "main"

	// StoreSuffix is the domain every Shopify store URL ends with.
	StoreSuffix = ".myshopify.com"

	// DefaultThemeName is used when the interactive prompt is left empty.
	DefaultThemeName = "my-shopify-theme"

	ThemeDocsURL = "https://shopify.dev/docs/themes"
)

package constants

var DocsURLMap = map[string]string{
	"docs":      "https://shopify.dev/docs/themes",
	"liquid":    "https://shopify.dev/docs/api/liquid",
	"sections":  "https://shopify.dev/docs/themes/architecture/sections",
	"checkout":  "https://shopify.dev/docs/themes/architecture/templates/checkout",
	"cli":       "https://github.com/themelab/create-shopify-theme",
	"templates": "https://github.com/themelab",
	"partners":  "https://partners.shopify.com",
}

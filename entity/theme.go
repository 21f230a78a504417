package entity

import (
	"strings"

	"github.com/themelab/create-shopify-theme/constants"
)

// ThemeConfig is the single configuration record threaded through the
// scaffolding pipeline.
type ThemeConfig struct {
	Name        string
	Store       string
	InitGit     bool
	InstallDeps bool
	Template    *Template
}

// ValidStoreURL reports whether a store URL is acceptable. Empty means
// "skip the store rewrite" and is always valid.
func ValidStoreURL(url string) bool {
	return url == "" || strings.HasSuffix(url, constants.StoreSuffix)
}

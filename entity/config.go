package entity

// UserConfig holds defaults remembered between runs (~/.create-shopify-theme).
type UserConfig struct {
	DefaultStore    string `json:"defaultStore,omitempty"`
	DefaultTemplate string `json:"defaultTemplate,omitempty"`
}

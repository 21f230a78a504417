package entity

// Template is a scaffoldable starter theme.
type Template struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Branch      string `json:"branch"`
}

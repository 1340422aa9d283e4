package models

// Product represents a single part in the global product database.
// JSON keys match the historical database.json format so existing data files stay loadable.
type Product struct {
	Code        string  `json:"codigo"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	ImageRef    string  `json:"imagem"`
	ManualRef   *string `json:"manual,omitempty"`
}

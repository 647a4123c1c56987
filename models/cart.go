package models

// CartLine is one resolved cart entry: the product joined back against the
// catalog with a computed line total (price x quantity, in cents).
type CartLine struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal int     `json:"line_total"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total int        `json:"total"`
}

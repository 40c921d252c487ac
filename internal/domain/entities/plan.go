package entities

// Plan is a subscription plan offered at checkout.
//
// The catalog is defined at process start and never mutated; OriginalPrice is
// kept only for discount display and plays no role in the charged amount.

type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Features      []string `json:"features"`
	Popular       bool     `json:"popular,omitempty"`
}

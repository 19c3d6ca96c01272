package domain

// Document is a free-form structured payload (insurance options,
// application details). It is serialized to JSON at the persistence
// boundary; no fixed schema is assumed.
type Document map[string]any

// InsuranceType is immutable catalog data, seeded at first run.
type InsuranceType struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Options   Document `json:"options"`
	BasePrice float64  `json:"base_price"`
}

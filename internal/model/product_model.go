package model

type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`

	// DeletedFlag is the soft-delete marker: 0 live, 1 deleted. Rows are
	// never physically removed.
	DeletedFlag int16 `json:"deleted_flag"`
}

package responses

type Medicine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ExpiryDate   string  `json:"expiry_date,omitempty"`
}

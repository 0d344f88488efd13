package requests

type CreateMedicine struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"omitempty"`
	Manufacturer string  `json:"manufacturer" validate:"omitempty"`
	Price        float64 `json:"price" validate:"gte=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	ExpiryDate   string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateMedicine struct {
	Description  string  `json:"description" validate:"omitempty"`
	Manufacturer string  `json:"manufacturer" validate:"omitempty"`
	Price        float64 `json:"price" validate:"omitempty,gte=0"`
	Stock        int     `json:"stock" validate:"omitempty,gte=0"`
	ExpiryDate   string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

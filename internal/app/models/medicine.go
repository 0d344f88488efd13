package models

type Medicine struct {
	ID           string  `bson:"_id,omitempty"`
	Name         string  `bson:"name"`
	Description  string  `bson:"description,omitempty"`
	Manufacturer string  `bson:"manufacturer"`
	Price        float64 `bson:"price"`
	Stock        int     `bson:"stock"`
	ExpiryDate   string  `bson:"expiryDate"`
	TimeModel    `bson:",inline"`
}

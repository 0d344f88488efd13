package models

type Role struct {
	ID          string   `bson:"_id,omitempty"`
	Name        string   `bson:"name"`
	Permissions []string `bson:"permissions"`
	TimeModel   `bson:",inline"`
}

package models

type Doctor struct {
	ID             string   `bson:"_id,omitempty"`
	UserID         string   `bson:"userId,omitempty"`
	Name           string   `bson:"name"`
	Email          string   `bson:"email"`
	Specialization string   `bson:"specialization"`
	Experience     int      `bson:"experience"`
	AvailableSlots []string `bson:"availableSlots,omitempty"`
	TimeModel      `bson:",inline"`
}

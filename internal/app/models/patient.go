package models

import "time"

type Patient struct {
	ID             string    `bson:"_id,omitempty"`
	UserID         string    `bson:"userId,omitempty"`
	FirstName      string    `bson:"firstName"`
	LastName       string    `bson:"lastName"`
	Age            int       `bson:"age"`
	Gender         string    `bson:"gender"`
	Phone          string    `bson:"phone"`
	Email          string    `bson:"email,omitempty"`
	Address        string    `bson:"address"`
	MedicalHistory string    `bson:"medicalHistory,omitempty"`
	DateRegistered time.Time `bson:"dateRegistered"`
	TimeModel      `bson:",inline"`
}

package models

import "time"

type User struct {
	ID          string     `bson:"_id"`
	Email       string     `bson:"email"`
	Name        string     `bson:"name"`
	Password    string     `bson:"password"`
	LastLoginAt *time.Time `bson:"lastLoginAt,omitempty"`
	TimeModel   `bson:",inline"`
}

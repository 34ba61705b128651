package models

import "time"

// Identity is the authenticated staff user as seen by the authorizer.
type Identity struct {
	UserID string
	Email  string
}

type AccessDecision struct {
	Allowed      bool
	IsSuperAdmin bool
}

type AdminAccessLog struct {
	ID         string    `bson:"_id"`
	BusinessID string    `bson:"businessId"`
	UserID     string    `bson:"userId"`
	Email      string    `bson:"email"`
	Slug       string    `bson:"slug"`
	AccessedAt time.Time `bson:"accessedAt"`
}

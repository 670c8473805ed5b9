package domain

import "time"

// PropertyStatus represents the operational state of a PG property.
type PropertyStatus string

const (
	PropertyActive    PropertyStatus = "active"
	PropertySuspended PropertyStatus = "suspended"
)

// Property is one PG in the portfolio managed by the super admin.
type Property struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	Name       string         `json:"name" bson:"name"`
	City       string         `json:"city" bson:"city"`
	AdminEmail string         `json:"admin_email" bson:"admin_email"`
	Status     PropertyStatus `json:"status" bson:"status"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" bson:"updated_at"`
}

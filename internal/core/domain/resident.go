package domain

import "time"

// ResidentStatus tracks whether a resident currently lives in the PG.
type ResidentStatus string

const (
	ResidentActive     ResidentStatus = "active"
	ResidentCheckedOut ResidentStatus = "checked_out"
)

// Resident is a guest of the PG as a managed record: the administrative view
// of the person, distinct from the Identity used for their own session.
type Resident struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	PGID       string         `json:"pg_id" bson:"pg_id"`
	Name       string         `json:"name" bson:"name"`
	Email      string         `json:"email" bson:"email"`
	Phone      string         `json:"phone" bson:"phone"`
	RoomNumber string         `json:"room_number,omitempty" bson:"room_number,omitempty"`
	JoinDate   time.Time      `json:"join_date" bson:"join_date"`
	EndDate    *time.Time     `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Status     ResidentStatus `json:"status" bson:"status"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" bson:"updated_at"`
}

package domain

import "time"

// RoomStatus represents the lifecycle state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room is a rentable unit inside a PG property. Occupied counts current
// residents and never exceeds Capacity.
type Room struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	PGID        string     `json:"pg_id" bson:"pg_id"`
	Number      string     `json:"number" bson:"number"`
	Floor       int        `json:"floor" bson:"floor"`
	Type        string     `json:"type" bson:"type"`
	Capacity    int        `json:"capacity" bson:"capacity"`
	Occupied    int        `json:"occupied" bson:"occupied"`
	RentMonthly float64    `json:"rent_monthly" bson:"rent_monthly"`
	Amenities   []string   `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Status      RoomStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}

// HasVacancy reports whether another resident can be assigned to the room.
func (r *Room) HasVacancy() bool {
	return r.Status != RoomMaintenance && r.Occupied < r.Capacity
}

package domain

import "time"

// MenuDay is the planned menu for one weekday of a PG's weekly meal rotation.
// Weekday uses lowercase English day names ("monday" … "sunday").
type MenuDay struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	PGID      string    `json:"pg_id" bson:"pg_id"`
	Weekday   string    `json:"weekday" bson:"weekday"`
	Breakfast string    `json:"breakfast" bson:"breakfast"`
	Lunch     string    `json:"lunch" bson:"lunch"`
	Dinner    string    `json:"dinner" bson:"dinner"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Weekdays is the canonical ordering of menu days.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ValidWeekday reports whether day is one of the seven canonical names.
func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

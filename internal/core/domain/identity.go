package domain

import "time"

// Identity models an authenticated actor. It is created by the credential
// registry at successful login, owned exclusively by the session that holds it,
// and only ever replaced wholesale (never field-patched by other components).
//
// AdminSubRole is set if and only if Role is RoleAdmin. RoomNumber, JoinDate
// and EndDate are meaningful only for guests.
type Identity struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	Name         string       `json:"name" bson:"name"`
	Email        string       `json:"email" bson:"email"`
	Role         Role         `json:"role" bson:"role"`
	AdminSubRole AdminSubRole `json:"admin_sub_role,omitempty" bson:"admin_sub_role,omitempty"`
	ProfileImage string       `json:"profile_image,omitempty" bson:"profile_image,omitempty"`
	RoomNumber   string       `json:"room_number,omitempty" bson:"room_number,omitempty"`
	JoinDate     *time.Time   `json:"join_date,omitempty" bson:"join_date,omitempty"`
	EndDate      *time.Time   `json:"end_date,omitempty" bson:"end_date,omitempty"`
	PGID         string       `json:"pg_id,omitempty" bson:"pg_id,omitempty"`
}

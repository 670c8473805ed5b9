package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// CreateRoomInput carries all data needed to register a new room.
type CreateRoomInput struct {
	PGID        string
	Number      string
	Floor       int
	Type        string
	Capacity    int
	RentMonthly float64
	Amenities   []string
}

// UpdateRoomInput carries the mutable room fields. Nil pointers leave the
// field unchanged.
type UpdateRoomInput struct {
	Type        *string
	Capacity    *int
	RentMonthly *float64
	Amenities   []string
	Status      *domain.RoomStatus
}

// RoomVacancy is the reduced public view of an available room.
type RoomVacancy struct {
	ID          string  `json:"id"`
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	RentMonthly float64 `json:"rent_monthly"`
	Beds        int     `json:"beds_free"`
}

// ListRoomsResult is one page of rooms plus the total count.
type ListRoomsResult struct {
	Items      []*domain.Room
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter ListRoomsFilter) (*ListRoomsResult, error)
	Update(ctx context.Context, id string, input UpdateRoomInput) (*domain.Room, error)
	// Assign increments occupancy; fails with domain.ErrRoomFull at capacity.
	Assign(ctx context.Context, id string) (*domain.Room, error)
	// Release decrements occupancy; fails with domain.ErrRoomVacant at zero.
	Release(ctx context.Context, id string) (*domain.Room, error)
	// Vacancies lists available rooms in the public projection.
	Vacancies(ctx context.Context, pgID string) ([]RoomVacancy, error)
}

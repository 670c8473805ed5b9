package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

const maxPageLimit = 100

type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	if existing, err := s.repo.FindByNumber(ctx, input.PGID, input.Number); err == nil && existing != nil {
		return nil, domain.ErrDuplicateRoom
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:          uuid.NewString(),
		PGID:        input.PGID,
		Number:      input.Number,
		Floor:       input.Floor,
		Type:        input.Type,
		Capacity:    input.Capacity,
		RentMonthly: input.RentMonthly,
		Amenities:   input.Amenities,
		Status:      domain.RoomAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		s.logger.Error().Err(err).Str("number", input.Number).Msg("failed to create room")
		return nil, err
	}

	s.logger.Info().Str("room_id", room.ID).Str("number", room.Number).Msg("room created")
	return room, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, filter ports.ListRoomsFilter) (*ports.ListRoomsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListRoomsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *RoomService) Update(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.RentMonthly != nil {
		room.RentMonthly = *input.RentMonthly
	}
	if input.Amenities != nil {
		room.Amenities = input.Amenities
	}
	if input.Status != nil {
		room.Status = *input.Status
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Assign claims one bed in the room. The occupancy counter never exceeds
// capacity; a full room fails with ErrRoomFull.
func (s *RoomService) Assign(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !room.HasVacancy() {
		return nil, domain.ErrRoomFull
	}

	room.Occupied++
	if room.Occupied == room.Capacity {
		room.Status = domain.RoomOccupied
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", room.ID).Int("occupied", room.Occupied).Msg("bed assigned")
	return room, nil
}

// Release frees one bed. The counter never goes below zero; an empty room
// fails with ErrRoomVacant.
func (s *RoomService) Release(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room.Occupied == 0 {
		return nil, domain.ErrRoomVacant
	}

	room.Occupied--
	if room.Status == domain.RoomOccupied {
		room.Status = domain.RoomAvailable
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", room.ID).Int("occupied", room.Occupied).Msg("bed released")
	return room, nil
}

// Vacancies returns the reduced public projection of rooms with free beds.
func (s *RoomService) Vacancies(ctx context.Context, pgID string) ([]ports.RoomVacancy, error) {
	rooms, _, err := s.repo.List(ctx, ports.ListRoomsFilter{
		PGID:   pgID,
		Status: string(domain.RoomAvailable),
		Page:   1,
		Limit:  maxPageLimit,
	})
	if err != nil {
		return nil, err
	}

	vacancies := make([]ports.RoomVacancy, 0, len(rooms))
	for _, room := range rooms {
		if !room.HasVacancy() {
			continue
		}
		vacancies = append(vacancies, ports.RoomVacancy{
			ID:          room.ID,
			Number:      room.Number,
			Type:        room.Type,
			RentMonthly: room.RentMonthly,
			Beds:        room.Capacity - room.Occupied,
		})
	}
	return vacancies, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type ResidentService struct {
	repo   ports.ResidentRepository
	rooms  ports.RoomService
	logger zerolog.Logger
}

func NewResidentService(repo ports.ResidentRepository, rooms ports.RoomService, logger zerolog.Logger) *ResidentService {
	return &ResidentService{repo: repo, rooms: rooms, logger: logger}
}

// CheckIn creates the resident record and, when a room is given, claims a bed
// in it. The bed claim happens first so a full room aborts the check-in.
func (s *ResidentService) CheckIn(ctx context.Context, input ports.CheckInInput) (*domain.Resident, error) {
	var roomNumber string
	if input.RoomID != "" {
		room, err := s.rooms.Assign(ctx, input.RoomID)
		if err != nil {
			return nil, err
		}
		roomNumber = room.Number
	}

	now := time.Now().UTC()
	joinDate := input.JoinDate
	if joinDate.IsZero() {
		joinDate = now
	}

	resident := &domain.Resident{
		ID:         uuid.NewString(),
		PGID:       input.PGID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		RoomNumber: roomNumber,
		JoinDate:   joinDate,
		Status:     domain.ResidentActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, resident); err != nil {
		// Roll the bed claim back so the room does not leak occupancy.
		if input.RoomID != "" {
			if _, relErr := s.rooms.Release(ctx, input.RoomID); relErr != nil {
				s.logger.Error().Err(relErr).Str("room_id", input.RoomID).Msg("failed to release bed after aborted check-in")
			}
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create resident")
		return nil, err
	}

	s.logger.Info().Str("resident_id", resident.ID).Str("room", roomNumber).Msg("resident checked in")
	return resident, nil
}

func (s *ResidentService) Get(ctx context.Context, id string) (*domain.Resident, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResidentService) List(ctx context.Context, filter ports.ListResidentsFilter) (*ports.ListResidentsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListResidentsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *ResidentService) Update(ctx context.Context, id string, input ports.UpdateResidentInput) (*domain.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		resident.Name = *input.Name
	}
	if input.Email != nil {
		resident.Email = *input.Email
	}
	if input.Phone != nil {
		resident.Phone = *input.Phone
	}
	resident.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

// CheckOut closes the stay: end date set, status flipped, bed released.
func (s *ResidentService) CheckOut(ctx context.Context, id string, endDate time.Time) (*domain.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resident.Status == domain.ResidentCheckedOut {
		return nil, domain.ErrResidentInactive
	}

	if endDate.IsZero() {
		endDate = time.Now().UTC()
	}
	resident.EndDate = &endDate
	resident.Status = domain.ResidentCheckedOut
	roomNumber := resident.RoomNumber
	resident.RoomNumber = ""
	resident.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, resident); err != nil {
		return nil, err
	}

	if roomNumber != "" {
		if err := s.releaseByNumber(ctx, resident.PGID, roomNumber); err != nil {
			s.logger.Warn().Err(err).Str("room", roomNumber).Msg("failed to release bed on check-out")
		}
	}

	s.logger.Info().Str("resident_id", resident.ID).Msg("resident checked out")
	return resident, nil
}

func (s *ResidentService) releaseByNumber(ctx context.Context, pgID, number string) error {
	result, err := s.rooms.List(ctx, ports.ListRoomsFilter{PGID: pgID, Search: number, Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if len(result.Items) == 0 {
		return domain.ErrRoomNotFound
	}
	_, err = s.rooms.Release(ctx, result.Items[0].ID)
	return err
}

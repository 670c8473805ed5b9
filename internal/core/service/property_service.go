package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type PropertyService struct {
	repo      ports.PropertyRepository
	rooms     ports.RoomRepository
	residents ports.ResidentRepository
	payments  ports.PaymentRepository
	logger    zerolog.Logger
}

func NewPropertyService(
	repo ports.PropertyRepository,
	rooms ports.RoomRepository,
	residents ports.ResidentRepository,
	payments ports.PaymentRepository,
	logger zerolog.Logger,
) *PropertyService {
	return &PropertyService{
		repo:      repo,
		rooms:     rooms,
		residents: residents,
		payments:  payments,
		logger:    logger,
	}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	property := &domain.Property{
		ID:         uuid.NewString(),
		Name:       input.Name,
		City:       input.City,
		AdminEmail: input.AdminEmail,
		Status:     domain.PropertyActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", property.ID).Str("name", property.Name).Msg("property created")
	return property, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Update(ctx context.Context, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.AdminEmail != nil {
		property.AdminEmail = *input.AdminEmail
	}
	if input.Status != nil {
		property.Status = *input.Status
	}
	property.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Overview aggregates per-property counts across the room, resident and
// payment repositories.
func (s *PropertyService) Overview(ctx context.Context) ([]ports.PropertyOverview, error) {
	properties, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]ports.PropertyOverview, 0, len(properties))
	for _, p := range properties {
		rooms, err := s.rooms.CountByProperty(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		residents, err := s.residents.CountActiveByProperty(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		pending, err := s.payments.CountPendingByProperty(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, ports.PropertyOverview{
			Property:        p,
			Rooms:           rooms,
			ActiveResidents: residents,
			PendingPayments: pending,
		})
	}
	return overviews, nil
}

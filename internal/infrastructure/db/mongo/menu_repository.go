package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

const collectionMenu = "menu_days"

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenu)}
}

// Upsert replaces the menu for one (pg, weekday) pair, creating it on first
// write.
func (r *MenuRepository) Upsert(ctx context.Context, day *domain.MenuDay) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"pg_id": day.PGID, "weekday": day.Weekday}
	opts := options.Replace().SetUpsert(true)

	_, err := r.col.ReplaceOne(ctx, filter, day, opts)
	return err
}

func (r *MenuRepository) FindDay(ctx context.Context, pgID, weekday string) (*domain.MenuDay, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var day domain.MenuDay
	err := r.col.FindOne(ctx, bson.M{"pg_id": pgID, "weekday": weekday}).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *MenuRepository) ListWeek(ctx context.Context, pgID string) ([]*domain.MenuDay, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"pg_id": pgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var days []*domain.MenuDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

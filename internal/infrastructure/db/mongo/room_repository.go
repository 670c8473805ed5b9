package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, room)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateRoom
	}
	return err
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var room domain.Room
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) FindByNumber(ctx context.Context, pgID, number string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var room domain.Room
	err := r.col.FindOne(ctx, bson.M{"pg_id": pgID, "number": number}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": room.ID}, room)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// List returns one page of rooms matching the filter plus the total count.
func (r *RoomRepository) List(ctx context.Context, filter ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.PGID != "" {
		query["pg_id"] = filter.PGID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Floor != nil {
		query["floor"] = *filter.Floor
	}
	if filter.Search != "" {
		query["number"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "number", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var rooms []*domain.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *RoomRepository) CountByProperty(ctx context.Context, pgID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"pg_id": pgID})
}

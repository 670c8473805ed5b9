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

const collectionResidents = "residents"

type ResidentRepository struct {
	col *mongo.Collection
}

func NewResidentRepository(db *mongo.Database) *ResidentRepository {
	return &ResidentRepository{col: db.Collection(collectionResidents)}
}

func (r *ResidentRepository) Create(ctx context.Context, resident *domain.Resident) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, resident)
	return err
}

func (r *ResidentRepository) FindByID(ctx context.Context, id string) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var resident domain.Resident
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&resident)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, err
	}
	return &resident, nil
}

func (r *ResidentRepository) Update(ctx context.Context, resident *domain.Resident) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": resident.ID}, resident)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

func (r *ResidentRepository) List(ctx context.Context, filter ports.ListResidentsFilter) ([]*domain.Resident, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.PGID != "" {
		query["pg_id"] = filter.PGID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "join_date", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var residents []*domain.Resident
	if err := cursor.All(ctx, &residents); err != nil {
		return nil, 0, err
	}
	return residents, total, nil
}

func (r *ResidentRepository) ListActiveIDs(ctx context.Context, pgID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{"pg_id": pgID, "status": domain.ResidentActive}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *ResidentRepository) CountActiveByProperty(ctx context.Context, pgID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"pg_id": pgID, "status": domain.ResidentActive})
}

package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

const collectionMessages = "messages"

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages)}
}

func (r *MessageRepository) Insert(ctx context.Context, m *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, m)
	return err
}

// ListThread returns a thread's messages oldest first.
func (r *MessageRepository) ListThread(ctx context.Context, threadID string, limit int) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "sent_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"thread_id": threadID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*domain.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListThreadsFor aggregates the user's threads with the latest message and
// count per thread.
func (r *MessageRepository) ListThreadsFor(ctx context.Context, userID string) ([]ports.ThreadSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"from_id": userID},
			bson.M{"to_id": userID},
		}}}},
		{{Key: "$sort", Value: bson.D{{Key: "sent_at", Value: 1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$thread_id",
			"last":  bson.M{"$last": "$$ROOT"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last.sent_at", Value: -1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ThreadID string          `bson:"_id"`
		Last     *domain.Message `bson:"last"`
		Count    int64           `bson:"count"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	summaries := make([]ports.ThreadSummary, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, ports.ThreadSummary{
			ThreadID: d.ThreadID,
			Last:     d.Last,
			Count:    d.Count,
		})
	}
	return summaries, nil
}

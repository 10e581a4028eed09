package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// counterCollection is the part of *mongo.Collection a sequence uses.
type counterCollection interface {
	FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
}

// sequence hands out monotonic integer ids, one counter document per collection.
type sequence struct {
	col counterCollection
}

func newSequence(db *mongo.Database) *sequence {
	return &sequence{col: db.Collection(collectionCounters)}
}

// reserve claims n consecutive ids for name and returns the first one.
func (s *sequence) reserve(ctx context.Context, name string, n int) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(n)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("reserve %d %s ids: %w", n, name, err)
	}
	return firstReserved(doc.Value, n), nil
}

// firstReserved returns the first id of the n ids ending at last.
func firstReserved(last int64, n int) int64 {
	return last - int64(n) + 1
}

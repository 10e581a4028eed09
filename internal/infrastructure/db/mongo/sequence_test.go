package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

// fakeCounters answers FindOneAndUpdate with a fixed counter value or error.
type fakeCounters struct {
	value  int64
	err    error
	update bson.M
}

func (f *fakeCounters) FindOneAndUpdate(_ context.Context, _, update interface{}, _ ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	f.update, _ = update.(bson.M)
	if f.err != nil {
		return mongo.NewSingleResultFromDocument(bson.M{}, f.err, nil)
	}
	return mongo.NewSingleResultFromDocument(bson.M{"_id": "articles", "value": f.value}, nil, nil)
}

func TestSequence_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		counter   int64
		n         int
		wantFirst int64
	}{
		{"first batch", 100, 100, 1},
		{"single id", 1, 1, 1},
		{"follow-up batch", 105, 5, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCounters{value: tt.counter}
			first, err := (&sequence{col: fake}).reserve(context.Background(), "articles", tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if first != tt.wantFirst {
				t.Errorf("expected first id %d, got %d", tt.wantFirst, first)
			}

			inc, _ := fake.update["$inc"].(bson.M)
			if inc["value"] != int64(tt.n) {
				t.Errorf("expected $inc by %d, got %v", tt.n, fake.update)
			}
		})
	}
}

func TestSequence_ReserveError(t *testing.T) {
	boom := errors.New("write conflict")
	_, err := (&sequence{col: &fakeCounters{err: boom}}).reserve(context.Background(), "users", 3)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestNotFound(t *testing.T) {
	boom := errors.New("socket closed")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     error
	}{
		{"missing article", mongo.ErrNoDocuments, domain.ErrArticleNotFound, domain.ErrArticleNotFound},
		{"missing user", mongo.ErrNoDocuments, domain.ErrUserNotFound, domain.ErrUserNotFound},
		{"other error", boom, domain.ErrUserNotFound, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := notFound(tt.err, tt.sentinel, "find")
			if !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if tt.err != mongo.ErrNoDocuments && errors.Is(got, tt.sentinel) {
				t.Errorf("non-missing errors must not map to %v", tt.sentinel)
			}
		})
	}
}

func TestFindOneDecode_NoDocumentsMapsToSentinel(t *testing.T) {
	var a domain.Article
	err := mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil).Decode(&a)
	if got := notFound(err, domain.ErrArticleNotFound, "find article"); !errors.Is(got, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", got)
	}
}

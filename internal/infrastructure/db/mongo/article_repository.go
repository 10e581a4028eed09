package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

const collectionArticles = "articles"

type ArticleRepository struct {
	col *mongo.Collection
	seq *sequence
}

var _ ports.ArticleRepository = (*ArticleRepository)(nil)

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles), seq: newSequence(db)}
}

// List returns the articles matching filter in id order.
func (r *ArticleRepository) List(ctx context.Context, filter ports.ArticleFilter) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.MemberOnly {
		query["is_member_only"] = true
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}

	articles := make([]*domain.Article, 0)
	if err := cur.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, notFound(err, domain.ErrArticleNotFound, "find article")
	}
	return &a, nil
}

// InsertMany stores articles under freshly reserved ids, written back onto each article.
func (r *ArticleRepository) InsertMany(ctx context.Context, articles []*domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	first, err := r.seq.reserve(ctx, collectionArticles, len(articles))
	if err != nil {
		return err
	}

	docs := make([]interface{}, len(articles))
	for i, a := range articles {
		a.ID = first + int64(i)
		docs[i] = a
	}

	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert articles: %w", err)
	}
	return nil
}

// EnsureIndexes creates the index backing the member-only scan.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "is_member_only", Value: 1}},
	})
	return err
}

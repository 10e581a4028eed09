package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

const (
	DefaultUsers    = 25
	DefaultArticles = 100

	sentencesPerArticle = 8
	wordsPerSentence    = 10
	maxMinutesToRead    = 20

	// attempts at a fresh first name before falling back to a numbered one
	maxNameAttempts = 50
)

// FakerSource generates random users and articles.
type FakerSource struct {
	faker    *gofakeit.Faker
	users    int
	articles int
}

// NewFakerSource returns a generator for the given counts. Seed 0 picks a random seed.
// Non-positive counts fall back to DefaultUsers and DefaultArticles.
func NewFakerSource(seed uint64, users, articles int) *FakerSource {
	if users <= 0 {
		users = DefaultUsers
	}
	if articles <= 0 {
		articles = DefaultArticles
	}
	return &FakerSource{faker: gofakeit.New(seed), users: users, articles: articles}
}

func (s *FakerSource) Generate() ([]*domain.User, []*domain.Article, error) {
	return s.generateUsers(), s.generateArticles(), nil
}

// generateUsers picks distinct first names as usernames.
func (s *FakerSource) generateUsers() []*domain.User {
	seen := make(map[string]struct{}, s.users)
	users := make([]*domain.User, 0, s.users)

	for len(users) < s.users {
		name := s.faker.FirstName()
		for attempt := 0; attempt < maxNameAttempts; attempt++ {
			if _, taken := seen[name]; !taken {
				break
			}
			name = s.faker.FirstName()
		}
		if _, taken := seen[name]; taken {
			name = fmt.Sprintf("%s%d", name, len(users)+1)
		}

		seen[name] = struct{}{}
		users = append(users, &domain.User{Username: name})
	}
	return users
}

// generateArticles makes roughly one in three articles member-only.
func (s *FakerSource) generateArticles() []*domain.Article {
	articles := make([]*domain.Article, 0, s.articles)
	for i := 0; i < s.articles; i++ {
		articles = append(articles, domain.NewArticle(
			s.faker.Name(),
			s.faker.Sentence(6),
			s.faker.Paragraph(1, sentencesPerArticle, wordsPerSentence, " "),
			s.faker.IntRange(1, maxMinutesToRead),
			s.faker.IntRange(0, 2) == 0,
		))
	}
	return articles
}

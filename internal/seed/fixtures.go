package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

// Fixtures is the YAML layout accepted by FixtureSource:
//
//	users:
//	  - username: Ada
//	articles:
//	  - author: Ada Lovelace
//	    title: Notes
//	    content: ...
//	    minutes_to_read: 4
//	    is_member_only: true
type Fixtures struct {
	Users    []UserFixture    `yaml:"users"`
	Articles []ArticleFixture `yaml:"articles"`
}

type UserFixture struct {
	Username string `yaml:"username"`
}

type ArticleFixture struct {
	Author        string `yaml:"author"`
	Title         string `yaml:"title"`
	Content       string `yaml:"content"`
	MinutesToRead int    `yaml:"minutes_to_read"`
	IsMemberOnly  bool   `yaml:"is_member_only"`
}

// FixtureSource reads seed data from a YAML file.
type FixtureSource struct {
	path string
}

func NewFixtureSource(path string) *FixtureSource {
	return &FixtureSource{path: path}
}

func (s *FixtureSource) Generate() ([]*domain.User, []*domain.Article, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read fixtures %s: %w", s.path, err)
	}

	var fx Fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, nil, fmt.Errorf("parse fixtures %s: %w", s.path, err)
	}
	return fx.build()
}

// build requires at least one user so a seeded store never looks empty again.
func (fx Fixtures) build() ([]*domain.User, []*domain.Article, error) {
	if len(fx.Users) == 0 {
		return nil, nil, fmt.Errorf("fixtures: at least one user is required")
	}

	seen := make(map[string]struct{}, len(fx.Users))
	users := make([]*domain.User, 0, len(fx.Users))
	for i, u := range fx.Users {
		if u.Username == "" {
			return nil, nil, fmt.Errorf("users[%d]: username is required", i)
		}
		if _, dup := seen[u.Username]; dup {
			return nil, nil, fmt.Errorf("users[%d]: duplicate username %q", i, u.Username)
		}
		seen[u.Username] = struct{}{}
		users = append(users, &domain.User{Username: u.Username})
	}

	articles := make([]*domain.Article, 0, len(fx.Articles))
	for i, a := range fx.Articles {
		if a.MinutesToRead <= 0 {
			return nil, nil, fmt.Errorf("articles[%d]: minutes_to_read must be positive", i)
		}
		articles = append(articles, domain.NewArticle(a.Author, a.Title, a.Content, a.MinutesToRead, a.IsMemberOnly))
	}
	return users, articles, nil
}

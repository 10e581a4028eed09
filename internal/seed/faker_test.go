package seed

import (
	"strings"
	"testing"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

func TestFakerSource_Defaults(t *testing.T) {
	users, articles, err := NewFakerSource(1, 0, 0).Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != DefaultUsers {
		t.Errorf("expected %d users, got %d", DefaultUsers, len(users))
	}
	if len(articles) != DefaultArticles {
		t.Errorf("expected %d articles, got %d", DefaultArticles, len(articles))
	}
}

func TestFakerSource_UniqueUsernames(t *testing.T) {
	users, _, _ := NewFakerSource(42, 200, 1).Generate()

	seen := make(map[string]bool)
	for _, u := range users {
		if u.Username == "" {
			t.Fatal("empty username generated")
		}
		if seen[u.Username] {
			t.Fatalf("duplicate username %q", u.Username)
		}
		seen[u.Username] = true
	}
}

func TestFakerSource_ArticleFields(t *testing.T) {
	_, articles, _ := NewFakerSource(42, 1, 300).Generate()

	memberOnly := 0
	for i, a := range articles {
		if a.Preview != domain.BuildPreview(a.Content) {
			t.Fatalf("article %d: preview %q does not match content", i, a.Preview)
		}
		if !strings.HasSuffix(a.Preview, "...") {
			t.Fatalf("article %d: preview lacks ellipsis", i)
		}
		if a.MinutesToRead < 1 || a.MinutesToRead > maxMinutesToRead {
			t.Fatalf("article %d: minutes_to_read %d out of range", i, a.MinutesToRead)
		}
		if a.Author == "" || a.Title == "" || a.Content == "" {
			t.Fatalf("article %d: empty field in %+v", i, a)
		}
		if a.IsMemberOnly {
			memberOnly++
		}
	}

	// one in three on average; leave a wide margin
	if memberOnly < 50 || memberOnly > 150 {
		t.Errorf("member-only share looks wrong: %d of 300", memberOnly)
	}
}

func TestFakerSource_DeterministicWithSeed(t *testing.T) {
	u1, a1, _ := NewFakerSource(99, 3, 3).Generate()
	u2, a2, _ := NewFakerSource(99, 3, 3).Generate()

	for i := range u1 {
		if u1[i].Username != u2[i].Username {
			t.Errorf("user %d differs: %q vs %q", i, u1[i].Username, u2[i].Username)
		}
	}
	for i := range a1 {
		if a1[i].Content != a2[i].Content {
			t.Errorf("article %d content differs", i)
		}
	}
}

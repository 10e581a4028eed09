package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}

	var doc struct {
		Swagger string                    `json:"swagger"`
		Info    map[string]any            `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.Info["title"] != "Paywall API" {
		t.Fatalf("unexpected header: %s %v", doc.Swagger, doc.Info)
	}

	routes := map[string][]string{
		"/clear":                      {"get", "delete"},
		"/articles":                   {"get"},
		"/articles/{id}":              {"get"},
		"/login":                      {"post"},
		"/logout":                     {"delete"},
		"/check_session":              {"get"},
		"/members_only_articles":      {"get"},
		"/members_only_articles/{id}": {"get"},
		"/health":                     {"get"},
		"/health/ready":               {"get"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			if _, ok := doc.Paths[path][m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}
}

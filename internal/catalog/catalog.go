// Package catalog holds the static library of configuration topics.
package catalog

import (
	"strings"

	"adminforge/internal/models"
)

// Topics returns the full catalog in its defined order. The returned slice
// is shared; callers must not modify it.
func Topics() []models.Topic {
	return topics
}

// ByID looks up a topic, returning nil when the id is unknown.
func ByID(id string) *models.Topic {
	for i := range topics {
		if topics[i].ID == id {
			return &topics[i]
		}
	}
	return nil
}

// Filter returns the topics whose title, description or category contains
// the query, case-insensitively. An empty query returns the whole catalog.
// Relative order is always the catalog order.
func Filter(query string) []models.Topic {
	if query == "" {
		return topics
	}

	q := strings.ToLower(query)
	var out []models.Topic
	for _, t := range topics {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}

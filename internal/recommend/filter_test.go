package recommend

import (
	"errors"
	"testing"

	"github.com/abhisek/leetcoach/internal/catalog"
)

var filterPool = []catalog.Question{
	{ID: "two-sum", Difficulty: catalog.Easy, Topics: []string{"Arrays", "Hash Table"}},
	{ID: "coin-change", Difficulty: catalog.Medium, Topics: []string{"DP"}},
	{ID: "word-ladder", Difficulty: catalog.Hard, Topics: []string{"Graphs", "BFS"}},
	{ID: "valid-anagram", Difficulty: catalog.Easy, Topics: []string{"Strings"}},
}

var filterCatalogTopics = map[string]bool{
	"Arrays": true, "Hash Table": true, "DP": true,
	"Graphs": true, "BFS": true, "Strings": true,
}

func TestFilterByTopics_IntersectionOnly(t *testing.T) {
	got, err := FilterByTopics(filterPool, []string{"Arrays", "DP"}, filterCatalogTopics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
	}
	want := map[string]bool{"two-sum": true, "coin-change": true}
	for _, q := range got {
		if !want[q.ID] {
			t.Errorf("unexpected candidate %q", q.ID)
		}
	}
}

func TestFilterByTopics_Completeness(t *testing.T) {
	topics := []string{"Graphs"}
	got, err := FilterByTopics(filterPool, topics, filterCatalogTopics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	included := make(map[string]bool)
	for _, q := range got {
		included[q.ID] = true
	}
	wanted := map[string]bool{"Graphs": true}
	for _, q := range filterPool {
		if q.HasAnyTopic(wanted) && !included[q.ID] {
			t.Errorf("question %q intersects but was excluded", q.ID)
		}
		if !q.HasAnyTopic(wanted) && included[q.ID] {
			t.Errorf("question %q does not intersect but was included", q.ID)
		}
	}
}

func TestFilterByTopics_UnknownTopicFails(t *testing.T) {
	_, err := FilterByTopics(filterPool, []string{"Arrays", "Dynamic Programing"}, filterCatalogTopics)

	var topicErr *ErrInvalidTopicReference
	if !errors.As(err, &topicErr) {
		t.Fatalf("expected ErrInvalidTopicReference, got %v", err)
	}
	if len(topicErr.Topics) != 1 || topicErr.Topics[0] != "Dynamic Programing" {
		t.Errorf("unexpected unknown topics: %v", topicErr.Topics)
	}
}

func TestFilterByTopics_NoMatchesIsEmptyNotError(t *testing.T) {
	got, err := FilterByTopics(filterPool, []string{"BFS"}, filterCatalogTopics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "word-ladder" {
		t.Fatalf("unexpected result: %v", got)
	}

	got, err = FilterByTopics(nil, []string{"BFS"}, filterCatalogTopics)
	if err != nil {
		t.Fatalf("unexpected error for empty pool: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for empty pool, got %v", got)
	}
}

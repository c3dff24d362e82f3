package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
)

const activityIndex = "activities"

// SearchService mirrors the activity log into Meilisearch so households can
// full-text search their training history. Indexing is always best effort.
type SearchService interface {
	IndexActivity(dogID, activityID uuid.UUID, name string, description *string) error
	SearchActivities(dogID uuid.UUID, query string, limit int) ([]map[string]interface{}, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"dog_id"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(activityIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update activities filterable attributes: %v", err)
	}
}

func (s *searchService) IndexActivity(dogID, activityID uuid.UUID, name string, description *string) error {
	doc := map[string]interface{}{
		"id":     activityID.String(),
		"dog_id": dogID.String(),
		"name":   name,
	}
	if description != nil {
		doc["description"] = *description
	}

	_, err := s.client.Index(activityIndex).AddDocuments([]map[string]interface{}{doc}, strPtr("id"))
	return err
}

func strPtr(s string) *string {
	return &s
}

func (s *searchService) SearchActivities(dogID uuid.UUID, query string, limit int) ([]map[string]interface{}, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	resp, err := s.client.Index(activityIndex).Search(query, &meilisearch.SearchRequest{
		Filter: fmt.Sprintf("dog_id = %q", dogID.String()),
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, err
	}

	hits := make([]map[string]interface{}, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		hits = append(hits, decodeHit(hit))
	}
	return hits, nil
}

// decodeHit unpacks one raw search hit into a plain document map. A field that
// fails to decode is dropped instead of failing the whole result.
func decodeHit(hit meilisearch.Hit) map[string]interface{} {
	doc := make(map[string]interface{}, len(hit))
	for field, raw := range hit {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		doc[field] = value
	}
	return doc
}

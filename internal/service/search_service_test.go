package service

import (
	"encoding/json"
	"testing"

	"github.com/meilisearch/meilisearch-go"
	"github.com/stretchr/testify/assert"
)

func TestDecodeHitUnpacksDocumentFields(t *testing.T) {
	hit := meilisearch.Hit{
		"id":          json.RawMessage(`"9f2c1b7a-0000-0000-0000-000000000001"`),
		"dog_id":      json.RawMessage(`"9f2c1b7a-0000-0000-0000-000000000002"`),
		"name":        json.RawMessage(`"Recall drill"`),
		"description": json.RawMessage(`"off-leash recall in the yard"`),
	}

	doc := decodeHit(hit)

	assert.Equal(t, "9f2c1b7a-0000-0000-0000-000000000001", doc["id"])
	assert.Equal(t, "Recall drill", doc["name"])
	assert.Equal(t, "off-leash recall in the yard", doc["description"])
	assert.Len(t, doc, 4)
}

func TestDecodeHitDropsUndecodableFields(t *testing.T) {
	hit := meilisearch.Hit{
		"name":   json.RawMessage(`"Sit practice"`),
		"broken": json.RawMessage(`{`),
	}

	doc := decodeHit(hit)

	assert.Equal(t, "Sit practice", doc["name"])
	_, found := doc["broken"]
	assert.False(t, found)
}

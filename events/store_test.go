package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToPublicEventPrefersIDField(t *testing.T) {
	event := toPublicEvent(eventDoc{DocID: primitive.NewObjectID(), ID: "abc", Title: "T"})
	assert.Equal(t, "abc", event.ID)
}

func TestToPublicEventSurfacesObjectIDAsString(t *testing.T) {
	oid := primitive.NewObjectID()
	event := toPublicEvent(eventDoc{DocID: oid, Title: "T"})
	assert.Equal(t, oid.Hex(), event.ID)
}

func TestToPublicEventStringDocID(t *testing.T) {
	event := toPublicEvent(eventDoc{DocID: "seeded-1", Title: "T"})
	assert.Equal(t, "seeded-1", event.ID)
}

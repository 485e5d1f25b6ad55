package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"easternempire/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore sorts ascending by the date string, matching the Mongo sort.
type fakeStore struct {
	events    []models.Event
	insertErr error
	listErr   error
	deleteErr error
}

func (f *fakeStore) Insert(_ context.Context, event models.Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]models.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]models.Event{}, f.events...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeStore) DeleteByID(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func postEvent(h *Handlers, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req, nil)
	return rec
}

func listEvents(t *testing.T, h *Handlers) []models.Event {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	h.GetEvents(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	return events
}

func TestCreateEvent(t *testing.T) {
	store := &fakeStore{}
	h := NewHandlers(store)

	rec := postEvent(h, `{"title":"Sydney Festival","venue":"Domain Theatre","address":"1 Art Gallery Road","date":"2026-08-15","time":"7:00 PM","description":"Fusion night","ticketUrl":"https://tickets.example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Sydney Festival", event.Title)
	require.NotNil(t, event.Description)
	assert.Equal(t, "Fusion night", *event.Description)
}

func TestCreateEventMissingFields(t *testing.T) {
	store := &fakeStore{}
	h := NewHandlers(store)

	rec := postEvent(h, `{"title":"No venue","address":"Somewhere","date":"2026-01-01","time":"7pm"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, store.events)
}

func TestCreateEventOptionalFieldsNull(t *testing.T) {
	h := NewHandlers(&fakeStore{})

	rec := postEvent(h, `{"title":"A","venue":"V","address":"Addr","date":"2026-01-01","time":"7pm"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "null", string(raw["description"]))
	assert.Equal(t, "null", string(raw["ticketUrl"]))
}

func TestEventsListedAscendingByDate(t *testing.T) {
	h := NewHandlers(&fakeStore{})

	rec := postEvent(h, `{"title":"A","venue":"V","address":"Addr","date":"2026-01-01","time":"7pm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postEvent(h, `{"title":"B","venue":"V","address":"Addr","date":"2025-06-01","time":"8pm"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	events := listEvents(t, h)
	require.Len(t, events, 2)
	assert.Equal(t, "B", events[0].Title)
	assert.Equal(t, "A", events[1].Title)
}

func TestDeleteEvent(t *testing.T) {
	h := NewHandlers(&fakeStore{})

	rec := postEvent(h, `{"title":"A","venue":"V","address":"Addr","date":"2026-01-01","time":"7pm"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))

	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+event.ID, nil)
	del := httptest.NewRecorder()
	h.DeleteEvent(del, req, httprouter.Params{{Key: "id", Value: event.ID}})
	require.Equal(t, http.StatusOK, del.Code)
	assert.Contains(t, del.Body.String(), "deleted")

	assert.Empty(t, listEvents(t, h))
}

func TestDeleteEventNotFound(t *testing.T) {
	h := NewHandlers(&fakeStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/events/nope", nil)
	rec := httptest.NewRecorder()
	h.DeleteEvent(rec, req, httprouter.Params{{Key: "id", Value: "nope"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

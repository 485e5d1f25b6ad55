package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"easternempire/models"
	"easternempire/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	store Store
}

func NewHandlers(store Store) *Handlers {
	return &Handlers{store: store}
}

// POST /api/events
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Title       string  `json:"title"`
		Venue       string  `json:"venue"`
		Address     string  `json:"address"`
		Date        string  `json:"date"`
		Time        string  `json:"time"`
		Description *string `json:"description"`
		TicketURL   *string `json:"ticketUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid input")
		return
	}
	if !utils.NonEmpty(input.Title, input.Venue, input.Address, input.Date, input.Time) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Missing required fields")
		return
	}

	event := models.Event{
		ID:          utils.GetUUID(),
		Title:       input.Title,
		Venue:       input.Venue,
		Address:     input.Address,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		TicketURL:   input.TicketURL,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Insert(ctx, event); err != nil {
		log.Printf("event insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save event")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}

// GET /api/events
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	events, err := h.store.List(ctx)
	if err != nil {
		log.Printf("event list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

// DELETE /api/events/:id
func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := h.store.DeleteByID(ctx, eventID)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		log.Printf("event delete failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Event deleted successfully"})
}

package bookings

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

// POST /api/bookings
func (h *Handlers) SubmitInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name          string  `json:"name"`
		Email         string  `json:"email"`
		Phone         string  `json:"phone"`
		EventType     string  `json:"eventType"`
		EventDate     string  `json:"eventDate"`
		Venue         string  `json:"venue"`
		GuestCount    *string `json:"guestCount"`
		Configuration *string `json:"configuration"`
		Message       *string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid input")
		return
	}
	if !utils.NonEmpty(input.Name, input.Email, input.Phone, input.EventType, input.EventDate, input.Venue) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Missing required fields")
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}

	inquiry := models.BookingInquiry{
		ID:            utils.GetUUID(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		EventType:     input.EventType,
		EventDate:     input.EventDate,
		Venue:         input.Venue,
		GuestCount:    input.GuestCount,
		Configuration: input.Configuration,
		Message:       input.Message,
		CreatedAt:     time.Now().UTC(),
		Status:        "pending",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Insert(ctx, inquiry); err != nil {
		log.Printf("booking insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, inquiry)
}

// GET /api/bookings
func (h *Handlers) ListInquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	inquiries, err := h.store.List(ctx)
	if err != nil {
		log.Printf("booking list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, inquiries)
}

// PATCH /api/bookings/:id/status
func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	status := r.URL.Query().Get("status")
	if status == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Missing status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := h.store.UpdateStatus(ctx, bookingID, status)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		log.Printf("booking status update failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking status updated successfully"})
}

package newsletter

import (
	"context"
	"encoding/json"
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

// POST /api/newsletter
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid input")
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.store.FindByEmail(ctx, input.Email)
	if err != nil {
		log.Printf("newsletter lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check subscription")
		return
	}
	if existing != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already subscribed")
		return
	}

	sub := models.NewsletterSubscription{
		ID:           utils.GetUUID(),
		Email:        input.Email,
		SubscribedAt: time.Now().UTC(),
	}
	if err := h.store.Insert(ctx, sub); err != nil {
		log.Printf("newsletter insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save subscription")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, sub)
}

// GET /api/newsletter
func (h *Handlers) ListSubscriptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	subs, err := h.store.List(ctx)
	if err != nil {
		log.Printf("newsletter list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, subs)
}

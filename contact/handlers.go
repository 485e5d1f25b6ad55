package contact

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

// POST /api/contact
func (h *Handlers) SubmitMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Subject   string `json:"subject"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid input")
		return
	}
	if !utils.NonEmpty(input.FirstName, input.LastName, input.Email, input.Subject, input.Message) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Missing required fields")
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}

	msg := models.ContactMessage{
		ID:        utils.GetUUID(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Insert(ctx, msg); err != nil {
		log.Printf("contact insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, msg)
}

// GET /api/contact
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	messages, err := h.store.List(ctx)
	if err != nil {
		log.Printf("contact list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, messages)
}

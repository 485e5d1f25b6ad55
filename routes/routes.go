package routes

import (
	"net/http"

	"easternempire/bookings"
	"easternempire/contact"
	"easternempire/events"
	"easternempire/newsletter"
	"easternempire/utils"

	"github.com/julienschmidt/httprouter"
)

func AddRootRoutes(router *httprouter.Router) {
	router.GET("/api/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Eastern Empire API"})
	})
}

func AddNewsletterRoutes(router *httprouter.Router, h *newsletter.Handlers) {
	router.POST("/api/newsletter", h.Subscribe)
	router.GET("/api/newsletter", h.ListSubscriptions)
}

func AddContactRoutes(router *httprouter.Router, h *contact.Handlers) {
	router.POST("/api/contact", h.SubmitMessage)
	router.GET("/api/contact", h.ListMessages)
}

func AddEventsRoutes(router *httprouter.Router, h *events.Handlers) {
	router.POST("/api/events", h.CreateEvent)
	router.GET("/api/events", h.GetEvents)
	router.DELETE("/api/events/:id", h.DeleteEvent)
}

func AddBookingRoutes(router *httprouter.Router, h *bookings.Handlers) {
	router.POST("/api/bookings", h.SubmitInquiry)
	router.GET("/api/bookings", h.ListInquiries)
	router.PATCH("/api/bookings/:id/status", h.UpdateStatus)
}

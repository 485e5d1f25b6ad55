package models

import "time"

// NewsletterSubscription is immutable once created; email is unique
// across the collection (case-sensitive, as stored).
type NewsletterSubscription struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribed_at"`
}

type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Event dates are plain strings; listing sorts them lexicographically,
// so chronological order relies on callers supplying YYYY-MM-DD.
type Event struct {
	ID          string    `json:"id" bson:"id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Venue       string    `json:"venue" bson:"venue"`
	Address     string    `json:"address" bson:"address"`
	Date        string    `json:"date" bson:"date"`
	Time        string    `json:"time" bson:"time"`
	Description *string   `json:"description" bson:"description,omitempty"`
	TicketURL   *string   `json:"ticketUrl" bson:"ticketUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// BookingInquiry.Status is the only field mutable after creation. It is
// free-form; no enumeration is enforced.
type BookingInquiry struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	EventType     string    `json:"eventType" bson:"eventType"`
	EventDate     string    `json:"eventDate" bson:"eventDate"`
	Venue         string    `json:"venue" bson:"venue"`
	GuestCount    *string   `json:"guestCount" bson:"guestCount,omitempty"`
	Configuration *string   `json:"configuration" bson:"configuration,omitempty"`
	Message       *string   `json:"message" bson:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	Status        string    `json:"status" bson:"status"`
}

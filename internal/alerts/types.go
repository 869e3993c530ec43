package alerts

import "time"

// Task type constants
const (
	TaskCheckoutReceipt        = "email:checkout_receipt"
	TaskCollaboratorWelcome    = "email:collaborator_welcome"
	TaskFriendInvite           = "email:friend_invite"
	TaskBusinessRecommendation = "email:business_recommendation"
)

// Common envelope for email-like notifications
type EmailEnvelope struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Checkout receipt payload
type CheckoutReceiptPayload struct {
	SessionID string        `json:"session_id"`
	Email     string        `json:"email"`
	ItemCount int           `json:"item_count"`
	Subtotal  string        `json:"subtotal"`
	Total     string        `json:"total"`
	Envelope  EmailEnvelope `json:"envelope"`
	SentAt    time.Time     `json:"sent_at"`
}

// Collaborator welcome payload
type CollaboratorWelcomePayload struct {
	SessionID    string        `json:"session_id"`
	BusinessName string        `json:"business_name"`
	Email        string        `json:"email"`
	Envelope     EmailEnvelope `json:"envelope"`
	SentAt       time.Time     `json:"sent_at"`
}

// Friend invite payload
type FriendInvitePayload struct {
	SessionID string        `json:"session_id"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Envelope  EmailEnvelope `json:"envelope"`
	SentAt    time.Time     `json:"sent_at"`
}

// Business recommendation payload
type BusinessRecommendationPayload struct {
	SessionID    string        `json:"session_id"`
	BusinessName string        `json:"business_name"`
	Contact      string        `json:"contact"`
	Reason       string        `json:"reason"`
	Envelope     EmailEnvelope `json:"envelope"`
	SentAt       time.Time     `json:"sent_at"`
}

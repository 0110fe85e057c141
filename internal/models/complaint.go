package models

import "time"

// Complaint ticket statuses.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in-progress"
	ComplaintResolved   = "resolved"
	ComplaintClosed     = "closed"
)

// Complaint is a customer support ticket, optionally carrying a single
// staged file attachment. Response stays nil until an administrator
// answers.
type Complaint struct {
	ID             int       `json:"id"`
	SessionID      string    `json:"sessionId"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	CustomerPhone  string    `json:"customerPhone"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	OrderNumber    *string   `json:"orderNumber,omitempty"`
	Attachment     *string   `json:"attachment,omitempty"`
	AttachmentName *string   `json:"attachmentName,omitempty"`
	Status         string    `json:"status"`
	Response       *string   `json:"response,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ComplaintInput carries a complaint submission. Attachment fields are
// filled in by the route layer after staging the upload; the order
// number is free-form and not checked against actual orders.
type ComplaintInput struct {
	SessionID      string  `json:"-"`
	CustomerName   string  `form:"customerName" json:"customerName" validate:"required,min=2"`
	CustomerEmail  string  `form:"customerEmail" json:"customerEmail" validate:"required,email"`
	CustomerPhone  string  `form:"customerPhone" json:"customerPhone" validate:"required,min=10"`
	Subject        string  `form:"subject" json:"subject" validate:"required,min=5"`
	Description    string  `form:"description" json:"description" validate:"required,min=20"`
	OrderNumber    *string `form:"orderNumber" json:"orderNumber,omitempty"`
	Attachment     *string `json:"attachment,omitempty"`
	AttachmentName *string `json:"attachmentName,omitempty"`
}

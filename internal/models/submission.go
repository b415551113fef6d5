package models

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "Pending"
	SubmissionStatusCompleted SubmissionStatus = "Completed"
	SubmissionStatusNew       SubmissionStatus = "New"
	SubmissionStatusReplied   SubmissionStatus = "Replied"
	SubmissionStatusSent      SubmissionStatus = "Sent"
)

// Each submission variant has its own one-directional status flow. Anything
// outside these tables is an illegal transition.
var (
	ServiceRequestTransitions = map[SubmissionStatus][]SubmissionStatus{
		SubmissionStatusPending: {SubmissionStatusCompleted},
	}
	ContactMessageTransitions = map[SubmissionStatus][]SubmissionStatus{
		SubmissionStatusNew: {SubmissionStatusReplied},
	}
	BrochureRequestTransitions = map[SubmissionStatus][]SubmissionStatus{
		SubmissionStatusPending: {SubmissionStatusSent},
	}
)

// CanTransition reports whether the table allows moving from one status to
// another.
func CanTransition(table map[SubmissionStatus][]SubmissionStatus, from, to SubmissionStatus) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ServiceRequest struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone"`
	TypeNumber    string           `json:"type_number"`
	SerialNumber  string           `json:"serial_number"`
	Address       string           `json:"address"`
	Message       string           `json:"message"`
	Status        SubmissionStatus `json:"status"`
	RequestDate   time.Time        `json:"request_date"`
}

type ContactMessage struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	OrderType     string           `json:"order_type"`
	Message       string           `json:"message"`
	Status        SubmissionStatus `json:"status"`
	SentDate      time.Time        `json:"sent_date"`
}

type BrochureRequest struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	ProductPrice  float64          `json:"product_price"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone"`
	Status        SubmissionStatus `json:"status"`
	RequestDate   time.Time        `json:"request_date"`
}

type ServiceRequestForm struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	TypeNumber    string `json:"type_number"`
	SerialNumber  string `json:"serial_number"`
	Address       string `json:"address"`
	Message       string `json:"message"`
}

type ContactMessageForm struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	OrderType     string `json:"order_type"`
	Message       string `json:"message"`
}

type BrochureRequestForm struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductPrice  float64 `json:"product_price"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
}

type UpdateStatusRequest struct {
	Status SubmissionStatus `json:"status"`
}

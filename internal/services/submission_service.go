package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clefmusic-api/internal/db"
	"clefmusic-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SubmissionService owns the three visitor-submission ledgers: service
// requests, contact messages, and brochure requests. Appends are single-row
// inserts and status changes are single-row updates, so concurrent writers
// never clobber each other's records.
type SubmissionService struct {
	db     *db.DB
	logger zerolog.Logger
}

func NewSubmissionService(database *db.DB, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		db:     database,
		logger: logger,
	}
}

func (s *SubmissionService) CreateServiceRequest(form *models.ServiceRequestForm) (*models.ServiceRequest, error) {
	if form.CustomerName == "" || form.CustomerEmail == "" || form.Message == "" {
		return nil, errors.New("name, email, and message are required")
	}

	req := &models.ServiceRequest{
		ID:            uuid.NewString(),
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		CustomerPhone: form.CustomerPhone,
		TypeNumber:    form.TypeNumber,
		SerialNumber:  form.SerialNumber,
		Address:       form.Address,
		Message:       form.Message,
		Status:        models.SubmissionStatusPending,
		RequestDate:   time.Now().UTC(),
	}

	_, err := s.db.Exec(
		s.db.Rebind(`INSERT INTO service_requests
			(id, customer_name, customer_email, customer_phone, type_number, serial_number, address, message, status, request_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		req.ID, req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.TypeNumber, req.SerialNumber, req.Address, req.Message,
		string(req.Status), req.RequestDate,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating service request")
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	s.logger.Info().Str("request_id", req.ID).Str("email", req.CustomerEmail).Msg("Service request created")
	return req, nil
}

func (s *SubmissionService) ListServiceRequests() ([]models.ServiceRequest, error) {
	rows, err := s.db.Query(
		"SELECT id, customer_name, customer_email, customer_phone, type_number, serial_number, address, message, status, request_date FROM service_requests ORDER BY request_date, id",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing service requests")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	requests := []models.ServiceRequest{}
	for rows.Next() {
		var req models.ServiceRequest
		if err := rows.Scan(
			&req.ID, &req.CustomerName, &req.CustomerEmail, &req.CustomerPhone,
			&req.TypeNumber, &req.SerialNumber, &req.Address, &req.Message,
			&req.Status, &req.RequestDate,
		); err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *SubmissionService) GetServiceRequest(id string) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	err := s.db.QueryRow(
		s.db.Rebind("SELECT id, customer_name, customer_email, customer_phone, type_number, serial_number, address, message, status, request_date FROM service_requests WHERE id = ?"),
		id,
	).Scan(
		&req.ID, &req.CustomerName, &req.CustomerEmail, &req.CustomerPhone,
		&req.TypeNumber, &req.SerialNumber, &req.Address, &req.Message,
		&req.Status, &req.RequestDate,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &req, nil
}

func (s *SubmissionService) UpdateServiceRequestStatus(id string, status models.SubmissionStatus) (*models.ServiceRequest, error) {
	req, err := s.GetServiceRequest(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(models.ServiceRequestTransitions, req.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, status)
	}

	if _, err := s.db.Exec(
		s.db.Rebind("UPDATE service_requests SET status = ? WHERE id = ?"),
		string(status), id,
	); err != nil {
		s.logger.Error().Err(err).Str("request_id", id).Msg("Error updating service request status")
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	req.Status = status
	s.logger.Info().Str("request_id", id).Str("status", string(status)).Msg("Service request status updated")
	return req, nil
}

func (s *SubmissionService) CreateContactMessage(form *models.ContactMessageForm) (*models.ContactMessage, error) {
	if form.CustomerName == "" || form.CustomerEmail == "" || form.Message == "" {
		return nil, errors.New("name, email, and message are required")
	}

	msg := &models.ContactMessage{
		ID:            uuid.NewString(),
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		OrderType:     form.OrderType,
		Message:       form.Message,
		Status:        models.SubmissionStatusNew,
		SentDate:      time.Now().UTC(),
	}

	_, err := s.db.Exec(
		s.db.Rebind(`INSERT INTO contact_messages
			(id, customer_name, customer_email, order_type, message, status, sent_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
		msg.ID, msg.CustomerName, msg.CustomerEmail, msg.OrderType,
		msg.Message, string(msg.Status), msg.SentDate,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating contact message")
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	s.logger.Info().Str("message_id", msg.ID).Str("email", msg.CustomerEmail).Msg("Contact message created")
	return msg, nil
}

func (s *SubmissionService) ListContactMessages() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(
		"SELECT id, customer_name, customer_email, order_type, message, status, sent_date FROM contact_messages ORDER BY sent_date, id",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing contact messages")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(
			&msg.ID, &msg.CustomerName, &msg.CustomerEmail, &msg.OrderType,
			&msg.Message, &msg.Status, &msg.SentDate,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (s *SubmissionService) GetContactMessage(id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.db.QueryRow(
		s.db.Rebind("SELECT id, customer_name, customer_email, order_type, message, status, sent_date FROM contact_messages WHERE id = ?"),
		id,
	).Scan(
		&msg.ID, &msg.CustomerName, &msg.CustomerEmail, &msg.OrderType,
		&msg.Message, &msg.Status, &msg.SentDate,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &msg, nil
}

func (s *SubmissionService) UpdateContactMessageStatus(id string, status models.SubmissionStatus) (*models.ContactMessage, error) {
	msg, err := s.GetContactMessage(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(models.ContactMessageTransitions, msg.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, msg.Status, status)
	}

	if _, err := s.db.Exec(
		s.db.Rebind("UPDATE contact_messages SET status = ? WHERE id = ?"),
		string(status), id,
	); err != nil {
		s.logger.Error().Err(err).Str("message_id", id).Msg("Error updating contact message status")
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	msg.Status = status
	s.logger.Info().Str("message_id", id).Str("status", string(status)).Msg("Contact message status updated")
	return msg, nil
}

func (s *SubmissionService) CreateBrochureRequest(form *models.BrochureRequestForm) (*models.BrochureRequest, error) {
	if form.CustomerEmail == "" || form.ProductName == "" {
		return nil, errors.New("product and email are required")
	}

	req := &models.BrochureRequest{
		ID:            uuid.NewString(),
		ProductID:     form.ProductID,
		ProductName:   form.ProductName,
		ProductPrice:  form.ProductPrice,
		CustomerEmail: form.CustomerEmail,
		CustomerPhone: form.CustomerPhone,
		Status:        models.SubmissionStatusPending,
		RequestDate:   time.Now().UTC(),
	}

	_, err := s.db.Exec(
		s.db.Rebind(`INSERT INTO brochure_requests
			(id, product_id, product_name, product_price, customer_email, customer_phone, status, request_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		req.ID, req.ProductID, req.ProductName, req.ProductPrice,
		req.CustomerEmail, req.CustomerPhone, string(req.Status), req.RequestDate,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating brochure request")
		return nil, fmt.Errorf("failed to create brochure request: %w", err)
	}

	s.logger.Info().Str("request_id", req.ID).Str("product", req.ProductName).Msg("Brochure request created")
	return req, nil
}

func (s *SubmissionService) ListBrochureRequests() ([]models.BrochureRequest, error) {
	rows, err := s.db.Query(
		"SELECT id, product_id, product_name, product_price, customer_email, customer_phone, status, request_date FROM brochure_requests ORDER BY request_date, id",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing brochure requests")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	requests := []models.BrochureRequest{}
	for rows.Next() {
		var req models.BrochureRequest
		if err := rows.Scan(
			&req.ID, &req.ProductID, &req.ProductName, &req.ProductPrice,
			&req.CustomerEmail, &req.CustomerPhone, &req.Status, &req.RequestDate,
		); err != nil {
			return nil, fmt.Errorf("scan brochure request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *SubmissionService) GetBrochureRequest(id string) (*models.BrochureRequest, error) {
	var req models.BrochureRequest
	err := s.db.QueryRow(
		s.db.Rebind("SELECT id, product_id, product_name, product_price, customer_email, customer_phone, status, request_date FROM brochure_requests WHERE id = ?"),
		id,
	).Scan(
		&req.ID, &req.ProductID, &req.ProductName, &req.ProductPrice,
		&req.CustomerEmail, &req.CustomerPhone, &req.Status, &req.RequestDate,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &req, nil
}

func (s *SubmissionService) UpdateBrochureRequestStatus(id string, status models.SubmissionStatus) (*models.BrochureRequest, error) {
	req, err := s.GetBrochureRequest(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(models.BrochureRequestTransitions, req.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, status)
	}

	if _, err := s.db.Exec(
		s.db.Rebind("UPDATE brochure_requests SET status = ? WHERE id = ?"),
		string(status), id,
	); err != nil {
		s.logger.Error().Err(err).Str("request_id", id).Msg("Error updating brochure request status")
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	req.Status = status
	s.logger.Info().Str("request_id", id).Str("status", string(status)).Msg("Brochure request status updated")
	return req, nil
}

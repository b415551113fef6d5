package services

import (
	"fmt"
	"time"

	"clefmusic-api/internal/db"
	"clefmusic-api/internal/models"

	"github.com/rs/zerolog"
)

// DashboardService aggregates the identity store, the three ledgers, and the
// catalog into admin-facing counts and listings. Read-only.
type DashboardService struct {
	db     *db.DB
	logger zerolog.Logger
}

func NewDashboardService(database *db.DB, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		db:     database,
		logger: logger,
	}
}

func (s *DashboardService) Counts() (*models.DashboardCounts, error) {
	counts := &models.DashboardCounts{}

	if err := s.count("SELECT COUNT(*) FROM accounts", &counts.TotalAccounts); err != nil {
		return nil, err
	}
	if err := s.countWhere(
		"SELECT COUNT(*) FROM accounts WHERE status = ?",
		&counts.ActiveAccounts, string(models.AccountStatusActive),
	); err != nil {
		return nil, err
	}

	// "New this week" is the trailing 7 days in UTC.
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	if err := s.countWhere(
		"SELECT COUNT(*) FROM accounts WHERE join_date >= ?",
		&counts.NewAccountsThisWeek, weekAgo,
	); err != nil {
		return nil, err
	}

	ledgers := []struct {
		table   string
		initial models.SubmissionStatus
		out     *models.LedgerCounts
	}{
		{"service_requests", models.SubmissionStatusPending, &counts.ServiceRequests},
		{"contact_messages", models.SubmissionStatusNew, &counts.ContactMessages},
		{"brochure_requests", models.SubmissionStatusPending, &counts.BrochureRequests},
	}
	for _, l := range ledgers {
		if err := s.count("SELECT COUNT(*) FROM "+l.table, &l.out.Total); err != nil {
			return nil, err
		}
		if err := s.countWhere(
			"SELECT COUNT(*) FROM "+l.table+" WHERE status = ?",
			&l.out.Open, string(l.initial),
		); err != nil {
			return nil, err
		}
	}

	if err := s.count("SELECT COUNT(*) FROM products", &counts.TotalProducts); err != nil {
		return nil, err
	}
	if err := s.count("SELECT COUNT(*) FROM categories", &counts.TotalCategories); err != nil {
		return nil, err
	}

	return counts, nil
}

func (s *DashboardService) count(query string, dest *int) error {
	if err := s.db.QueryRow(query).Scan(dest); err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Error counting rows")
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}

func (s *DashboardService) countWhere(query string, dest *int, arg interface{}) error {
	if err := s.db.QueryRow(s.db.Rebind(query), arg).Scan(dest); err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Error counting rows")
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}

// RecentServiceRequests returns the first n ledger entries in insertion
// order.
func (s *DashboardService) RecentServiceRequests(n int) ([]models.ServiceRequest, error) {
	rows, err := s.db.Query(
		s.db.Rebind("SELECT id, customer_name, customer_email, customer_phone, type_number, serial_number, address, message, status, request_date FROM service_requests ORDER BY request_date, id LIMIT ?"),
		n,
	)
	if err != nil {
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

func (s *DashboardService) RecentContactMessages(n int) ([]models.ContactMessage, error) {
	rows, err := s.db.Query(
		s.db.Rebind("SELECT id, customer_name, customer_email, order_type, message, status, sent_date FROM contact_messages ORDER BY sent_date, id LIMIT ?"),
		n,
	)
	if err != nil {
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

func (s *DashboardService) RecentBrochureRequests(n int) ([]models.BrochureRequest, error) {
	rows, err := s.db.Query(
		s.db.Rebind("SELECT id, product_id, product_name, product_price, customer_email, customer_phone, status, request_date FROM brochure_requests ORDER BY request_date, id LIMIT ?"),
		n,
	)
	if err != nil {
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

// Summary bundles counts with the most recent entries of each ledger.
func (s *DashboardService) Summary(recentN int) (*models.DashboardSummary, error) {
	counts, err := s.Counts()
	if err != nil {
		return nil, err
	}

	serviceRequests, err := s.RecentServiceRequests(recentN)
	if err != nil {
		return nil, err
	}
	contactMessages, err := s.RecentContactMessages(recentN)
	if err != nil {
		return nil, err
	}
	brochureRequests, err := s.RecentBrochureRequests(recentN)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		Counts:                 counts,
		RecentServiceRequests:  serviceRequests,
		RecentContactMessages:  contactMessages,
		RecentBrochureRequests: brochureRequests,
	}, nil
}

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
	"golang.org/x/crypto/bcrypt"
)

// AccountService is the identity store. Email is the natural key; the
// reserved admin address is never allowed in.
type AccountService struct {
	db         *db.DB
	logger     zerolog.Logger
	adminEmail string
}

func NewAccountService(database *db.DB, logger zerolog.Logger, adminEmail string) *AccountService {
	return &AccountService{
		db:         database,
		logger:     logger,
		adminEmail: adminEmail,
	}
}

// IsAdmin derives the role: admin iff the email equals the reserved address.
func (s *AccountService) IsAdmin(email string) bool {
	return email == s.adminEmail
}

func (s *AccountService) Register(req *models.SignUpRequest) (*models.Account, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("first name, last name, email, and password are required")
	}

	if s.IsAdmin(req.Email) {
		return nil, ErrEmailReserved
	}

	var existingID string
	err := s.db.QueryRow(s.db.Rebind("SELECT id FROM accounts WHERE email = ?"), req.Email).Scan(&existingID)
	if err == nil {
		return nil, ErrEmailTaken
	} else if err != sql.ErrNoRows {
		s.logger.Error().Err(err).Msg("Error checking existing account")
		return nil, fmt.Errorf("database error: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		PasswordHash: string(hashedPassword),
		Status:       string(models.AccountStatusActive),
		JoinDate:     now,
		LastLogin:    now,
		LoginCount:   1,
	}

	_, err = s.db.Exec(
		s.db.Rebind(`INSERT INTO accounts
			(id, first_name, last_name, email, phone, address, city, country, password_hash, status, join_date, last_login, login_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		account.ID, account.FirstName, account.LastName, account.Email, account.Phone,
		account.Address, account.City, account.Country, account.PasswordHash,
		account.Status, account.JoinDate, account.LastLogin, account.LoginCount,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info().Str("account_id", account.ID).Str("email", account.Email).Msg("Account registered")
	return account, nil
}

// Authenticate checks credentials and, on success, updates the login
// bookkeeping: last login, Active status, incremented login count.
func (s *AccountService) Authenticate(email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.GetByEmail(email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("email", email).Msg("Failed authentication attempt")
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(
		s.db.Rebind("UPDATE accounts SET last_login = ?, status = ?, login_count = login_count + 1 WHERE id = ?"),
		now, string(models.AccountStatusActive), account.ID,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", account.ID).Msg("Error updating login bookkeeping")
		return nil, fmt.Errorf("failed to update login info: %w", err)
	}

	account.LastLogin = now
	account.Status = string(models.AccountStatusActive)
	account.LoginCount++

	s.logger.Info().Str("account_id", account.ID).Str("email", account.Email).Msg("Account authenticated")
	return account, nil
}

func (s *AccountService) GetByID(id string) (*models.Account, error) {
	return s.getBy("id", id)
}

func (s *AccountService) GetByEmail(email string) (*models.Account, error) {
	return s.getBy("email", email)
}

func (s *AccountService) getBy(column, value string) (*models.Account, error) {
	var account models.Account
	query := fmt.Sprintf(
		"SELECT id, first_name, last_name, email, phone, address, city, country, password_hash, status, join_date, last_login, login_count FROM accounts WHERE %s = ?",
		column,
	)
	err := s.db.QueryRow(s.db.Rebind(query), value).Scan(
		&account.ID, &account.FirstName, &account.LastName, &account.Email,
		&account.Phone, &account.Address, &account.City, &account.Country,
		&account.PasswordHash, &account.Status, &account.JoinDate,
		&account.LastLogin, &account.LoginCount,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str(column, value).Msg("Error fetching account")
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &account, nil
}

// List returns all accounts in signup order.
func (s *AccountService) List() ([]models.Account, error) {
	rows, err := s.db.Query(
		"SELECT id, first_name, last_name, email, phone, address, city, country, password_hash, status, join_date, last_login, login_count FROM accounts ORDER BY join_date, id",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing accounts")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.FirstName, &account.LastName, &account.Email,
			&account.Phone, &account.Address, &account.City, &account.Country,
			&account.PasswordHash, &account.Status, &account.JoinDate,
			&account.LastLogin, &account.LoginCount,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// UpdateProfile changes contact fields only. Email, password, and login
// bookkeeping are not editable here.
func (s *AccountService) UpdateProfile(id string, req *models.UpdateProfileRequest) (*models.Account, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, errors.New("first name and last name are required")
	}

	result, err := s.db.Exec(
		s.db.Rebind("UPDATE accounts SET first_name = ?, last_name = ?, phone = ?, address = ?, city = ?, country = ? WHERE id = ?"),
		req.FirstName, req.LastName, req.Phone, req.Address, req.City, req.Country, id,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", id).Msg("Error updating profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		if _, err := s.GetByID(id); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
	}

	s.logger.Info().Str("account_id", id).Msg("Profile updated")
	return s.GetByID(id)
}

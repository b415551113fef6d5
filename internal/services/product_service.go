package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"clefmusic-api/internal/db"
	"clefmusic-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductService manages the catalog. Categories are created lazily the
// first time a product references an unseen category name.
type ProductService struct {
	db     *db.DB
	logger zerolog.Logger
}

func NewProductService(database *db.DB, logger zerolog.Logger) *ProductService {
	return &ProductService{
		db:     database,
		logger: logger,
	}
}

// Slugify lowercases and replaces whitespace runs with hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// List returns all products newest first, with their categories.
func (s *ProductService) List() ([]models.Product, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, p.slug, p.description, p.price, p.stock_status, p.image_url, p.created_at, p.updated_at,
			c.id, c.name, c.slug
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC, p.id DESC`,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing products")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var c models.Category
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.StockStatus,
			&p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
			&c.ID, &c.Name, &c.Slug,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = &c
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ProductService) Get(id string) (*models.Product, error) {
	var p models.Product
	var c models.Category
	err := s.db.QueryRow(
		s.db.Rebind(`SELECT p.id, p.name, p.slug, p.description, p.price, p.stock_status, p.image_url, p.created_at, p.updated_at,
			c.id, c.name, c.slug
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?`),
		id,
	).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.StockStatus,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Slug,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	p.Category = &c
	return &p, nil
}

func (s *ProductService) Create(req *models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Category == "" {
		return nil, errors.New("name and category are required")
	}
	if req.Price <= 0 {
		return nil, errors.New("price must be greater than zero")
	}

	category, err := s.findOrCreateCategory(req.Category)
	if err != nil {
		return nil, err
	}

	status := models.StockStatus(req.Status)
	if status == "" {
		status = models.StockStatusInStock
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        Slugify(req.Name),
		Description: req.Description,
		Price:       req.Price,
		StockStatus: status,
		ImageURL:    req.Image,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = s.db.Exec(
		s.db.Rebind(`INSERT INTO products
			(id, name, slug, description, price, stock_status, image_url, category_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		product.ID, product.Name, product.Slug, product.Description,
		product.Price, string(product.StockStatus), product.ImageURL,
		category.ID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Str("category", category.Name).Msg("Product created")
	return product, nil
}

func (s *ProductService) findOrCreateCategory(name string) (*models.Category, error) {
	var category models.Category
	err := s.db.QueryRow(
		s.db.Rebind("SELECT id, name, slug FROM categories WHERE name = ?"),
		name,
	).Scan(&category.ID, &category.Name, &category.Slug)
	if err == nil {
		return &category, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("database error: %w", err)
	}

	category = models.Category{
		ID:   uuid.NewString(),
		Name: name,
		Slug: Slugify(name),
	}
	if _, err := s.db.Exec(
		s.db.Rebind("INSERT INTO categories (id, name, slug) VALUES (?, ?, ?)"),
		category.ID, category.Name, category.Slug,
	); err != nil {
		s.logger.Error().Err(err).Str("category", name).Msg("Error creating category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
	return &category, nil
}

func (s *ProductService) Update(id string, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
		product.Slug = Slugify(req.Name)
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Status != "" {
		product.StockStatus = models.StockStatus(req.Status)
	}
	product.UpdatedAt = time.Now().UTC()

	if _, err := s.db.Exec(
		s.db.Rebind("UPDATE products SET name = ?, slug = ?, description = ?, price = ?, stock_status = ?, updated_at = ? WHERE id = ?"),
		product.Name, product.Slug, product.Description, product.Price,
		string(product.StockStatus), product.UpdatedAt, id,
	); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("Error updating product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("Product updated")
	return product, nil
}

func (s *ProductService) Delete(id string) error {
	result, err := s.db.Exec(s.db.Rebind("DELETE FROM products WHERE id = ?"), id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("Error deleting product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("Product deleted")
	return nil
}

package services

import (
	"fmt"
	"os"

	"clefmusic-api/internal/models"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type seedProduct struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Price       float64 `yaml:"price"`
	Status      string  `yaml:"status"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
}

type seedCatalog struct {
	Products []seedProduct `yaml:"products"`
}

// SeedCatalog loads the YAML catalog file into an empty product store.
// Categories are created lazily by the product service. A non-empty store is
// left untouched.
func SeedCatalog(products *ProductService, path string, logger zerolog.Logger) error {
	existing, err := products.List()
	if err != nil {
		return fmt.Errorf("check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog seed: %w", err)
	}

	var catalog seedCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("parse catalog seed: %w", err)
	}

	for _, p := range catalog.Products {
		_, err := products.Create(&models.CreateProductRequest{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Status:      p.Status,
			Category:    p.Category,
			Image:       p.Image,
		})
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	logger.Info().Int("products", len(catalog.Products)).Str("file", path).Msg("Catalog seeded")
	return nil
}

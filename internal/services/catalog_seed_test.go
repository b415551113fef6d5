package services

import (
	"os"
	"path/filepath"
	"testing"

	"clefmusic-api/internal/models"
)

const seedYAML = `products:
  - name: Electric Guitar
    category: Musical Instruments
    price: 899
    status: In Stock
    description: Professional electric guitar with premium pickups
  - name: PA Speaker
    category: Sound Systems
    price: 599
    status: In Stock
    description: Professional PA speaker system
`

func writeSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(seedYAML), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedCatalog(t *testing.T) {
	svc := newProductService(t)
	path := writeSeedFile(t)

	if err := SeedCatalog(svc, path, testLogger()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	products, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 seeded products, got %d", len(products))
	}
	for _, p := range products {
		if p.Category == nil || p.Category.Slug == "" {
			t.Fatalf("expected category with slug on %s", p.Name)
		}
	}
}

func TestSeedCatalogSkipsNonEmptyStore(t *testing.T) {
	svc := newProductService(t)
	path := writeSeedFile(t)

	if _, err := svc.Create(&models.CreateProductRequest{Name: "Tuner", Price: 29.99, Category: "Accessories"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := SeedCatalog(svc, path, testLogger()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	products, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected seeding to be skipped, got %d products", len(products))
	}
}

func TestSeedCatalogMissingFile(t *testing.T) {
	svc := newProductService(t)

	if err := SeedCatalog(svc, filepath.Join(t.TempDir(), "missing.yaml"), testLogger()); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

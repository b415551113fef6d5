package handlers

import (
	"encoding/json"
	"net/http"

	"clefmusic-api/internal/models"
	"clefmusic-api/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ProductHandler serves the catalog endpoints. Failures here use the flat
// {"error": "..."} payload with a 500 status, which is the contract the
// storefront client expects.
type ProductHandler struct {
	products *services.ProductService
	logger   zerolog.Logger
}

func NewProductHandler(products *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		h.logger.Error().Err(err).Msg("Listing products failed")
		h.respondError(w, "Failed to fetch products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, "Failed to fetch product")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "Failed to create product")
		return
	}

	product, err := h.products.Create(&req)
	if err != nil {
		h.logger.Error().Err(err).Msg("Creating product failed")
		h.respondError(w, "Failed to create product")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "Failed to update product")
		return
	}

	product, err := h.products.Update(mux.Vars(r)["id"], &req)
	if err != nil {
		h.logger.Error().Err(err).Msg("Updating product failed")
		h.respondError(w, "Failed to update product")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(mux.Vars(r)["id"]); err != nil {
		h.logger.Error().Err(err).Msg("Deleting product failed")
		h.respondError(w, "Failed to delete product")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (h *ProductHandler) respondError(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eon-online/eon-server/internal/catalog"
	"github.com/eon-online/eon-server/internal/domain"
)

type ListItemsResponse struct {
	Items []domain.ItemDefinition `json:"items"`
}

// HandleListItems returns every item definition in the catalog
// @Summary List item definitions
// @Description Returns the full item catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} ListItemsResponse
// @Router /items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ListItemsResponse{Items: svc.List()})
	}
}

// HandleGetItem returns a single item definition
// @Summary Get item definition
// @Description Returns one item definition by ID
// @Tags catalog
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} domain.ItemDefinition
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		def, err := svc.Lookup(itemID)
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, def)
	}
}

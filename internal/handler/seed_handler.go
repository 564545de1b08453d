package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/errors"
	"pulse/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seedService service.SeedService
	catalogURL  string
}

// NewSeedHandler creates a new seed handler. An empty catalogURL seeds the built-in catalog.
func NewSeedHandler(seedService service.SeedService, catalogURL string) *SeedHandler {
	return &SeedHandler{seedService: seedService, catalogURL: catalogURL}
}

// SeedCatalogResponse represents the seed response.
type SeedCatalogResponse struct {
	Message string             `json:"message"`
	Result  service.SeedResult `json:"result"`
}

// SeedCatalog godoc
// @Summary Seed the course catalog
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedCatalogResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/catalog [post]
func (h *SeedHandler) SeedCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	seed := service.DefaultCatalog()
	if h.catalogURL != "" {
		fetched, err := h.seedService.FetchCatalog(ctx, h.catalogURL)
		if err != nil {
			log.Printf("[SEED] %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to fetch catalog",
				Code:  "SEED_FETCH_FAILED",
			})
		}
		seed = fetched
	}

	res, err := h.seedService.SeedCatalog(ctx, seed)
	if err != nil {
		log.Printf("[SEED] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to seed catalog",
			Code:  "SEED_FAILED",
		})
	}

	return c.JSON(http.StatusOK, SeedCatalogResponse{
		Message: "Catalog seeded successfully",
		Result:  *res,
	})
}

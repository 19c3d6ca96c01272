package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// CatalogHandler serves the public insurance-type catalog and the service
// banner.
type CatalogHandler struct {
	catalog ports.CatalogRepository
}

func NewCatalogHandler(catalog ports.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type insuranceTypesResponse struct {
	InsuranceTypes []domain.InsuranceType `json:"insurance_types"`
}

type bannerResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Banner answers GET / with a short service description.
func (h *CatalogHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, bannerResponse{
		Message: "Strahovochka insurance API",
		Version: "1.0",
		Endpoints: []string{
			"/api/login",
			"/api/register",
			"/api/insurance-types",
		},
	})
}

// InsuranceTypes lists the catalog.
//
// @Summary      List insurance types
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  insuranceTypesResponse
// @Router       /api/insurance-types [get]
func (h *CatalogHandler) InsuranceTypes(c echo.Context) error {
	types, err := h.catalog.ListInsuranceTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insuranceTypesResponse{InsuranceTypes: types})
}

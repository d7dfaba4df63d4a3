package handlers

import (
	"net/http"

	"bidright/internal/adapter/http/dto/response"
	"bidright/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewCatalogHandler(uc usecase.IEstimateUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetCatalog godoc
// @Summary      Rate catalog
// @Description  Industries, project types, features, complexity tiers and locations.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /v1/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog()))
}

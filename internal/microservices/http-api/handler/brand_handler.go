package handler

import (
	"net/http"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandService service.BrandService
}

func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

func (h *BrandHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	brands := router.Group("/brands")
	{
		brands.GET("", h.List)
		brands.GET("/:id", h.Get)

		own := brands.Group("/profile", requireAuth, middleware.RequireRole(models.RoleBrand))
		own.GET("", h.GetOwnProfile)
		own.PUT("", h.UpsertProfile)
	}
}

// GET /brands?category=&minRating=&search=&page=&limit=
func (h *BrandHandler) List(c *gin.Context) {
	var q dto.BrandListQuery
	if !bindQuery(c, &q) {
		return
	}

	brands, total, err := h.brandService.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	setTotal(c, total)
	c.JSON(http.StatusOK, brands)
}

// GET /brands/:id
func (h *BrandHandler) Get(c *gin.Context) {
	profile, err := h.brandService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /brands/profile
func (h *BrandHandler) GetOwnProfile(c *gin.Context) {
	profile, err := h.brandService.GetByUser(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /brands/profile
func (h *BrandHandler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertBrandProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.brandService.UpsertProfile(c.Request.Context(), middleware.UserIDFrom(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

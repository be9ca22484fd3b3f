package handler

import (
	"net/http"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	creatorService service.CreatorService
}

func NewCreatorHandler(creatorService service.CreatorService) *CreatorHandler {
	return &CreatorHandler{creatorService: creatorService}
}

// RegisterRoutes registers creator directory routes
func (h *CreatorHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	creators := router.Group("/creators")
	{
		// Public
		creators.GET("", h.List)
		creators.GET("/:id", h.Get)

		// Own profile, creators only
		own := creators.Group("/profile", requireAuth, middleware.RequireRole(models.RoleCreator))
		own.GET("", h.GetOwnProfile)
		own.PUT("", h.UpsertProfile)
	}
}

// List returns one page of creators. The unpaginated total goes in X-Total-Count.
// GET /creators?niche=&minFollowers=&minEngagement=&minRating=&search=&page=&limit=
func (h *CreatorHandler) List(c *gin.Context) {
	var q dto.CreatorListQuery
	if !bindQuery(c, &q) {
		return
	}

	creators, total, err := h.creatorService.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	setTotal(c, total)
	c.JSON(http.StatusOK, creators)
}

// GET /creators/:id
func (h *CreatorHandler) Get(c *gin.Context) {
	profile, err := h.creatorService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /creators/profile
func (h *CreatorHandler) GetOwnProfile(c *gin.Context) {
	profile, err := h.creatorService.GetByUser(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates the caller's profile on first use and patches it afterwards.
// PUT /creators/profile
func (h *CreatorHandler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertCreatorProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.creatorService.UpsertProfile(c.Request.Context(), middleware.UserIDFrom(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

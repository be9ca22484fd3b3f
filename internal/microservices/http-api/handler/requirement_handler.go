package handler

import (
	"net/http"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RequirementHandler struct {
	requirementService service.RequirementService
}

func NewRequirementHandler(requirementService service.RequirementService) *RequirementHandler {
	return &RequirementHandler{requirementService: requirementService}
}

// RegisterRoutes registers requirement routes. Reads are public, mutations need a brand token;
// ownership is checked by the service.
func (h *RequirementHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	requirements := router.Group("/requirements")
	{
		requirements.GET("", h.List)
		requirements.GET("/:id", h.Get)

		brandOnly := []gin.HandlerFunc{requireAuth, middleware.RequireRole(models.RoleBrand)}
		requirements.POST("", append(brandOnly, h.Create)...)
		requirements.PUT("/:id", append(brandOnly, h.Update)...)
		requirements.DELETE("/:id", append(brandOnly, h.Delete)...)
	}
}

// GET /requirements?niche=&minFollowers=&status=&brandId=&page=&limit=
func (h *RequirementHandler) List(c *gin.Context) {
	var q dto.RequirementListQuery
	if !bindQuery(c, &q) {
		return
	}

	requirements, total, err := h.requirementService.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	setTotal(c, total)
	c.JSON(http.StatusOK, requirements)
}

// GET /requirements/:id
func (h *RequirementHandler) Get(c *gin.Context) {
	req, err := h.requirementService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /requirements
func (h *RequirementHandler) Create(c *gin.Context) {
	var body dto.CreateRequirementRequest
	if !bindJSON(c, &body) {
		return
	}

	req, err := h.requirementService.Create(c.Request.Context(), middleware.UserIDFrom(c), body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// PUT /requirements/:id
func (h *RequirementHandler) Update(c *gin.Context) {
	var patch dto.UpdateRequirementRequest
	if !bindJSON(c, &patch) {
		return
	}

	req, err := h.requirementService.Update(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// DELETE /requirements/:id
func (h *RequirementHandler) Delete(c *gin.Context) {
	if err := h.requirementService.Delete(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

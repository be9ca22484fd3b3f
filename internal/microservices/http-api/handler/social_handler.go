package handler

import (
	"errors"
	"net/http"

	"creatorhub/internal/social"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	fetcher social.Fetcher
}

func NewSocialHandler(fetcher social.Fetcher) *SocialHandler {
	return &SocialHandler{fetcher: fetcher}
}

func (h *SocialHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/social/:platform/:handle", h.GetMetrics)
}

// GetMetrics looks up audience metrics for a handle.
// GET /social/:platform/:handle
func (h *SocialHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.fetcher.Fetch(c.Request.Context(), c.Param("platform"), c.Param("handle"))
	switch {
	case errors.Is(err, social.ErrUnsupportedPlatform), errors.Is(err, social.ErrEmptyHandle):
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	case err != nil:
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

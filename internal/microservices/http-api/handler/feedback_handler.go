package handler

import (
	"net/http"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// RegisterRoutes registers rating and review routes
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	feedback := router.Group("/feedback")
	{
		feedback.POST("/ratings", requireAuth, h.Rate)
		feedback.GET("/ratings/:userId", h.GetRatingSummary)

		feedback.POST("/reviews", requireAuth, h.Review)
		feedback.GET("/reviews/:userId", h.ListReviews)
	}
}

// Rate creates or replaces the caller's rating of another user.
// POST /feedback/ratings
func (h *FeedbackHandler) Rate(c *gin.Context) {
	var req dto.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.feedbackService.UpsertRating(c.Request.Context(), middleware.UserIDFrom(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// GET /feedback/ratings/:userId
func (h *FeedbackHandler) GetRatingSummary(c *gin.Context) {
	summary, err := h.feedbackService.GetAggregateForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// POST /feedback/reviews
func (h *FeedbackHandler) Review(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.feedbackService.CreateReview(c.Request.Context(), middleware.UserIDFrom(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(*review))
}

// ListReviews returns reviews about a user, oldest first.
// GET /feedback/reviews/:userId
func (h *FeedbackHandler) ListReviews(c *gin.Context) {
	reviews, err := h.feedbackService.ListReviewsForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.FromModelToReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

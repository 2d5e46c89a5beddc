package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/dto"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/middleware"
	"github.com/skillboard/skillboard-api/internal/services"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.Create(userID, services.CreateReviewInput{
		EmployeeID: req.EmployeeID,
		TaskID:     req.TaskID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidRating):
			errors.BadRequest(c, err.Error())
		case stderrors.Is(err, services.ErrEmployeeNotFound),
			stderrors.Is(err, services.ErrTaskNotFound):
			errors.NotFound(c, err.Error())
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

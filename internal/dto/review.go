package dto

import (
	"time"

	"github.com/skillboard/skillboard-api/internal/models"
)

// CreateReviewRequest represents the payload for reviewing an employee's work
// on a task.
type CreateReviewRequest struct {
	EmployeeID uint64 `json:"employee_id" binding:"required"`
	TaskID     uint64 `json:"task_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID         uint64    `json:"id"`
	EmployeeID uint64    `json:"employee_id"`
	TaskID     uint64    `json:"task_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToReviewResponse converts a Review model to a ReviewResponse.
func ToReviewResponse(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		EmployeeID: review.EmployeeID,
		TaskID:     review.TaskID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

// ToReviewResponses converts a slice of reviews.
func ToReviewResponses(reviews []models.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses
}

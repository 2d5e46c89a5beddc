package services

import (
	"errors"
	"fmt"

	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// ReviewService handles peer review creation and listing. Reviews are
// append-only; there is no update or delete.
type ReviewService struct {
	reviewRepo   repository.ReviewRepository
	employeeRepo repository.EmployeeRepository
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	employeeRepo repository.EmployeeRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
	}
}

// CreateReviewInput represents input for creating a review.
type CreateReviewInput struct {
	EmployeeID uint64
	TaskID     uint64
	Rating     int
	Comment    string
}

// Create validates the rating and both ownership chains (the reviewed
// employee directly, the task through its project) before appending the
// review.
func (s *ReviewService) Create(userID uint64, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	employee, err := s.employeeRepo.FindByID(input.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee.UserID != userID {
		return nil, ErrEmployeeNotFound
	}

	task, err := s.taskRepo.FindByID(input.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project.UserID != userID {
		return nil, ErrTaskNotFound
	}

	review := &models.Review{
		EmployeeID: input.EmployeeID,
		TaskID:     input.TaskID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

package repository

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"gorm.io/gorm"
)

// GormReviewRepository is a GORM implementation of ReviewRepository
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create appends a review
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// ListByEmployee returns a page of an employee's reviews, newest first
func (r *GormReviewRepository) ListByEmployee(employeeID uint64, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountByEmployee counts an employee's reviews
func (r *GormReviewRepository) CountByEmployee(employeeID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count, err
}

// LatestByTask returns, per task, the most recent review the employee
// received for it
func (r *GormReviewRepository) LatestByTask(employeeID uint64) (map[uint64]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Where("employee_id = ?", employeeID).
		Where(`id IN (
			SELECT MAX(id) FROM reviews WHERE employee_id = ? GROUP BY task_id
		)`, employeeID).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	byTask := make(map[uint64]models.Review, len(reviews))
	for _, review := range reviews {
		byTask[review.TaskID] = review
	}
	return byTask, nil
}

package repository

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// List returns the whole skill catalog
func (r *GormSkillRepository) List() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("id").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// FindByName finds a skill by its unique name
func (r *GormSkillRepository) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByNames finds all skills among the given names. Unknown names are
// silently absent from the result.
func (r *GormSkillRepository) FindByNames(names []string) ([]models.Skill, error) {
	if len(names) == 0 {
		return []models.Skill{}, nil
	}
	var skills []models.Skill
	if err := r.db.Where("name IN ?", names).Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

package database

import (
	"fmt"
	"log"

	"github.com/skillboard/skillboard-api/internal/models"
	"gorm.io/gorm"
)

// SkillNames is the canonical skill catalog. Employee role associations and
// task templates reference skills by these names.
var SkillNames = []string{
	"Frontend Dev",
	"UI Design",
	"Design",
	"Feature",
	"Backend API",
	"Security Review",
	"Database Setup",
	"Testing",
	"Planning",
	"Data Analysis",
	"Supervising",
}

type templateSeed struct {
	skillName          string
	estimatedHours     float64
	deadlineOffsetDays int
}

var taskTemplateSeeds = map[string][]templateSeed{
	"Web App": {
		{"Design", 10, 7},
		{"Frontend Dev", 20, 14},
		{"Backend API", 25, 21},
		{"Database Setup", 6, 10},
		{"Testing", 8, 28},
	},
	"Mobile App": {
		{"UI Design", 12, 7},
		{"Frontend Dev", 22, 21},
		{"Backend API", 18, 21},
		{"Testing", 8, 28},
	},
	"Data Platform": {
		{"Planning", 4, 3},
		{"Database Setup", 10, 7},
		{"Data Analysis", 20, 21},
		{"Backend API", 15, 21},
		{"Testing", 6, 28},
	},
}

// Seed inserts the skill catalog and the project-type task templates.
// Idempotent: existing rows are left alone.
func Seed(db *gorm.DB) error {
	log.Println("Seeding reference data...")

	skillsByName := make(map[string]uint64, len(SkillNames))
	for _, name := range SkillNames {
		var skill models.Skill
		if err := db.Where(models.Skill{Name: name}).FirstOrCreate(&skill).Error; err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", name, err)
		}
		skillsByName[name] = skill.ID
	}

	for projectType, seeds := range taskTemplateSeeds {
		for _, s := range seeds {
			skillID, ok := skillsByName[s.skillName]
			if !ok {
				return fmt.Errorf("task template for %q references unknown skill %q", projectType, s.skillName)
			}

			template := models.TaskTemplate{
				ProjectType:        projectType,
				SkillID:            skillID,
				EstimatedHours:     s.estimatedHours,
				DeadlineOffsetDays: s.deadlineOffsetDays,
			}
			err := db.Where(models.TaskTemplate{ProjectType: projectType, SkillID: skillID}).
				FirstOrCreate(&template).Error
			if err != nil {
				return fmt.Errorf("failed to seed task template for %q: %w", projectType, err)
			}
		}
	}

	log.Println("Seeding completed")
	return nil
}

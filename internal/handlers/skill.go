package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/repository"
)

// SkillHandler handles the skill catalog endpoint.
type SkillHandler struct {
	skillRepo repository.SkillRepository
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillRepo repository.SkillRepository) *SkillHandler {
	return &SkillHandler{skillRepo: skillRepo}
}

// List handles GET /skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillRepo.List()
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, skills)
}

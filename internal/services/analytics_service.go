package services

import (
	"fmt"
	"time"

	"github.com/skillboard/skillboard-api/internal/repository"
	"github.com/skillboard/skillboard-api/internal/workload"
)

// nearDueWindow is how far ahead the project stats look for approaching
// deadlines.
const nearDueWindow = 7 * 24 * time.Hour

// AnalyticsService derives the aggregate figures served by the stats
// endpoints. Nothing is cached; every call recomputes from the store.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// Summary is the headline dashboard block.
type Summary struct {
	TotalProjects  int64                   `json:"total_projects"`
	TotalTasks     int64                   `json:"total_tasks"`
	CompletedTasks int64                   `json:"completed_tasks"`
	Benched        int                     `json:"benched"`
	Active         int                     `json:"active"`
	Available      int                     `json:"available"`
	Overloaded     int                     `json:"overloaded"`
	Workload       []repository.SkillHours `json:"workload"`
}

// Summary assembles the headline figures: project and task totals, the bench
// and availability splits, and the per-skill workload distribution.
func (s *AnalyticsService) Summary(userID uint64) (*Summary, error) {
	totalProjects, err := s.analyticsRepo.TotalProjects(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	totalTasks, completedTasks, err := s.analyticsRepo.TaskCounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	rows, err := s.analyticsRepo.LoadRows(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	benched, active := workload.BenchSplit(rows)
	available, overloaded := workload.AvailabilitySplit(rows)

	distribution, err := s.analyticsRepo.WorkloadBySkill(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute workload distribution: %w", err)
	}

	return &Summary{
		TotalProjects:  totalProjects,
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		Benched:        benched,
		Active:         active,
		Available:      available,
		Overloaded:     overloaded,
		Workload:       distribution,
	}, nil
}

// BenchStats is the bench split on its own.
type BenchStats struct {
	Benched int `json:"benched"`
	Active  int `json:"active"`
}

// Bench reports benched vs active headcount.
func (s *AnalyticsService) Bench(userID uint64) (*BenchStats, error) {
	rows, err := s.analyticsRepo.LoadRows(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	benched, active := workload.BenchSplit(rows)
	return &BenchStats{Benched: benched, Active: active}, nil
}

// AvailabilityStats is the fixed-ceiling availability split.
type AvailabilityStats struct {
	Available int `json:"available"`
	Loaded    int `json:"loaded"`
}

// Availability reports the roster split by the absolute-hours rule.
func (s *AnalyticsService) Availability(userID uint64) (*AvailabilityStats, error) {
	rows, err := s.analyticsRepo.LoadRows(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	available, loaded := workload.HoursAvailabilitySplit(rows)
	return &AvailabilityStats{Available: available, Loaded: loaded}, nil
}

// ProjectStats is the project-level block: totals, deadlines approaching
// within a week, and the overall task count.
type ProjectStats struct {
	TotalProjects int64 `json:"total_projects"`
	NearDeadline  int64 `json:"near_deadline"`
	TotalTasks    int64 `json:"total_tasks"`
}

// ProjectStats counts projects, projects due within the next seven days, and
// tasks.
func (s *AnalyticsService) ProjectStats(userID uint64) (*ProjectStats, error) {
	total, err := s.analyticsRepo.TotalProjects(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	nearDue, err := s.analyticsRepo.ProjectsDueBefore(userID, time.Now().Add(nearDueWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count near-deadline projects: %w", err)
	}

	totalTasks, _, err := s.analyticsRepo.TaskCounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &ProjectStats{
		TotalProjects: total,
		NearDeadline:  nearDue,
		TotalTasks:    totalTasks,
	}, nil
}

// TaskCompletionStats is completed vs remaining across all projects.
type TaskCompletionStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Remaining int64 `json:"remaining"`
}

// TaskCompletion reports completed vs remaining task counts.
func (s *AnalyticsService) TaskCompletion(userID uint64) (*TaskCompletionStats, error) {
	total, completed, err := s.analyticsRepo.TaskCounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	return &TaskCompletionStats{
		Total:     total,
		Completed: completed,
		Remaining: total - completed,
	}, nil
}

// RoleStaffing reports, per role, headcount against employees carrying at
// least one assigned task.
func (s *AnalyticsService) RoleStaffing(userID uint64) ([]workload.RoleStaffing, error) {
	totals, err := s.analyticsRepo.RoleTotals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}

	working, err := s.analyticsRepo.RoleWorking(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count working roles: %w", err)
	}

	return workload.MergeRoleStaffing(totals, working), nil
}

// Dashboard is the chart block: per-project completion progress and the
// monthly project-creation trend.
type Dashboard struct {
	ProjectProgress []repository.ProjectProgressRow `json:"project_progress"`
	MonthlyProjects []workload.MonthCount           `json:"monthly_projects"`
}

// Dashboard assembles the chart data.
func (s *AnalyticsService) Dashboard(userID uint64) (*Dashboard, error) {
	progress, err := s.analyticsRepo.ProjectProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute project progress: %w", err)
	}

	starts, err := s.analyticsRepo.ProjectStartDates(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project start dates: %w", err)
	}

	return &Dashboard{
		ProjectProgress: progress,
		MonthlyProjects: workload.MonthlyBuckets(starts),
	}, nil
}

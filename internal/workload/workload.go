// Package workload holds the capacity and load rules: how much an employee is
// carrying, whether an assignment would push them over capacity, and the
// roster-level splits the analytics endpoints report.
//
// Three distinct thresholds are in play and they are intentionally not
// unified: OverCapacity (strict, assignment path), Overloaded (0.95 ratio,
// analytics availability split) and Available (fixed 35-hour ceiling, legacy
// quick stats). Each endpoint keeps the rule it has always used.
package workload

import (
	"math"
	"sort"
	"time"
)

const (
	// OverloadRatio is the load/capacity ratio at or above which an employee
	// counts as overloaded in the analytics availability split.
	OverloadRatio = 0.95

	// AvailableHoursCeiling is the absolute-hours rule used by the legacy
	// availability stats: below it an employee counts as available.
	AvailableHoursCeiling = 35.0
)

// LoadPercent reports load as a rounded percentage of capacity.
// Zero or negative capacity reports 0, never a division fault.
func LoadPercent(load, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(load / capacity * 100))
}

// OverCapacity is the strict rule: true only when load exceeds capacity.
func OverCapacity(load, capacity float64) bool {
	return load > capacity
}

// Overloaded is the ratio rule: load/capacity >= OverloadRatio.
// Employees without a positive capacity are never classified.
func Overloaded(load, capacity float64) bool {
	if capacity <= 0 {
		return false
	}
	return load/capacity >= OverloadRatio
}

// Available is the absolute-hours rule.
func Available(load float64) bool {
	return load < AvailableHoursCeiling
}

// Benched reports whether an employee carries zero incomplete-task hours.
func Benched(load float64) bool {
	return load == 0
}

// EmployeeLoad is one roster row: capacity and current load, where load is
// the sum of estimated hours over incomplete assigned tasks only.
type EmployeeLoad struct {
	EmployeeID uint64
	Capacity   float64
	Load       float64
}

// BenchSplit counts benched vs active employees. The two always sum to the
// roster size.
func BenchSplit(rows []EmployeeLoad) (benched, active int) {
	for _, r := range rows {
		if Benched(r.Load) {
			benched++
		} else {
			active++
		}
	}
	return benched, active
}

// AvailabilitySplit applies the ratio rule across a roster. Rows without a
// positive capacity are skipped, matching the analytics behavior.
func AvailabilitySplit(rows []EmployeeLoad) (available, overloaded int) {
	for _, r := range rows {
		if r.Capacity <= 0 {
			continue
		}
		if Overloaded(r.Load, r.Capacity) {
			overloaded++
		} else {
			available++
		}
	}
	return available, overloaded
}

// HoursAvailabilitySplit applies the fixed 35-hour rule across a roster.
func HoursAvailabilitySplit(rows []EmployeeLoad) (available, loaded int) {
	for _, r := range rows {
		if Available(r.Load) {
			available++
		} else {
			loaded++
		}
	}
	return available, loaded
}

// Candidate is one skill-matched employee evaluated against a task.
type Candidate struct {
	EmployeeID    uint64   `json:"employee_id"`
	Name          string   `json:"name"`
	WeeklyHours   float64  `json:"weekly_hours"`
	CurrentLoad   float64  `json:"current_load"`
	TentativeLoad float64  `json:"tentative_load"`
	OverCapacity  bool     `json:"over_capacity"`
	LoadPercent   int      `json:"load_percent"`
	AverageRating *float64 `json:"average_rating"`
}

// EvaluateCandidate computes the per-candidate figures for a task of
// taskHours. Capacity is advisory: OverCapacity flags the candidate but never
// excludes them from the result.
func EvaluateCandidate(id uint64, name string, capacity, current, taskHours float64, rating *float64) Candidate {
	tentative := current + taskHours
	return Candidate{
		EmployeeID:    id,
		Name:          name,
		WeeklyHours:   capacity,
		CurrentLoad:   current,
		TentativeLoad: tentative,
		OverCapacity:  OverCapacity(tentative, capacity),
		LoadPercent:   LoadPercent(current, capacity),
		AverageRating: rating,
	}
}

// SuggestBest picks a single suggestion from evaluated candidates:
// over-capacity candidates are excluded, the rest ordered by ascending
// tentative load, ties broken by descending rating with a missing rating
// treated as lowest. Returns nil when every candidate would go over.
func SuggestBest(candidates []Candidate) *Candidate {
	var best *Candidate
	for i := range candidates {
		c := &candidates[i]
		if c.OverCapacity {
			continue
		}
		if best == nil || betterCandidate(c, best) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}

func betterCandidate(a, b *Candidate) bool {
	if a.TentativeLoad != b.TentativeLoad {
		return a.TentativeLoad < b.TentativeLoad
	}
	return ratingValue(a.AverageRating) > ratingValue(b.AverageRating)
}

func ratingValue(r *float64) float64 {
	if r == nil {
		return -1
	}
	return *r
}

// RoleStaffing is role-level participation: headcount vs employees carrying
// at least one assigned task.
type RoleStaffing struct {
	Role    string `json:"role"`
	Total   int    `json:"total"`
	Working int    `json:"working"`
}

// MergeRoleStaffing combines per-role totals with per-role working counts
// into a deterministic, role-sorted list.
func MergeRoleStaffing(totals, working map[string]int) []RoleStaffing {
	stats := make([]RoleStaffing, 0, len(totals))
	for role, total := range totals {
		stats = append(stats, RoleStaffing{
			Role:    role,
			Total:   total,
			Working: working[role],
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Role < stats[j].Role })
	return stats
}

// MonthCount is one bucket of the project-creation trend.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MonthlyBuckets groups dates by calendar month, ascending.
func MonthlyBuckets(dates []time.Time) []MonthCount {
	counts := make(map[string]int, len(dates))
	for _, d := range dates {
		counts[d.Format("2006-01")]++
	}
	buckets := make([]MonthCount, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, MonthCount{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month < buckets[j].Month })
	return buckets
}

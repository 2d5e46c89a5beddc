package workload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestLoadPercent(t *testing.T) {
	assert.Equal(t, 88, LoadPercent(35, 40))
	assert.Equal(t, 100, LoadPercent(40, 40))
	assert.Equal(t, 113, LoadPercent(45, 40))
	assert.Equal(t, 0, LoadPercent(0, 40))
}

func TestLoadPercent_ZeroCapacity(t *testing.T) {
	assert.Equal(t, 0, LoadPercent(20, 0))
	assert.Equal(t, 0, LoadPercent(20, -1))
}

func TestOverCapacity_Strict(t *testing.T) {
	assert.False(t, OverCapacity(40, 40))
	assert.True(t, OverCapacity(40.5, 40))
	assert.False(t, OverCapacity(35, 40))
}

func TestOverloaded_RatioBoundary(t *testing.T) {
	// 35/40 = 0.875, below the 0.95 threshold
	assert.False(t, Overloaded(35, 40))
	// 38/40 = 0.95 exactly: classified overloaded
	assert.True(t, Overloaded(38, 40))
	assert.True(t, Overloaded(39, 40))
	// zero capacity is never classified
	assert.False(t, Overloaded(10, 0))
}

func TestStrictAndRatioRulesDisagree(t *testing.T) {
	// capacity 40, incomplete tasks of 15 and 20 hours
	load := 15.0 + 20.0
	assert.Equal(t, 35.0, load)
	assert.Equal(t, 88, LoadPercent(load, 40))
	assert.False(t, OverCapacity(load, 40))
	assert.False(t, Overloaded(load, 40))

	// at 38 hours the ratio rule flips while the strict rule does not
	assert.True(t, Overloaded(38, 40))
	assert.False(t, OverCapacity(38, 40))
}

func TestBenchSplit_SumsToRoster(t *testing.T) {
	rows := []EmployeeLoad{
		{EmployeeID: 1, Capacity: 40, Load: 0},
		{EmployeeID: 2, Capacity: 40, Load: 12},
		{EmployeeID: 3, Capacity: 20, Load: 0},
		{EmployeeID: 4, Capacity: 40, Load: 41},
	}
	benched, active := BenchSplit(rows)
	assert.Equal(t, 2, benched)
	assert.Equal(t, 2, active)
	assert.Equal(t, len(rows), benched+active)
}

func TestAvailabilitySplit_SkipsZeroCapacity(t *testing.T) {
	rows := []EmployeeLoad{
		{EmployeeID: 1, Capacity: 40, Load: 10}, // available
		{EmployeeID: 2, Capacity: 40, Load: 38}, // 0.95 exactly -> overloaded
		{EmployeeID: 3, Capacity: 0, Load: 10},  // skipped
	}
	available, overloaded := AvailabilitySplit(rows)
	assert.Equal(t, 1, available)
	assert.Equal(t, 1, overloaded)
}

func TestHoursAvailabilitySplit(t *testing.T) {
	rows := []EmployeeLoad{
		{EmployeeID: 1, Load: 34.5},
		{EmployeeID: 2, Load: 35},
		{EmployeeID: 3, Load: 50},
	}
	available, loaded := HoursAvailabilitySplit(rows)
	assert.Equal(t, 1, available)
	assert.Equal(t, 2, loaded)
}

func TestEvaluateCandidate(t *testing.T) {
	c := EvaluateCandidate(7, "Dana", 40, 30, 15, floatPtr(4.5))
	assert.Equal(t, 30.0, c.CurrentLoad)
	assert.Equal(t, 45.0, c.TentativeLoad)
	assert.True(t, c.OverCapacity)
	assert.Equal(t, 75, c.LoadPercent)
	assert.Equal(t, 4.5, *c.AverageRating)

	// tentative load equal to capacity is not over capacity
	c = EvaluateCandidate(8, "Eli", 40, 25, 15, nil)
	assert.False(t, c.OverCapacity)
	assert.Nil(t, c.AverageRating)
}

func TestEvaluateCandidate_ZeroCapacity(t *testing.T) {
	c := EvaluateCandidate(9, "Kim", 0, 0, 10, nil)
	assert.Equal(t, 0, c.LoadPercent)
	assert.True(t, c.OverCapacity)
}

func TestSuggestBest_ExcludesOverCapacity(t *testing.T) {
	candidates := []Candidate{
		EvaluateCandidate(1, "a", 40, 35, 10, floatPtr(5)), // over
		EvaluateCandidate(2, "b", 40, 20, 10, floatPtr(3)),
		EvaluateCandidate(3, "c", 40, 10, 10, nil),
	}
	best := SuggestBest(candidates)
	assert.NotNil(t, best)
	assert.Equal(t, uint64(3), best.EmployeeID)
}

func TestSuggestBest_TieBrokenByRating(t *testing.T) {
	candidates := []Candidate{
		EvaluateCandidate(1, "a", 40, 20, 5, nil),
		EvaluateCandidate(2, "b", 40, 20, 5, floatPtr(4.2)),
		EvaluateCandidate(3, "c", 40, 20, 5, floatPtr(3.1)),
	}
	best := SuggestBest(candidates)
	assert.Equal(t, uint64(2), best.EmployeeID)
}

func TestSuggestBest_AllOverCapacity(t *testing.T) {
	candidates := []Candidate{
		EvaluateCandidate(1, "a", 10, 10, 5, nil),
	}
	assert.Nil(t, SuggestBest(candidates))
}

func TestMergeRoleStaffing(t *testing.T) {
	totals := map[string]int{"Designer": 2, "Backend Developer": 3}
	working := map[string]int{"Backend Developer": 2}
	stats := MergeRoleStaffing(totals, working)
	assert.Equal(t, []RoleStaffing{
		{Role: "Backend Developer", Total: 3, Working: 2},
		{Role: "Designer", Total: 2, Working: 0},
	}, stats)
}

func TestMonthlyBuckets(t *testing.T) {
	d := func(s string) time.Time {
		parsed, err := time.Parse("2006-01-02", s)
		assert.NoError(t, err)
		return parsed
	}
	buckets := MonthlyBuckets([]time.Time{
		d("2025-03-10"), d("2025-01-02"), d("2025-03-28"),
	})
	assert.Equal(t, []MonthCount{
		{Month: "2025-01", Count: 1},
		{Month: "2025-03", Count: 2},
	}, buckets)
}

package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseImportRecords(t *testing.T) {
	records := [][]string{
		{"Employee Name", "Role", "Weekly Hours"},
		{"Dana", "QA Engineer", "40"},
		{"Eli", "Designer", "37.5"},
	}

	rows, err := parseImportRecords(records)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Dana", rows[0].Name)
	require.Equal(t, "QA Engineer", rows[0].Role)
	require.Equal(t, 40.0, rows[0].WeeklyHours)
	require.Equal(t, 37.5, rows[1].WeeklyHours)
}

func TestParseImportRecordsAcceptsBareNameColumn(t *testing.T) {
	records := [][]string{
		{"Name", "Role", "weekly_hours"},
		{"Dana", "QA Engineer", "40"},
	}

	rows, err := parseImportRecords(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Dana", rows[0].Name)
}

func TestParseImportRecordsRejectsMissingColumn(t *testing.T) {
	records := [][]string{
		{"Employee Name", "Role"},
		{"Dana", "QA Engineer"},
	}

	_, err := parseImportRecords(records)
	require.ErrorContains(t, err, "weekly_hours")
}

func TestParseImportRecordsRejectsInvalidHours(t *testing.T) {
	records := [][]string{
		{"Employee Name", "Role", "Weekly Hours"},
		{"Dana", "QA Engineer", "lots"},
	}

	_, err := parseImportRecords(records)
	require.ErrorContains(t, err, "invalid weekly hours")
}

func TestParseImportRecordsRequiresDataRows(t *testing.T) {
	records := [][]string{
		{"Employee Name", "Role", "Weekly Hours"},
	}

	_, err := parseImportRecords(records)
	require.Error(t, err)
}

func TestNormalizeColumn(t *testing.T) {
	require.Equal(t, "employee_name", normalizeColumn("  Employee Name "))
	require.Equal(t, "employee_name", normalizeColumn("Name"))
	require.Equal(t, "weekly_hours", normalizeColumn("Weekly Hours"))
	require.Equal(t, "role", normalizeColumn("ROLE"))
}

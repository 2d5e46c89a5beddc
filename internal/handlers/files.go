package handlers

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/middleware"
	"github.com/skillboard/skillboard-api/internal/services"
	"github.com/skillboard/skillboard-api/internal/utils"
	"github.com/xuri/excelize/v2"
)

// FileHandler handles spreadsheet import and export of the roster.
type FileHandler struct {
	employeeService *services.EmployeeService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(employeeService *services.EmployeeService) *FileHandler {
	return &FileHandler{employeeService: employeeService}
}

var exportHeader = []string{
	"Employee", "Role", "Weekly Hours", "Skill", "Project", "Estimated Hours", "Start Date", "Deadline",
}

// requiredImportColumns must all be present after header normalization.
var requiredImportColumns = []string{"employee_name", "role", "weekly_hours"}

// Import handles POST /files/employees. It accepts a .csv or .xlsx upload
// with at least the employee name, role and weekly hours columns, and inserts
// the rows in one transaction.
func (h *FileHandler) Import(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errors.BadRequest(c, "Missing file upload")
		return
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		records, err = readCSV(fileHeader)
	case ".xlsx":
		records, err = readXLSX(fileHeader)
	default:
		errors.BadRequest(c, "Unsupported file type: expected .csv or .xlsx")
		return
	}
	if err != nil {
		errors.BadRequest(c, "Failed to parse file")
		return
	}

	rows, err := parseImportRecords(records)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	count, err := h.employeeService.Import(userID, rows)
	if err != nil {
		if stderrors.Is(err, services.ErrNoImportRows) ||
			stderrors.Is(err, services.ErrEmployeeNameRequired) {
			errors.BadRequest(c, err.Error())
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": count})
}

// Export handles GET /files/employees. It streams the roster report as an
// .xlsx workbook, one row per employee/task pair.
func (h *FileHandler) Export(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	rows, err := h.employeeService.Export(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	for i, row := range rows {
		values := []interface{}{
			row.EmployeeName,
			row.Role,
			row.WeeklyHours,
			row.SkillName,
			row.ProjectName,
			row.EstimatedHours,
			utils.FormatOptionalDate(row.StartDate),
			utils.FormatOptionalDate(row.Deadline),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		errors.InternalError(c, "")
		return
	}
}

func readCSV(fileHeader *multipart.FileHeader) ([][]string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSX(fileHeader *multipart.FileHeader) ([][]string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(f.GetSheetName(0))
}

// parseImportRecords maps a header row plus data rows to import rows. Header
// names are normalized to lower snake case, with a bare "name" column
// accepted for the employee name.
func parseImportRecords(records [][]string) ([]services.ImportRow, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one employee")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[normalizeColumn(name)] = i
	}
	for _, required := range requiredImportColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	rows := make([]services.ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(cellAt(record, columns["weekly_hours"])), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid weekly hours", i+1)
		}
		rows = append(rows, services.ImportRow{
			Name:        cellAt(record, columns["employee_name"]),
			Role:        cellAt(record, columns["role"]),
			WeeklyHours: hours,
		})
	}
	return rows, nil
}

func normalizeColumn(name string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if normalized == "name" {
		return "employee_name"
	}
	return normalized
}

func cellAt(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return record[index]
}

package roster

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// DefaultSheetName is used when no sheet name is configured
const DefaultSheetName = "Roster"

var exportHeader = []interface{}{"Student ID", "Name", "Major", "Grade"}

// Exporter writes course rosters as xlsx workbooks
type Exporter struct {
	sheetName string
}

// NewExporter creates an exporter writing to the named sheet
func NewExporter(sheetName string) *Exporter {
	if strings.TrimSpace(sheetName) == "" {
		sheetName = DefaultSheetName
	}
	return &Exporter{sheetName: sheetName}
}

// ExportCourse writes one row per enrollment of the course: student id,
// name, major and grade (empty when ungraded).
func (x *Exporter) ExportCourse(w io.Writer, course *models.Course, enrollments []*models.Enrollment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), x.sheetName); err != nil {
		return fmt.Errorf("failed to name roster sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("%s (%s)", course.Name, course.ID),
		Subject: "Course roster",
	}); err != nil {
		return fmt.Errorf("failed to set roster properties: %w", err)
	}

	if err := f.SetSheetRow(x.sheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write roster header: %w", err)
	}

	for i, e := range enrollments {
		grade, _ := e.Grade()
		row := []interface{}{e.Student.IDNumber, e.Student.Name, e.Student.Major, grade}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(x.sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write roster row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write roster workbook: %w", err)
	}
	return nil
}

// ImportResult holds the students read from a workbook and the 1-based
// row numbers that were skipped
type ImportResult struct {
	Students    []*models.Student
	SkippedRows []int
}

// ImportStudents reads students from the first sheet of an xlsx workbook.
// Columns are ID, Name, Major; the first row is a header. Rows with a
// missing name or a non-numeric id are skipped.
func ImportStudents(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRosterInvalid, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, apperrors.ErrRosterEmpty
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	result := &ImportResult{Students: make([]*models.Student, 0, len(rows))}
	for i, row := range rows {
		if i == 0 {
			continue
		}

		var rawID, name, major string
		if len(row) > 0 {
			rawID = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			major = strings.TrimSpace(row[2])
		}

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || name == "" {
			result.SkippedRows = append(result.SkippedRows, i+1)
			continue
		}
		result.Students = append(result.Students, models.NewStudent(name, id, major))
	}

	return result, nil
}

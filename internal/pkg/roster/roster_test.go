package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func TestExportCourse(t *testing.T) {
	course := models.NewCourse("mathematics", "100")
	ian := models.NewEnrollment(models.NewStudent("ian", 6444, "english"), course)
	ian.AssignGrade("a")
	imma := models.NewEnrollment(models.NewStudent("imma", 5443, "mathematics"), course)

	var buf bytes.Buffer
	require.NoError(t, NewExporter("").ExportCourse(&buf, course, []*models.Enrollment{ian, imma}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultSheetName, f.GetSheetName(0))
	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Student ID", "Name", "Major", "Grade"}, rows[0])
	assert.Equal(t, []string{"6444", "Ian", "English", "A"}, rows[1])
	// trailing empty grade cell is dropped by GetRows
	assert.Equal(t, []string{"5443", "Imma", "Mathematics"}, rows[2])
}

func TestImportStudents(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]interface{}{
		{"ID", "Name", "Major"},
		{"5443", "imma", "mathematics"},
		{"not-a-number", "ghost", "none"},
		{"6444", "", "english"},
		{"5493", "lucky", "chemistry"},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	result, err := ImportStudents(&buf)
	require.NoError(t, err)

	require.Len(t, result.Students, 2)
	assert.Equal(t, "Imma", result.Students[0].Name)
	assert.Equal(t, "Mathematics", result.Students[0].Major)
	assert.Equal(t, int64(5493), result.Students[1].IDNumber)
	assert.Equal(t, []int{3, 4}, result.SkippedRows)
}

func TestImportStudents_NotAWorkbook(t *testing.T) {
	_, err := ImportStudents(strings.NewReader("plain text"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRosterInvalid))
}

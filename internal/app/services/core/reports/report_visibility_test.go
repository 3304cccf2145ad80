package reports

import (
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToReportView_StudentAuthoredHidesStaffName(t *testing.T) {
	studentID := primitive.NewObjectID()
	report := &models.Report{
		ID:                  primitive.NewObjectID(),
		StudentID:           &studentID,
		StudentName:         "Ana",
		StaffName:           "stale",
		ClinicalRecordFiles: []models.AttachmentRef{{ID: "abc", Name: "laudo.pdf"}},
	}

	view := ToReportView(report)

	require.NotNil(t, view.StudentID)
	assert.Equal(t, studentID.Hex(), *view.StudentID)
	assert.Equal(t, "Ana", *view.StudentName)
	assert.Nil(t, view.StaffName)
	require.Len(t, view.ClinicalRecordFiles, 1)
	assert.Equal(t, "laudo.pdf", view.ClinicalRecordFiles[0].Name)
	assert.Equal(t, "/reports/download/abc", view.ClinicalRecordFiles[0].DownloadPath)
	assert.NotNil(t, view.SignatureFiles)
}

func TestToReportView_StaffAuthoredHidesStudent(t *testing.T) {
	view := ToReportView(&models.Report{ID: primitive.NewObjectID(), StudentName: "stale", StaffName: "Marta"})

	assert.Nil(t, view.StudentID)
	assert.Nil(t, view.StudentName)
	require.NotNil(t, view.StaffName)
	assert.Equal(t, "Marta", *view.StaffName)
}

func TestToReportViews(t *testing.T) {
	views := ToReportViews([]models.Report{{ID: primitive.NewObjectID()}, {ID: primitive.NewObjectID()}})
	assert.Len(t, views, 2)
	assert.NotEqual(t, views[0].ID, views[1].ID)

	assert.NotNil(t, ToReportViews(nil))
}

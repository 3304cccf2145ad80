package reports

import (
	"fmt"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/responses"
)

// ToReportView builds the client view of report. Student-authored reports never
// expose nomeFuncionario; staff-authored reports never expose alunoId or nomeAluno.
func ToReportView(report *models.Report) responses.Report {
	view := responses.Report{
		ID:                  report.ID.Hex(),
		PatientID:           report.PatientID.Hex(),
		PatientName:         report.PatientName,
		PatientBirthDate:    report.PatientBirthDate,
		TreatmentStartDate:  report.TreatmentStartDate,
		TreatmentEndDate:    report.TreatmentEndDate,
		TreatmentType:       report.TreatmentType,
		Content:             report.Content,
		CreatedAt:           report.CreatedAt,
		LastUpdated:         report.LastUpdated,
		Active:              report.Active,
		Version:             report.Version,
		ClinicalRecordFiles: toAttachmentViews(report.ClinicalRecordFiles),
		SignatureFiles:      toAttachmentViews(report.SignatureFiles),
	}

	if report.IsStudentAuthored() {
		studentID := report.StudentID.Hex()
		studentName := report.StudentName
		view.StudentID = &studentID
		view.StudentName = &studentName
	} else {
		staffName := report.StaffName
		view.StaffName = &staffName
	}

	return view
}

func ToReportViews(reports []models.Report) []responses.Report {
	views := make([]responses.Report, 0, len(reports))
	for i := range reports {
		views = append(views, ToReportView(&reports[i]))
	}
	return views
}

func toAttachmentViews(refs []models.AttachmentRef) []responses.ReportAttachment {
	views := make([]responses.ReportAttachment, 0, len(refs))
	for _, ref := range refs {
		views = append(views, responses.ReportAttachment{
			Name:         ref.Name,
			DownloadPath: fmt.Sprintf(constvars.ReportDownloadPathFormat, ref.ID),
		})
	}
	return views
}

package utils

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
)

// parsePage falls back to 1 on a missing or invalid page and clamps large ones
// to constvars.ReportMaxPage.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		return 1
	}
	if page > constvars.ReportMaxPage {
		return constvars.ReportMaxPage
	}
	return page
}

// BuildListReportsRequest reads the report listing filters from the query string.
// ativo defaults to true; only the literal "false" lists archived reports.
func BuildListReportsRequest(r *http.Request) (*requests.ListReports, error) {
	query := r.URL.Query()
	request := &requests.ListReports{
		Search:        strings.TrimSpace(query.Get(constvars.URLQueryParamSearch)),
		StudentName:   strings.TrimSpace(query.Get(constvars.URLQueryParamStudentName)),
		PatientName:   strings.TrimSpace(query.Get(constvars.URLQueryParamPatientName)),
		TreatmentType: strings.TrimSpace(query.Get(constvars.URLQueryParamTreatmentType)),
		StaffName:     strings.TrimSpace(query.Get(constvars.URLQueryParamStaffName)),
		Active:        query.Get(constvars.URLQueryParamActive) != "false",
		Page:          parsePage(r),
	}

	if raw := strings.TrimSpace(query.Get(constvars.URLQueryParamCreatedAt)); raw != "" {
		day, err := time.ParseInLocation(constvars.ReportDateFilterLayout, raw, time.Local)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		request.CreatedOn = &day
	}

	return request, nil
}

// BuildCreateReportRequest expects r.ParseMultipartForm to have been called.
func BuildCreateReportRequest(r *http.Request) (*requests.CreateReport, error) {
	request := &requests.CreateReport{
		PatientID: strings.TrimSpace(r.FormValue(constvars.FormFieldPatientID)),
		Content:   r.FormValue(constvars.FormFieldContent),
		StudentID: strings.TrimSpace(r.FormValue(constvars.FormFieldStudentID)),
		StaffName: strings.TrimSpace(r.FormValue(constvars.FormFieldStaffName)),
	}

	var err error
	request.ClinicalRecordFiles, err = openUploads(r.MultipartForm, constvars.ReportAttachmentFieldClinicalRecord)
	if err != nil {
		return nil, err
	}
	request.SignatureFiles, err = openUploads(r.MultipartForm, constvars.ReportAttachmentFieldSignature)
	if err != nil {
		requests.CloseUploads(request.ClinicalRecordFiles)
		return nil, err
	}

	return request, nil
}

// BuildUpdateReportMultipartRequest fills only the fields present in the form so the
// patch leaves everything else untouched.
func BuildUpdateReportMultipartRequest(r *http.Request) (*requests.UpdateReport, error) {
	request := new(requests.UpdateReport)
	form := r.MultipartForm

	request.PatientID = optionalFormValue(form, constvars.FormFieldPatientID)
	request.Content = optionalFormValue(form, constvars.FormFieldContent)
	request.StudentID = optionalFormValue(form, constvars.FormFieldStudentID)
	request.StaffName = optionalFormValue(form, constvars.FormFieldStaffName)
	request.RemoveClinicalRecords = formValues(form, constvars.FormFieldRemoveClinical)
	request.RemoveSignatures = formValues(form, constvars.FormFieldRemoveSignature)

	if raw := optionalFormValue(form, constvars.FormFieldVersion); raw != nil {
		version, err := strconv.ParseInt(*raw, 10, 64)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		request.Version = &version
	}

	var err error
	request.ClinicalRecordFiles, err = openUploads(form, constvars.ReportAttachmentFieldClinicalRecord)
	if err != nil {
		return nil, err
	}
	request.SignatureFiles, err = openUploads(form, constvars.ReportAttachmentFieldSignature)
	if err != nil {
		requests.CloseUploads(request.ClinicalRecordFiles)
		return nil, err
	}

	return request, nil
}

func IsMultipartRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm)
}

func optionalFormValue(form *multipart.Form, key string) *string {
	if form == nil {
		return nil
	}
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	value := strings.TrimSpace(values[0])
	return &value
}

// formValues accepts both repeated fields and a single comma separated value.
func formValues(form *multipart.Form, key string) []string {
	if form == nil {
		return nil
	}
	var result []string
	for _, value := range form.Value[key] {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func openUploads(form *multipart.Form, field string) ([]*requests.AttachmentUpload, error) {
	if form == nil {
		return nil, nil
	}

	var uploads []*requests.AttachmentUpload
	for _, header := range form.File[field] {
		file, err := header.Open()
		if err != nil {
			requests.CloseUploads(uploads)
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}

		contentType := header.Header.Get(constvars.HeaderContentType)
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}

		uploads = append(uploads, &requests.AttachmentUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Reader:      file,
		})
	}
	return uploads, nil
}

package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct {
	field    string
	filename string
	body     string
}

func newMultipartRequest(t *testing.T, method string, values map[string][]string, files []formFile) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, list := range values {
		for _, value := range list {
			require.NoError(t, writer.WriteField(key, value))
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.body))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, "/api/v1/reports", body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(constvars.ReportMultipartMemoryInBytes))
	return req
}

func TestBuildListReportsRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?q=ana&nomePaciente=%20Carla%20&dataCriacao=2024-05-10&page=2", nil)

	request, err := BuildListReportsRequest(req)
	require.NoError(t, err)

	assert.Equal(t, "ana", request.Search)
	assert.Equal(t, "Carla", request.PatientName)
	assert.True(t, request.Active)
	assert.Equal(t, 2, request.Page)
	require.NotNil(t, request.CreatedOn)
	assert.True(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local).Equal(*request.CreatedOn))
}

func TestBuildListReportsRequest_Defaults(t *testing.T) {
	request, err := BuildListReportsRequest(httptest.NewRequest(http.MethodGet, "/api/v1/reports?ativo=false&page=-3", nil))
	require.NoError(t, err)
	assert.False(t, request.Active)
	assert.Equal(t, 1, request.Page)
	assert.Nil(t, request.CreatedOn)

	request, err = BuildListReportsRequest(httptest.NewRequest(http.MethodGet, "/api/v1/reports?ativo=0", nil))
	require.NoError(t, err)
	assert.True(t, request.Active)
}

func TestBuildListReportsRequest_ClampsHugePage(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
	}{
		{name: "past the last allowed page", query: "page=700000000000000000", page: constvars.ReportMaxPage},
		{name: "beyond int range", query: "page=99999999999999999999999", page: 1},
		{name: "last allowed page", query: fmt.Sprintf("page=%d", constvars.ReportMaxPage), page: constvars.ReportMaxPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := BuildListReportsRequest(httptest.NewRequest(http.MethodGet, "/api/v1/reports?"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.page, request.Page)
		})
	}
}

func TestBuildListReportsRequest_InvalidDate(t *testing.T) {
	_, err := BuildListReportsRequest(httptest.NewRequest(http.MethodGet, "/api/v1/reports?dataCriacao=10/05/2024", nil))
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
}

func TestBuildCreateReportRequest(t *testing.T) {
	req := newMultipartRequest(t, http.MethodPost, map[string][]string{
		constvars.FormFieldPatientID: {" 663e1f4b2f8e4a0012345678 "},
		constvars.FormFieldContent:   {"Sessão"},
		constvars.FormFieldStaffName: {"Marta"},
	}, []formFile{
		{field: constvars.ReportAttachmentFieldClinicalRecord, filename: "a.pdf", body: "aaa"},
		{field: constvars.ReportAttachmentFieldClinicalRecord, filename: "b.pdf", body: "bb"},
		{field: constvars.ReportAttachmentFieldSignature, filename: "s.png", body: "s"},
	})

	request, err := BuildCreateReportRequest(req)
	require.NoError(t, err)
	defer requests.CloseUploads(request.ClinicalRecordFiles, request.SignatureFiles)

	assert.Equal(t, "663e1f4b2f8e4a0012345678", request.PatientID)
	assert.Equal(t, "Marta", request.StaffName)
	require.Len(t, request.ClinicalRecordFiles, 2)
	require.Len(t, request.SignatureFiles, 1)
	assert.Equal(t, "b.pdf", request.ClinicalRecordFiles[1].Filename)
	assert.Equal(t, int64(2), request.ClinicalRecordFiles[1].Size)
	assert.Equal(t, constvars.MIMEOctetStream, request.SignatureFiles[0].ContentType)

	body, err := io.ReadAll(request.ClinicalRecordFiles[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, "aaa", string(body))

	assert.NoError(t, ValidateStruct(request))
}

func TestBuildUpdateReportMultipartRequest(t *testing.T) {
	req := newMultipartRequest(t, http.MethodPatch, map[string][]string{
		constvars.FormFieldContent:         {"novo"},
		constvars.FormFieldRemoveClinical:  {"x.pdf, y.pdf", "z.pdf"},
		constvars.FormFieldRemoveSignature: {""},
		constvars.FormFieldVersion:         {"3"},
	}, nil)

	request, err := BuildUpdateReportMultipartRequest(req)
	require.NoError(t, err)

	require.NotNil(t, request.Content)
	assert.Equal(t, "novo", *request.Content)
	assert.Nil(t, request.PatientID)
	assert.Nil(t, request.StaffName)
	assert.Equal(t, []string{"x.pdf", "y.pdf", "z.pdf"}, request.RemoveClinicalRecords)
	assert.Empty(t, request.RemoveSignatures)
	require.NotNil(t, request.Version)
	assert.Equal(t, int64(3), *request.Version)
}

func TestBuildUpdateReportMultipartRequest_InvalidVersion(t *testing.T) {
	req := newMultipartRequest(t, http.MethodPatch, map[string][]string{constvars.FormFieldVersion: {"abc"}}, nil)

	_, err := BuildUpdateReportMultipartRequest(req)
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
}

func TestValidateStruct_CreateReport(t *testing.T) {
	err := ValidateStruct(&requests.CreateReport{PatientID: "123", Content: ""})
	require.Error(t, err)

	message := exceptions.FormatFirstValidationError(err)
	assert.Contains(t, message, "pacienteId")
}

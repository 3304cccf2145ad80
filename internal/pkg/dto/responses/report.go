package responses

import "time"

type ReportAttachment struct {
	Name         string `json:"nome"`
	DownloadPath string `json:"downloadPath"`
}

// Report is the client view of a report. Authorship fields are pointers so the
// visibility filter can drop the branch a report does not belong to.
type Report struct {
	ID                  string             `json:"_id"`
	PatientID           string             `json:"pacienteId"`
	PatientName         string             `json:"nomePaciente"`
	PatientBirthDate    *time.Time         `json:"dataNascimentoPaciente,omitempty"`
	TreatmentStartDate  *time.Time         `json:"dataInicioTratamento,omitempty"`
	TreatmentEndDate    *time.Time         `json:"dataTerminoTratamento,omitempty"`
	TreatmentType       string             `json:"tipoTratamento"`
	StudentID           *string            `json:"alunoId,omitempty"`
	StudentName         *string            `json:"nomeAluno,omitempty"`
	StaffName           *string            `json:"nomeFuncionario,omitempty"`
	Content             string             `json:"conteudo"`
	CreatedAt           time.Time          `json:"dataCriacao"`
	LastUpdated         time.Time          `json:"ultimaAtualizacao"`
	Active              bool               `json:"ativoRelatorio"`
	Version             int64              `json:"versao"`
	ClinicalRecordFiles []ReportAttachment `json:"prontuario"`
	SignatureFiles      []ReportAttachment `json:"assinatura"`
}

type ReportList struct {
	Reports     []Report `json:"relatorios"`
	TotalItems  int64    `json:"totalItems"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
}

type AttachmentCleanup struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type DeleteReport struct {
	ID                string              `json:"_id"`
	AttachmentCleanup []AttachmentCleanup `json:"attachmentCleanup"`
}

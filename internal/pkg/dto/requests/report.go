package requests

import "time"

type CreateReport struct {
	PatientID           string              `form:"pacienteId" validate:"required,mongodb"`
	Content             string              `form:"conteudo" validate:"required"`
	StudentID           string              `form:"alunoId" validate:"omitempty,mongodb"`
	StaffName           string              `form:"nomeFuncionario" validate:"omitempty,max=120"`
	ClinicalRecordFiles []*AttachmentUpload `form:"-"`
	SignatureFiles      []*AttachmentUpload `form:"-"`
}

// UpdateReport is a partial patch: nil pointers are left untouched.
type UpdateReport struct {
	PatientID             *string             `json:"pacienteId" form:"pacienteId" validate:"omitempty,mongodb"`
	Content               *string             `json:"conteudo" form:"conteudo" validate:"omitempty,min=1"`
	StudentID             *string             `json:"alunoId" form:"alunoId" validate:"omitempty,mongodb"`
	StaffName             *string             `json:"nomeFuncionario" form:"nomeFuncionario" validate:"omitempty,min=1,max=120"`
	RemoveClinicalRecords []string            `json:"removerProntuario" form:"removerProntuario"`
	RemoveSignatures      []string            `json:"removerAssinatura" form:"removerAssinatura"`
	Version               *int64              `json:"versao" form:"versao" validate:"omitempty,gte=0"`
	ClinicalRecordFiles   []*AttachmentUpload `json:"-" form:"-"`
	SignatureFiles        []*AttachmentUpload `json:"-" form:"-"`
}

type ListReports struct {
	Search        string
	StudentName   string
	PatientName   string
	TreatmentType string
	StaffName     string
	CreatedOn     *time.Time
	Active        bool
	Page          int
}

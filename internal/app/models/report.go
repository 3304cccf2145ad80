package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttachmentRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"nome" bson:"nome"`
}

type Report struct {
	ID                  primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	PatientID           primitive.ObjectID  `json:"pacienteId" bson:"pacienteId"`
	PatientName         string              `json:"nomePaciente" bson:"nomePaciente"`
	PatientBirthDate    *time.Time          `json:"dataNascimentoPaciente,omitempty" bson:"dataNascimentoPaciente,omitempty"`
	TreatmentStartDate  *time.Time          `json:"dataInicioTratamento,omitempty" bson:"dataInicioTratamento,omitempty"`
	TreatmentEndDate    *time.Time          `json:"dataTerminoTratamento,omitempty" bson:"dataTerminoTratamento,omitempty"`
	TreatmentType       string              `json:"tipoTratamento" bson:"tipoTratamento"`
	StudentID           *primitive.ObjectID `json:"alunoId,omitempty" bson:"alunoId,omitempty"`
	StudentName         string              `json:"nomeAluno,omitempty" bson:"nomeAluno,omitempty"`
	StaffName           string              `json:"nomeFuncionario,omitempty" bson:"nomeFuncionario,omitempty"`
	Content             string              `json:"conteudo" bson:"conteudo"`
	CreatedAt           time.Time           `json:"dataCriacao" bson:"dataCriacao"`
	LastUpdated         time.Time           `json:"ultimaAtualizacao" bson:"ultimaAtualizacao"`
	Active              bool                `json:"ativoRelatorio" bson:"ativoRelatorio"`
	Version             int64               `json:"versao" bson:"versao"`
	ClinicalRecordFiles []AttachmentRef     `json:"prontuario" bson:"prontuario"`
	SignatureFiles      []AttachmentRef     `json:"assinatura" bson:"assinatura"`
}

func (r *Report) IsStudentAuthored() bool {
	return r.StudentID != nil && !r.StudentID.IsZero()
}

// ApplyPatient copies the patient snapshot fields into the report.
func (r *Report) ApplyPatient(patient *Patient) {
	r.PatientID = patient.ID
	r.PatientName = patient.Name
	r.PatientBirthDate = patient.BirthDate
	r.TreatmentStartDate = patient.TreatmentStartDate
	r.TreatmentEndDate = patient.TreatmentEndDate
	r.TreatmentType = patient.TreatmentType
}

// AuthorAsStudent clears the staff branch.
func (r *Report) AuthorAsStudent(student *Student) {
	id := student.ID
	r.StudentID = &id
	r.StudentName = student.Name
	r.StaffName = ""
}

// AuthorAsStaff clears the student branch.
func (r *Report) AuthorAsStaff(name string) {
	r.StudentID = nil
	r.StudentName = ""
	r.StaffName = name
}

// Attachments returns every attachment of both collections.
func (r *Report) Attachments() []AttachmentRef {
	all := make([]AttachmentRef, 0, len(r.ClinicalRecordFiles)+len(r.SignatureFiles))
	all = append(all, r.ClinicalRecordFiles...)
	all = append(all, r.SignatureFiles...)
	return all
}

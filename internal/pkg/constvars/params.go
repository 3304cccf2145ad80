package constvars

const (
	URLParamReportID = "report_id"
	URLParamFileID   = "file_id"
)

const (
	URLQueryParamPage          = "page"
	URLQueryParamSearch        = "q"
	URLQueryParamStudentName   = "nomeAluno"
	URLQueryParamPatientName   = "nomePaciente"
	URLQueryParamTreatmentType = "tipoTratamento"
	URLQueryParamStaffName     = "nomeFuncionario"
	URLQueryParamCreatedAt     = "dataCriacao"
	URLQueryParamActive        = "ativo"
)

const (
	FormFieldPatientID       = "pacienteId"
	FormFieldContent         = "conteudo"
	FormFieldStudentID       = "alunoId"
	FormFieldStaffName       = "nomeFuncionario"
	FormFieldRemoveClinical  = "removerProntuario"
	FormFieldRemoveSignature = "removerAssinatura"
	FormFieldVersion         = "versao"
)

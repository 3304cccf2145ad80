package constvars

const (
	MongoCollectionReports    = "relatorios"
	MongoCollectionPatients   = "pacientes"
	MongoCollectionStudents   = "alunos"
	MongoCollectionProfessors = "professores"
	MongoCollectionUsers      = "usuarios"
)

const (
	MongoFieldID                  = "_id"
	MongoFieldEmail               = "email"
	MongoFieldProfessorID         = "professorId"
	MongoFieldReportPatientName   = "nomePaciente"
	MongoFieldReportStudentID     = "alunoId"
	MongoFieldReportStudentName   = "nomeAluno"
	MongoFieldReportStaffName     = "nomeFuncionario"
	MongoFieldReportTreatmentType = "tipoTratamento"
	MongoFieldReportCreatedAt     = "dataCriacao"
	MongoFieldReportActive        = "ativoRelatorio"
	MongoFieldReportLastUpdated   = "ultimaAtualizacao"
	MongoFieldReportVersion       = "versao"
)

const (
	MongoOperatorRegex   = "$regex"
	MongoOperatorOptions = "$options"
	MongoOperatorOr      = "$or"
	MongoOperatorIn      = "$in"
	MongoOperatorGte     = "$gte"
	MongoOperatorLt      = "$lt"
	MongoOperatorSet     = "$set"
	MongoOperatorInc     = "$inc"
)

const (
	DefaultAttachmentBucketName = "relatorios"
)

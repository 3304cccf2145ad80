package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
)

const (
	REQUEST_ID_PREFIX = "PSICARE_SVC_"
)

const (
	ResourceAuth    = "auth"
	ResourceReports = "reports"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	StorageDriverGridFS = "gridfs"
	StorageDriverMinio  = "minio"
)

const (
	ReportPageSize               = 15
	ReportMaxPage                = 1000000
	ReportDownloadPathFormat     = "/reports/download/%s"
	ReportLockKeyFormat          = "report:lock:%s"
	ReportDateFilterLayout       = "2006-01-02"
	ReportMultipartMemoryInBytes = 32 << 20
)

const (
	ReportAttachmentFieldClinicalRecord = "prontuario"
	ReportAttachmentFieldSignature      = "assinatura"
)

const (
	ReportEventCreated  = "report.created"
	ReportEventUpdated  = "report.updated"
	ReportEventArchived = "report.archived"
	ReportEventDeleted  = "report.deleted"
)

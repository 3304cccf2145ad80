package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"mongodb":          "must be a valid object ID",
	"excluded_with":    "must not be sent together with %s",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"gte":              true,
	"lte":              true,
	"oneof":            true,
	"excluded_with":    true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientLoginRequired                 = "you need to login to access this feature"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientReportNotFound                = "report not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientStudentNotFound               = "student not found"
	ErrClientAttachmentNotFound            = "file not found"
	ErrClientReportAlreadyArchived         = "report is already archived"
	ErrClientReportVersionConflict         = "report was changed by someone else, reload it and try again"
	ErrClientReportLocked                  = "report is being changed by another request, please try again"
	ErrClientAuthorshipRequired            = "report must have either a student or a staff author"
	ErrClientAuthorshipAmbiguous           = "report cannot have both a student and a staff author"
	ErrClientStudentNotLinked              = "your account is not linked to a student record"
	ErrClientFileTooLarge                  = "uploaded file is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse date, expected layout YYYY-MM-DD"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevMissingIdentity          = "identity not found in context"
	ErrDevTooManyRequests          = "rate limit exceeded"
	ErrDevServerPanicRecovered     = "panic recovered while serving request"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevAuthorshipRequired         = "neither alunoId nor nomeFuncionario was provided"
	ErrDevAuthorshipAmbiguous        = "both alunoId and nomeFuncionario were provided"
	ErrDevStudentIdentityNotResolved = "student identity has no alunoId"
	ErrDevFileTooLarge               = "uploaded file exceeds %d MB"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenClaims           = "token claims are malformed"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotExists         = "role doesn't exist on the system"
	ErrDevAuthUserInactive          = "user is inactive"

	// Report messages
	ErrDevReportNotFound        = "report %s not found"
	ErrDevPatientNotFound       = "patient %s not found"
	ErrDevStudentNotFound       = "student %s not found"
	ErrDevReportAlreadyArchived = "report %s is already archived"
	ErrDevReportVersionConflict = "report %s version mismatch, expected %d got %d"
	ErrDevReportLocked          = "report %s lock is held by another request"
	ErrDevReportModified        = "report %s changed while the update was being written"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToCountDocuments   = "failed when do count documents on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToRunTransaction   = "failed to run transaction on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Storage messages
	ErrDevStorageFailedToPutObject    = "failed to put object into bucket '%s'"
	ErrDevStorageFailedToGetObject    = "failed to get object from bucket '%s'"
	ErrDevStorageFailedToDeleteObject = "failed to delete object from bucket '%s'"
	ErrDevStorageObjectNotFound       = "object %s not found in bucket '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release lock in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue '%s'"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)

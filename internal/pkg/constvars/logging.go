package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingOperationKey          = "operation"
	LoggingDurationKey           = "duration"
	LoggingSecurityEventKey      = "security_event"
	LoggingLocationsKey          = "locations"
	LoggingCauseKey              = "cause"
	LoggingSuccessKey            = "success"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingRoleKey               = "role"
	LoggingEmailKey              = "email"
	LoggingReportIDKey           = "report_id"
	LoggingAttachmentIDKey       = "attachment_id"
	LoggingAttachmentIDsKey      = "attachment_ids"
	LoggingBucketNameKey         = "bucket_name"
	LoggingEventKey              = "event"
	LoggingTotalKey              = "total"
	LoggingPageKey               = "page"
	LoggingAttemptKey            = "attempt"
	LoggingPatientIDKey          = "patient_id"
	LoggingStudentIDKey          = "student_id"
	LoggingProfessorIDKey        = "professor_id"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingFileNameKey           = "file_name"
	LoggingSizeKey               = "size"
	LoggingStorageDriverKey      = "storage_driver"
	LoggingCollectionKey         = "collection"
	LoggingIndexesKey            = "indexes"
	LoggingAddressKey            = "address"
	LoggingRoutePatternKey       = "route_pattern"
)

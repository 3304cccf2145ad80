package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	LoginSuccessMessage = "successfully login"

)

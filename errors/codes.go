package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode string

const (
	ErrorCode_INTERNAL                        ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT                ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND                       ErrorCode = "NOT_FOUND"
	ErrorCode_INVALID_PAYLOAD                 ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_RECORD_NOT_FOUND                ErrorCode = "RECORD_NOT_FOUND"
	ErrorCode_UPLOAD_FAILED                   ErrorCode = "UPLOAD_FAILED"
	ErrorCode_UNSUPPORTED_FORMAT              ErrorCode = "UNSUPPORTED_FORMAT"
	ErrorCode_PROCESSING_FAILED               ErrorCode = "PROCESSING_FAILED"
	ErrorCode_REPROCESS_CONFLICT              ErrorCode = "REPROCESS_CONFLICT"
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = "INTEGRATION_STORAGE_FAILED"
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = "INTEGRATION_EXTERNAL_API_FAILED"
	ErrorCode_DB_CONNECTION_FAILED            ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED                 ErrorCode = "DB_QUERY_FAILED"
)

// String returns the code as a string
func (c ErrorCode) String() string {
	return string(c)
}

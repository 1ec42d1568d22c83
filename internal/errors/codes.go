package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Household error codes (HOUSEHOLD_*)
const (
	HouseholdNotFound  ErrorCode = "HOUSEHOLD_001"
	HouseholdInvalidID ErrorCode = "HOUSEHOLD_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound  ErrorCode = "ACCOUNT_001"
	AccountInvalidID ErrorCode = "ACCOUNT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionValidationFailed ErrorCode = "TRANSACTION_004"
)

// Template error codes (TEMPLATE_*)
const (
	TemplateNotFound         ErrorCode = "TEMPLATE_001"
	TemplateInvalidFrequency ErrorCode = "TEMPLATE_002"
	TemplateInvalidSchedule  ErrorCode = "TEMPLATE_003"
	TemplateValidationFailed ErrorCode = "TEMPLATE_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationOutOfRange:    "A field value is out of range",
	ValidationInvalidDate:   "A date field is invalid",

	HouseholdNotFound:  "Household not found",
	HouseholdInvalidID: "Invalid household ID",

	AccountNotFound:  "Account not found",
	AccountInvalidID: "Invalid account ID",

	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount is invalid",
	TransactionInvalidType:      "Transaction type is invalid",
	TransactionValidationFailed: "Transaction validation failed",

	TemplateNotFound:         "Transaction template not found",
	TemplateInvalidFrequency: "Template frequency is invalid",
	TemplateInvalidSchedule:  "Template schedule is invalid",
	TemplateValidationFailed: "Template validation failed",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}

// IsValidErrorCode reports whether the code is one of the defined constants
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}

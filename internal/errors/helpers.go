package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

// IsBudgetExceeded checks if an error is a budget exceeded error
func IsBudgetExceeded(err error) bool {
	return GetCode(err) == CodeBudgetExceeded
}

// IsRankCeilingExceeded checks if an error is a rank ceiling error
func IsRankCeilingExceeded(err error) bool {
	return GetCode(err) == CodeRankCeilingExceeded
}

// IsPrerequisiteNotMet checks if an error is a prerequisite not met error
func IsPrerequisiteNotMet(err error) bool {
	return GetCode(err) == CodePrerequisiteNotMet
}

// IsNoFeatSlots checks if an error is a no feat slots available error
func IsNoFeatSlots(err error) bool {
	return GetCode(err) == CodeNoFeatSlots
}

// IsMissingSelection checks if an error is a missing selection error
func IsMissingSelection(err error) bool {
	return GetCode(err) == CodeMissingSelection
}

// IsUnknownRule checks if an error is an unknown rule id error
func IsUnknownRule(err error) bool {
	return GetCode(err) == CodeUnknownRule
}

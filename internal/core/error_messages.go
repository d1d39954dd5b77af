package core

// # Error Codes Reference
//
// This file maps ingestion failures to user-facing messages with codes for
// support reference. Only whole-file failures get a code; a bad cell or row
// is reported in the invalid bucket and never becomes an error.
//
// # Sheet and Heading Errors
//
//	SHEET001 - Sheet not found: the workbook has no sheet with the expected name
//	           Action: Rename the price list sheet or choose the sheet to read
//	           Match: errors.Is(err, ErrSheetNotFound)
//
//	HDR001   - Missing column: a required heading label is absent from row 1
//	           Action: Download the example workbook and copy its headings exactly
//	           Match: errors.Is(err, ErrMissingColumn)
//
// # Schema Errors
//
//	SCH001   - Unknown schema: the requested price list format is not configured
//	           Match: errors.Is(err, ErrUnknownSchema)
//
// # File Errors
//
//	FILE001  - File too large
//	           Patterns: "file too large", "request body too large"
//	FILE002  - Unsupported format: not an .xls, .xlsx, .xlsm or .csv file
//	           Match: errors.Is(err, workbook.ErrUnsupportedFormat)
//	FILE003  - Unreadable file: the workbook or CSV could not be parsed
//	           Patterns: "invalid csv", "encoding error", "open workbook"
//	FILE004  - No file was selected
//	           Match: errors.Is(err, ErrNoFile)
//	FILE005  - Empty file
//	           Match: errors.Is(err, ErrEmptyFile)
//
// # Ingestion Errors
//
//	ING001   - System busy: every ingestion slot is taken
//	           Match: errors.Is(err, ErrTooManyIngests)
//	ING002   - Request cancelled
//	           Match: errors.Is(err, context.Canceled)
//	ING003   - Request timed out
//	           Match: errors.Is(err, context.DeadlineExceeded)
//	ING004   - Timeout reported by a lower layer
//	           Patterns: "timeout"
//	ING005   - Upload could not be read
//	           Patterns: "read upload"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Support staff should check the logs for the
// run id and the original technical error.
//
// Sentinel matches are tried first, in order, then the text patterns
// (case-insensitive strings.Contains). The first match wins.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

// ErrNoFile is returned when an ingest request carries no file.
var ErrNoFile = errors.New("no file provided")

// ErrEmptyFile is returned for a zero-byte upload.
var ErrEmptyFile = errors.New("empty file")

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

// errorSentinel maps a sentinel error to a user message. With detail set the
// error's own text replaces Message, for errors whose text is already meant
// for the person who uploaded the file.
type errorSentinel struct {
	target error
	detail bool
	msg    UserMessage
}

var errorSentinels = []errorSentinel{
	{
		target: ErrSheetNotFound,
		detail: true,
		msg: UserMessage{
			Message: "The price list sheet was not found",
			Action:  "Rename the price list sheet or choose the sheet to read",
			Code:    "SHEET001",
		},
	},
	{
		target: ErrMissingColumn,
		detail: true,
		msg: UserMessage{
			Message: "A required column is missing",
			Action:  "Download the example workbook and copy its headings exactly",
			Code:    "HDR001",
		},
	},
	{
		target: ErrUnknownSchema,
		msg: UserMessage{
			Message: "Unknown price list format",
			Action:  "Choose one of the listed price list formats",
			Code:    "SCH001",
		},
	},
	{
		target: workbook.ErrUnsupportedFormat,
		msg: UserMessage{
			Message: "This file type is not supported",
			Action:  "Save the price list as .xls, .xlsx or .csv and upload it again",
			Code:    "FILE002",
		},
	},
	{
		target: ErrNoFile,
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select a price list file to upload",
			Code:    "FILE004",
		},
	},
	{
		target: ErrEmptyFile,
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Please upload a workbook containing your price list",
			Code:    "FILE005",
		},
	},
	{
		target: ErrTooManyIngests,
		msg: UserMessage{
			Message: "System is busy processing other price lists",
			Action:  "Please wait a moment and try again",
			Code:    "ING001",
		},
	},
	{
		target: context.Canceled,
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "ING002",
		},
	},
	{
		target: context.DeadlineExceeded,
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "ING003",
		},
	},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns cover errors from libraries that have no sentinel to match.
// Specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Remove unused sheets or split the price list",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Remove unused sheets or split the price list",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Export the sheet again as comma-separated values",
			Code:    "FILE003",
		},
	},
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "File contains invalid characters",
			Action:  "Save the file as UTF-8",
			Code:    "FILE003",
		},
	},
	{
		pattern: "open workbook",
		msg: UserMessage{
			Message: "The workbook could not be opened",
			Action:  "Open the file in Excel, save it as .xlsx and upload it again",
			Code:    "FILE003",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Try a smaller file or try again later",
			Code:    "ING004",
		},
	},
	{
		pattern: "read upload",
		msg: UserMessage{
			Message: "The upload could not be read",
			Action:  "Please try uploading the file again",
			Code:    "ING005",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
//
// Example:
//
//	_, err := core.Ingest(book, schema, "")
//	msg := MapError(err)
//	// msg.Code == "SHEET001"
//	// msg.Message == `There is no sheet in the workbook called "Service Pricing".`
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, s := range errorSentinels {
		if errors.Is(err, s.target) {
			msg := s.msg
			if s.detail {
				msg.Message = detailMessage(err, s.target)
			}
			return msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// detailMessage returns the text of the typed error in err's chain that
// matches target, without any wrapping prefixes.
func detailMessage(err, target error) string {
	var sheetErr *SheetNotFoundError
	var colErr *MissingColumnError
	switch {
	case target == ErrSheetNotFound && errors.As(err, &sheetErr):
		return sheetErr.Error()
	case target == ErrMissingColumn && errors.As(err, &colErr):
		return colErr.Error()
	}
	return err.Error()
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error, kept for logging, with its user message.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}

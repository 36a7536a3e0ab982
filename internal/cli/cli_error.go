package cli

// CLIError is a structured error used for consistent error emission.
type CLIError struct {
	Code    string
	Message string
	Hint    string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Error codes
const (
	CodeFileNotFound   = "FILE_NOT_FOUND"
	CodeReadError      = "READ_ERROR"
	CodeInvalidFormat  = "INVALID_FORMAT"
	CodeInvalidPattern = "INVALID_PATTERN"
	CodeRenderError    = "RENDER_ERROR"
	CodeWriteError     = "WRITE_ERROR"
)

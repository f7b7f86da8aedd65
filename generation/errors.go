package generation

import "fmt"

// ErrorCode classifies generation failures
type ErrorCode string

const (
	// CodeInvalidConfig is reported before a pipeline is created
	CodeInvalidConfig ErrorCode = "invalid_config"
	// CodeLayoutUnstable is reported when room separation does not converge
	CodeLayoutUnstable ErrorCode = "layout_unstable"
)

// GenerationError is the typed failure surfaced by the pipeline
type GenerationError struct {
	Code    ErrorCode
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches any GenerationError with the same code when the target carries
// no message, so errors.Is(err, ErrLayoutUnstable) works for every instance.
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is
var (
	ErrInvalidConfig  = &GenerationError{Code: CodeInvalidConfig}
	ErrLayoutUnstable = &GenerationError{Code: CodeLayoutUnstable}
)

func newError(code ErrorCode, format string, args ...interface{}) *GenerationError {
	return &GenerationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

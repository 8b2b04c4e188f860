package errors

import (
	"errors"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// ReportError wraps an Encoded report as a Go error, so structured reports
// survive errors.As() unwrapping through an ordinary error-returning call
// chain.
type ReportError struct {
	Rep Encoded
}

func (e *ReportError) Error() string { return e.Rep.Code + ": " + e.Rep.Message }

// AsReport extracts the Encoded report from err's chain, if any.
func AsReport(err error) (Encoded, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return Encoded{}, false
}

// WrapReport wraps an Encoded report as an error.
func WrapReport(r Encoded) error {
	return &ReportError{Rep: r}
}

// RecoverContractViolation turns a types.ProgrammerError panic into an
// Encoded report via *errp, leaving any other panic value to propagate.
// Callers use it as: defer errors.RecoverContractViolation(&err, PRG001).
func RecoverContractViolation(errp *error, code string) {
	if r := recover(); r != nil {
		pe, ok := r.(*types.ProgrammerError)
		if !ok {
			panic(r)
		}
		*errp = WrapReport(NewContractViolation(code, pe))
	}
}

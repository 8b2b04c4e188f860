package errors

import (
	"encoding/json"
	"fmt"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

// Fix is a suggested remediation attached to an Encoded report, with a
// confidence score in [0, 1] so a caller can decide whether to surface it.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Encoded is the JSON-serializable form of a diagnostic: struct field order
// is the JSON key order, so it's already deterministic without a separate
// canonicalization pass.
type Encoded struct {
	Schema     string      `json:"schema"`
	Phase      string      `json:"phase"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Fix        Fix         `json:"fix"`
	Context    interface{} `json:"context,omitempty"`
	SourceSpan string      `json:"source_span,omitempty"`
	Meta       interface{} `json:"meta,omitempty"`
}

// schemaV1 identifies the report envelope version.
const schemaV1 = "inference.error/v1"

// NewTypecheck builds a typecheck-phase report.
func NewTypecheck(code, msg string, ctx interface{}) Encoded {
	return Encoded{
		Schema:  schemaV1,
		Phase:   "typecheck",
		Code:    code,
		Message: msg,
		Context: ctx,
	}
}

// NewContractViolation builds a report for a types.ProgrammerError: a
// violation of this module's own internal contract, never the user's fault.
func NewContractViolation(code string, err *types.ProgrammerError) Encoded {
	return Encoded{
		Schema:  schemaV1,
		Phase:   "solver",
		Code:    code,
		Message: err.Error(),
	}
}

// FromUnificationFailure builds the typecheck report for a failed Bind
// constraint, choosing the code from the failure's Kind.
func FromUnificationFailure(f *types.UnificationFailure) Encoded {
	code := TC003
	switch f.Kind {
	case types.PrimitiveMismatch:
		code = TC001
	case types.OccursCheckFailure:
		code = TC004
	}
	return NewTypecheck(code, f.Error(), map[string]string{
		"left":  f.Left.String(),
		"right": f.Right.String(),
	})
}

// WithFix attaches a suggested remediation.
func (e Encoded) WithFix(suggestion string, confidence float64) Encoded {
	e.Fix = Fix{Suggestion: suggestion, Confidence: confidence}
	return e
}

// WithSourceSpan attaches a "file:line:col" location string.
func (e Encoded) WithSourceSpan(span string) Encoded {
	e.SourceSpan = span
	return e
}

// WithMeta attaches free-form metadata.
func (e Encoded) WithMeta(meta interface{}) Encoded {
	e.Meta = meta
	return e
}

// ToJSON renders e as JSON. compact selects single-line vs. indented output.
func (e Encoded) ToJSON(compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(e)
	}
	return json.MarshalIndent(e, "", "  ")
}

// SafeEncodeError encodes any error as a best-effort report; it never
// panics, so it's safe to call from a deferred recover() handler around a
// types.ProgrammerError panic.
func SafeEncodeError(err error, phase string) []byte {
	if err == nil {
		return nil
	}
	encoded := Encoded{
		Schema:  schemaV1,
		Phase:   phase,
		Code:    "ERR000",
		Message: err.Error(),
	}
	data, marshalErr := encoded.ToJSON(true)
	if marshalErr != nil {
		return []byte(fmt.Sprintf(`{"schema":%q,"phase":%q,"code":"ERR000","message":"encoding failed"}`, schemaV1, phase))
	}
	return data
}

// FormatSourceSpan formats a file position as "file:line:col".
func FormatSourceSpan(file string, line, col int) string {
	return fmt.Sprintf("%s:%d:%d", file, line, col)
}

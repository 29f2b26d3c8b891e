package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// FieldError is a single schema violation at a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every schema violation found in a resume document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, " %d. %s: %s;", i+1, err.Field, err.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateJSON checks the shape of a raw resume document. Every field is optional;
// only type mismatches are reported.
func ValidateJSON(raw []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	if !json.Valid(raw) {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "invalid JSON"}}}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate resume: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

// Decode validates raw and unmarshals it into a Resume.
func Decode(raw []byte) (Resume, error) {
	if err := ValidateJSON(raw); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	return r.Normalize(), nil
}

// Package schemas provides JSON Schema validation of admin API response envelopes.
package schemas

import (
	"embed"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed json/*.schema.json
var schemaFS embed.FS

// Schema names, matching files under json/.
const (
	CompanyList    = "company-list"
	JobSeekerList  = "job-seeker-list"
	JobPostList    = "job-post-list"
	Entity         = "entity"
	Login          = "login"
	DashboardStats = "dashboard-stats"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("validation failed against %s:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Names lists the embedded schemas.
func Names() []string {
	entries, err := schemaFS.ReadDir("json")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".schema.json"))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw content of an embedded schema.
func Source(name string) (string, error) {
	p := "json/" + name + ".schema.json"
	data, err := schemaFS.ReadFile(p)
	if err != nil {
		return "", &SchemaLoadError{Path: p, Message: "schema not found", Cause: err}
	}
	return string(data), nil
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return resultError("", result)
}

func resultError(name string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Validator validates documents against the embedded schemas, compiling each once.
type Validator struct {
	mu       sync.Mutex
	compiled map[string]*gojsonschema.Schema
}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{compiled: make(map[string]*gojsonschema.Schema)}
}

func (v *Validator) schema(name string) (*gojsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s, ok := v.compiled[name]; ok {
		return s, nil
	}
	src, err := Source(name)
	if err != nil {
		return nil, err
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	v.compiled[name] = s
	return s, nil
}

// Validate checks a JSON document against the named schema.
func (v *Validator) Validate(name string, document []byte) error {
	s, err := v.schema(name)
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	return resultError(name, result)
}

// ValidateResponse validates a response body against the schema registered for the
// request's method and endpoint. Responses without a registered schema pass.
func (v *Validator) ValidateResponse(method, endpoint string, body []byte) error {
	name := SchemaFor(method, endpoint)
	if name == "" {
		return nil
	}
	return v.Validate(name, body)
}

var listSchemas = map[string]string{
	"job-providers": CompanyList,
	"job-seekers":   JobSeekerList,
	"job-posts":     JobPostList,
}

// SchemaFor returns the schema name for an admin API endpoint, or "" when none applies.
func SchemaFor(method, endpoint string) string {
	p := endpoint
	if u, err := url.Parse(endpoint); err == nil {
		p = u.Path
	}
	p = strings.Trim(path.Clean(p), "/")
	parts := strings.Split(p, "/")
	if len(parts) < 2 || parts[0] != "admin" {
		return ""
	}
	resource := parts[1]
	rest := parts[2:]

	if resource == "auth" && method == http.MethodPost && len(rest) == 1 && rest[0] == "login" {
		return Login
	}
	list, ok := listSchemas[resource]
	if !ok {
		return ""
	}
	switch {
	case method == http.MethodGet && len(rest) == 0:
		return list
	case method == http.MethodGet && resource == "job-posts" && len(rest) == 1 && rest[0] == "active":
		return JobPostList
	case method == http.MethodGet && resource == "job-seekers" && len(rest) == 1 && rest[0] == "count":
		return DashboardStats
	case (method == http.MethodGet || method == http.MethodPatch) && len(rest) >= 1:
		return Entity
	default:
		return ""
	}
}

package domain

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the JSON envelope returned by every endpoint.
// Error carries the underlying error text and is only filled outside production.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrors is placed under data when request validation fails
type ValidationErrors struct {
	Errors map[string]string `json:"errors"`
}

// ValidationMessages provides human-readable validation error messages
// keyed by validator tag
var ValidationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"gte":      "Must be greater than or equal to minimum value",
	"gtefield": "Must not be before the start date",
	"lte":      "Must be less than or equal to maximum value",
	"uuid":     "Must be a valid UUID",
	"numeric":  "Must be a numeric value",
	"unknown":  "Unknown field",
	"format":   "Invalid format",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

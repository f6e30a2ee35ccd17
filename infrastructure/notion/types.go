package notion

import "fmt"

// Named edge operations. Each wraps one Notion-backed function on the edge
// API; the executor addresses them by name.
const (
	OpGetAllReferenceData = "get-all-reference-data"
	OpGetModes            = "get-modes"
	OpGetMuscles          = "get-muscles"
	OpGetChakras          = "get-chakras"
	OpGetChannels         = "get-channels"
	OpGetAcupoints        = "get-acupoints"
	OpGetPageContent      = "get-page-content"
	OpSyncReferenceData   = "sync-reference-databases"
	OpCheckConfig         = "check-notion-config"
	OpMigrate             = "run-migration"
)

// Error codes recognized by the fetch executor; these change control flow
// instead of surfacing as plain errors.
const (
	CodeConfigNotFound  = "NOTION_CONFIG_NOT_FOUND"
	CodeProfileNotFound = "PROFILE_NOT_FOUND"
	CodeNameMissing     = "PRACTITIONER_NAME_MISSING"
	CodeRateLimited     = "RATE_LIMITED"
)

// APIError is the JSON error body returned by the edge API.
type APIError struct {
	Message   string `json:"error"`
	ErrorCode string `json:"errorCode,omitempty"`
	Details   string `json:"details,omitempty"`
	Status    int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.ErrorCode)
	}
	return e.Message
}

// IsConfigMissing reports whether err is the "workspace not configured"
// classification.
func IsConfigMissing(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.ErrorCode == CodeConfigNotFound
}

// IsProfileIncomplete reports whether err should trigger the
// profile-completion redirect flow.
func IsProfileIncomplete(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	return apiErr.ErrorCode == CodeProfileNotFound || apiErr.ErrorCode == CodeNameMissing
}

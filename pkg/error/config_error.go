package error

import "net/http"

// ConfigMissingError signals that the Notion workspace configuration is
// absent. It is surfaced as a setup prompt, not as a failure.
type ConfigMissingError string

func (err ConfigMissingError) Error() string {
	return string(err)
}

func (err ConfigMissingError) ErrCode() string {
	return "NOTION_CONFIG_NOT_FOUND"
}

func (err ConfigMissingError) StatusCode() int {
	return http.StatusPreconditionFailed
}

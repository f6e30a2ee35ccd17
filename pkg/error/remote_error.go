package error

import "net/http"

// RemoteError is a permanent failure from the Notion edge API, surfaced
// after the client's retry budget is exhausted.
type RemoteError string

func (err RemoteError) Error() string {
	return string(err)
}

func (err RemoteError) ErrCode() string {
	return "REMOTE_ERROR"
}

func (err RemoteError) StatusCode() int {
	return http.StatusBadGateway
}

package utils

// ResponseData is the envelope returned by every REST handler.
// Status is used for the HTTP status code and is not serialized.
type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics on a non-nil error so the recovery middleware can
// translate typed errors into HTTP responses.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}

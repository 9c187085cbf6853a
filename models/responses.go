package models

// MessageResponse is the body returned by mutating entry endpoints. ID and
// DateModified are populated on create and update so the client can confirm
// what the server persisted without a second round trip.
type MessageResponse struct {
	Message      string `json:"message"`
	ID           string `json:"id,omitempty"`
	DateModified string `json:"date_modified,omitempty"`
}

// ErrorResponse is the body returned on any non-2xx outcome.
type ErrorResponse struct {
	Error string `json:"error"`
}

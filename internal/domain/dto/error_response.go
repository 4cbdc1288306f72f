package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx API answer.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid ticker"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid ticker: \"XYZ\""`
	Timestamp    time.Time `json:"timestamp" example:"2024-03-01T12:00:00Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

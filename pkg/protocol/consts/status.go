// Package consts carries the numeric status codes this server core can
// emit and their descriptions, reproduced verbatim from the spec rather
// than pulled from net/http (whose Title-Case descriptions don't match).
package consts

import "fmt"

const (
	StatusContinue            = 100
	StatusOK                  = 200
	StatusCreated             = 201
	StatusAccepted            = 202
	StatusNoContent           = 204
	StatusMultipleChoices     = 300
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusBadRequest          = 400
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusRequestTimeout      = 408
	StatusConflict            = 409
	StatusGone                = 410
	StatusLengthRequired      = 411
	StatusPayloadTooLarge     = 413
	StatusExpectationFailed   = 417
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusServiceUnavailable  = 503
)

var descriptions = map[int]string{
	StatusContinue:           "Continue",
	StatusOK:                 "OK",
	StatusCreated:            "Created",
	StatusAccepted:           "Accepted",
	StatusNoContent:          "No content",
	StatusMultipleChoices:    "Multiple choices",
	StatusMovedPermanently:   "Moved permanently",
	StatusFound:              "Found",
	StatusBadRequest:         "Bad request",
	StatusForbidden:          "Forbidden",
	StatusNotFound:           "Not found",
	StatusMethodNotAllowed:   "Method not allowed",
	StatusRequestTimeout:     "Request timeout",
	StatusConflict:           "Conflict",
	StatusGone:               "Gone",
	StatusLengthRequired:     "Length required",
	StatusPayloadTooLarge:    "Payload too large",
	StatusExpectationFailed:  "Expectation failed",
	StatusInternalServerError: "Internal server error",
	StatusNotImplemented:     "Not implemented",
	StatusServiceUnavailable: "Service unavailable",
}

// Describe returns the status description for code, or a fallback
// mentioning the unknown numeric code.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return fmt.Sprintf("Unknown response code %d", code)
}

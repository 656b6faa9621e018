package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeKnownCodes(t *testing.T) {
	cases := map[int]string{
		StatusContinue:           "Continue",
		StatusOK:                 "OK",
		StatusNoContent:          "No content",
		StatusBadRequest:         "Bad request",
		StatusMethodNotAllowed:   "Method not allowed",
		StatusInternalServerError: "Internal server error",
	}
	for code, want := range cases {
		assert.Equal(t, want, Describe(code))
	}
}

func TestDescribeUnknownCode(t *testing.T) {
	assert.Equal(t, "Unknown response code 999", Describe(999))
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Invalid("bad input"), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Upstream("upload failed", errors.New("refused")), http.StatusBadGateway},
		{Internal("boom", errors.New("refused")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestMessageHidesInternalCause(t *testing.T) {
	err := Internal("query failed", errors.New("dial tcp 10.0.0.5: connection refused"))
	assert.Equal(t, "internal server error", Message(err))

	assert.Equal(t, "report not found", Message(NotFound("report not found")))
	assert.Equal(t, "internal server error", Message(errors.New("raw")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("report not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("refused")
	err := Upstream("upload failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "upload failed", err.Error())
}

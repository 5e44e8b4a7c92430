package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{"bad request", BadRequest("nope"), http.StatusBadRequest},
		{"invalid date", InvalidDate("2025-02-30"), http.StatusBadRequest},
		{"missing credential", MissingCredential("BRAPI_API_KEY"), http.StatusServiceUnavailable},
		{"invalid credential", InvalidCredential("brapi", nil), http.StatusServiceUnavailable},
		{"upstream 404", Upstream(http.StatusNotFound, "not found", nil), http.StatusNotFound},
		{"upstream bogus status", Upstream(0, "weird", nil), http.StatusBadGateway},
		{"internal", Internal("boom", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestPublicMessage_HidesCredentialDetails(t *testing.T) {
	err := MissingCredential("BRAPI_API_KEY")
	assert.Equal(t, UnavailableMessage, err.PublicMessage())
	assert.NotContains(t, err.PublicMessage(), "BRAPI_API_KEY")

	err = InvalidCredential("brapi", errors.New("401"))
	assert.Equal(t, UnavailableMessage, err.PublicMessage())
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	wrapped := fmt.Errorf("calling: %w", BadRequest("bad %s", "thing"))
	got := From(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, KindBadRequest, got.Kind)
	assert.Equal(t, "bad thing", got.Message)

	foreign := From(errors.New("db down"))
	assert.Equal(t, KindInternal, foreign.Kind)
	assert.Equal(t, http.StatusInternalServerError, foreign.HTTPStatus())
}

func TestIsKindAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := fmt.Errorf("quote: %w", Upstream(http.StatusServiceUnavailable, "brapi unreachable", cause))

	assert.True(t, IsKind(err, KindUpstream))
	assert.False(t, IsKind(err, KindBadRequest))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "dial tcp")
}

package v1handler_test

import (
	"bus2ride/internal/api/handler/v1handler"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newHandler(t *testing.T, deps v1handler.Deps) *v1handler.Handler {
	t.Helper()

	h, err := v1handler.New(deps, v1handler.Options{MaxBodyBytes: 1024})
	require.NoError(t, err)

	return h
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := newHandler(t, v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := newHandler(t, v1handler.Deps{})

	// Pass the Kind sentinel directly
	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := newHandler(t, v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "need at least start and end addresses")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "need at least start and end addresses", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := newHandler(t, v1handler.Deps{})

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := newHandler(t, v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_StatusMapping(t *testing.T) {
	h := newHandler(t, v1handler.Deps{})

	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrForbidden, 403},
		{serrors.ErrConflict, 409},
		{serrors.ErrRateLimited, 429},
		{serrors.ErrTimeout, 504},
		{serrors.ErrUnavailable, 503},
		{serrors.ErrUpstream, 502},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			// kinds survive ordinary wrapping
			err := fmt.Errorf("could not do it: %w", serrors.With(tt.kind, "nope"))
			res := h.NewError(context.Background(), err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.kind.Error(), res.Response.Code)
			require.Equal(t, "nope", res.Response.Message)
		})
	}
}

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCtx(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	return ctx, w
}

func TestRespondError_MasksServerFailureDetail(t *testing.T) {
	ctx, w := newTestCtx(t)

	err := NewRequestError(errors.New("rpc error: firestore unavailable"), http.StatusInternalServerError)
	require.NoError(t, RespondError(ctx, err))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "firestore")
	assert.Contains(t, w.Body.String(), ErrInternalServerError.Error())
}

func TestRespondError_KeepsClientErrorDetail(t *testing.T) {
	ctx, w := newTestCtx(t)

	err := NewRequestError(errors.New("amount is below the minimum of 1"), http.StatusBadRequest)
	require.NoError(t, RespondError(ctx, err))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "amount is below the minimum of 1")
}

func TestRespondError_UnknownErrorIsOpaque(t *testing.T) {
	ctx, w := newTestCtx(t)

	require.NoError(t, RespondError(ctx, errors.New("dal: connection reset")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performGET(t *testing.T, h HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", ResolveEndpoint(h))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestEnvelopeSuccess(t *testing.T) {
	w, body := performGET(t, func(ctx *gin.Context) (any, *Error) {
		return map[string]int{"Value": 7}, nil
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["Success"])
	assert.Equal(t, "Operation successful", body["Message"])
	assert.Equal(t, []any{}, body["Errors"])
	data := body["Data"].(map[string]any)
	assert.Equal(t, float64(7), data["Value"])
}

func TestEnvelopeResultMessage(t *testing.T) {
	_, body := performGET(t, func(ctx *gin.Context) (any, *Error) {
		return Result{Data: "payload", Message: "Masjid retrieved successfully"}, nil
	})

	assert.Equal(t, "Masjid retrieved successfully", body["Message"])
	assert.Equal(t, "payload", body["Data"])
}

func TestEnvelopeError(t *testing.T) {
	w, body := performGET(t, func(ctx *gin.Context) (any, *Error) {
		return nil, &Error{Code: http.StatusNotFound, Message: "masjid not found"}
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["Success"])
	assert.Equal(t, "masjid not found", body["Message"])
	assert.Nil(t, body["Data"])
	assert.Equal(t, []any{}, body["Errors"])
}

func TestNewPagedResponse(t *testing.T) {
	p := NewPagedResponse([]int{1, 2, 3}, 45, 2, 10)
	assert.Equal(t, 45, p.TotalCount)
	assert.Equal(t, 2, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 5, p.TotalPages)

	p = NewPagedResponse(nil, 50, 1, 10)
	assert.Equal(t, 5, p.TotalPages)

	p = NewPagedResponse(nil, 0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)

	p = NewPagedResponse(nil, 3, 1, 0)
	assert.Equal(t, 0, p.TotalPages)
}

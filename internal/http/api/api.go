package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/http/middleware"
	"github.com/salahapp/salah-server/internal/model"
)

// Response is the envelope every endpoint answers with. The mobile client
// reads the capitalised keys, so they stay PascalCase on the wire.
type Response struct {
	Success bool     `json:"Success"`
	Message string   `json:"Message"`
	Data    any      `json:"Data"`
	Errors  []string `json:"Errors"`
}

// Error carries an HTTP status and envelope fields out of a handler.
type Error struct {
	Code    int
	Message string
	Errors  []string
}

// Result lets a handler override the default success message.
type Result struct {
	Data    any
	Message string
}

// PagedResponse wraps list payloads with paging bookkeeping.
type PagedResponse struct {
	Data       any `json:"Data"`
	TotalCount int `json:"TotalCount"`
	PageNumber int `json:"PageNumber"`
	PageSize   int `json:"PageSize"`
	TotalPages int `json:"TotalPages"`
}

func NewPagedResponse(data any, totalCount, pageNumber, pageSize int) PagedResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PagedResponse{
		Data:       data,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type HandlerFunc func(ctx *gin.Context) (any, *Error)
type HandlerFuncWithAuth func(ctx *gin.Context, admin *model.Admin) (any, *Error)

func writeResult(ctx *gin.Context, result any) {
	message := "Operation successful"
	data := result
	if r, ok := result.(Result); ok {
		data = r.Data
		if r.Message != "" {
			message = r.Message
		}
	}
	ctx.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	})
}

func writeError(ctx *gin.Context, apiErr *Error) {
	errs := apiErr.Errors
	if errs == nil {
		errs = []string{}
	}
	ctx.JSON(apiErr.Code, Response{
		Success: false,
		Message: apiErr.Message,
		Data:    nil,
		Errors:  errs,
	})
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			writeError(ctx, apiErr)
			return
		}
		writeResult(ctx, result)
	}
}

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		admin, ok := middleware.GetCurrentAdmin(ctx)
		if !ok {
			writeError(ctx, &Error{Code: http.StatusUnauthorized, Message: "unauthorized"})
			return
		}

		result, apiErr := h(ctx, admin)
		if apiErr != nil {
			writeError(ctx, apiErr)
			return
		}
		writeResult(ctx, result)
	}
}

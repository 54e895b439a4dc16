package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
)

// storeError maps store sentinels onto envelope errors; anything
// unrecognized becomes a 500 with a generic message.
func storeError(err error, notFoundMsg, conflictMsg string) *api.Error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return &api.Error{Code: http.StatusNotFound, Message: notFoundMsg}
	case errors.Is(err, db.ErrDuplicate):
		return &api.Error{Code: http.StatusConflict, Message: conflictMsg}
	default:
		return &api.Error{Code: http.StatusInternalServerError, Message: "internal error"}
	}
}

func pathID(ctx *gin.Context, name string) (int, *api.Error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, &api.Error{Code: http.StatusBadRequest, Message: "invalid " + name}
	}
	return id, nil
}

package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/model"
)

func pathID(ctx *gin.Context, name string) (int, *api.Error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, &api.Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid %s", name)}
	}
	return id, nil
}

func pathDate(ctx *gin.Context, name string) (model.Date, *api.Error) {
	d, err := model.ParseDate(ctx.Param(name))
	if err != nil {
		return model.Date{}, &api.Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid %s, expected YYYY-MM-DD", name)}
	}
	return d, nil
}

func queryFloat(ctx *gin.Context, name string) (float64, bool, *api.Error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, &api.Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid %s", name)}
	}
	return v, true, nil
}

// storeError maps store sentinels onto envelope errors. Unexpected failures
// are logged and hidden behind a generic 500.
func storeError(err error, notFoundMsg string) *api.Error {
	if errors.Is(err, db.ErrNotFound) {
		return &api.Error{Code: http.StatusNotFound, Message: notFoundMsg}
	}
	log.Error().Err(err).Msg("store operation failed")
	return &api.Error{Code: http.StatusInternalServerError, Message: "internal server error"}
}

package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/model"
)

type AdditionalTimingsController struct {
	store db.Store
}

func NewAdditionalTimingsController(store db.Store) *AdditionalTimingsController {
	return &AdditionalTimingsController{store: store}
}

// AdditionalTimingsModule mounts the daily additional timings admin endpoints.
func AdditionalTimingsModule(store db.Store) api.Module {
	ctl := NewAdditionalTimingsController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/additionaltimings", ctl.createTimings)
		c.PUT("/additionaltimings/:id", ctl.updateTimings)
		c.DELETE("/additionaltimings/:id", ctl.deleteTimings)
	})
}

func (a *AdditionalTimingsController) createTimings(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateAdditionalTimingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := a.store.GetMasjidByID(request.MasjidID); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	timings, err := a.store.CreateAdditionalTimings(model.AdditionalTimings{
		MasjidID:     request.MasjidID,
		Date:         request.Date,
		SunriseTime:  request.SunriseTime,
		SunsetTime:   request.SunsetTime,
		ZawalTime:    request.ZawalTime,
		TahajjudTime: request.TahajjudTime,
		SehriEndTime: request.SehriEndTime,
		IftarTime:    request.IftarTime,
	})
	if err != nil {
		return nil, storeError(err, "masjid not found", "additional timings for this masjid and date already exist")
	}
	return api.Result{Data: timings, Message: "Additional timings created successfully"}, nil
}

func (a *AdditionalTimingsController) updateTimings(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateAdditionalTimingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := a.store.UpdateAdditionalTimings(id, db.AdditionalTimingsPatch{
		Date:         request.Date,
		SunriseTime:  request.SunriseTime,
		SunsetTime:   request.SunsetTime,
		ZawalTime:    request.ZawalTime,
		TahajjudTime: request.TahajjudTime,
		SehriEndTime: request.SehriEndTime,
		IftarTime:    request.IftarTime,
	})
	if err != nil {
		return nil, storeError(err, "additional timings not found", "additional timings for this masjid and date already exist")
	}

	timings, err := a.store.GetAdditionalTimingsByID(id)
	if err != nil {
		return nil, storeError(err, "additional timings not found", "")
	}
	return api.Result{Data: timings, Message: "Additional timings updated successfully"}, nil
}

func (a *AdditionalTimingsController) deleteTimings(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if err := a.store.DeleteAdditionalTimings(id); err != nil {
		return nil, storeError(err, "additional timings not found", "")
	}
	return api.Result{Data: true, Message: "Additional timings deleted successfully"}, nil
}

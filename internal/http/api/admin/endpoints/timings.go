package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/notify"
)

type TimingController struct {
	store    db.Store
	notifier *notify.BoardNotifier
}

func NewTimingController(store db.Store, notifier *notify.BoardNotifier) *TimingController {
	return &TimingController{store: store, notifier: notifier}
}

// TimingModule mounts the per-date salah timing admin endpoints.
func TimingModule(store db.Store, notifier *notify.BoardNotifier) api.Module {
	ctl := NewTimingController(store, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/salahtimings", ctl.createTiming)
		c.POST("/salahtimings/batch", ctl.batchCreateTimings)
		c.PUT("/salahtimings/:id", ctl.updateTiming)
		c.DELETE("/salahtimings/:id", ctl.deleteTiming)
	})
}

func (t *TimingController) createTiming(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateSalahTimingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := t.store.GetMasjidByID(request.MasjidID); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	timing, err := t.store.CreateSalahTiming(model.SalahTiming{
		MasjidID:    request.MasjidID,
		Date:        request.Date,
		IslamicDate: request.IslamicDate,
		PrayerTimes: request.PrayerTimes,
	})
	if err != nil {
		return nil, storeError(err, "masjid not found", "timing for this masjid and date already exists")
	}

	t.notifier.PublishSchedule(request.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: timing, Message: "Salah timing created successfully"}, nil
}

// batchCreateTimings applies one prayer-time block to every date in the
// requested range, skipping dates that already have a row.
func (t *TimingController) batchCreateTimings(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.BatchCreateSalahTimingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.EndDate.Before(request.StartDate.Time) {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "EndDate must not be before StartDate"}
	}

	if _, err := t.store.GetMasjidByID(request.MasjidID); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	result := packets.BatchCreateResponse{Timings: []model.SalahTiming{}}
	for d := request.StartDate.Time; !d.After(request.EndDate.Time); d = d.AddDate(0, 0, 1) {
		timing, err := t.store.CreateSalahTiming(model.SalahTiming{
			MasjidID:    request.MasjidID,
			Date:        model.DateOf(d),
			PrayerTimes: request.PrayerTimes,
		})
		if errors.Is(err, db.ErrDuplicate) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, storeError(err, "masjid not found", "")
		}
		result.Created++
		result.Timings = append(result.Timings, *timing)
	}

	t.notifier.PublishSchedule(request.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: result, Message: "Salah timings created successfully"}, nil
}

func (t *TimingController) updateTiming(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateSalahTimingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := t.store.UpdateSalahTiming(id, db.SalahTimingPatch{
		Date:        request.Date,
		IslamicDate: request.IslamicDate,
		PrayerTimes: request.PrayerTimes,
	})
	if err != nil {
		return nil, storeError(err, "salah timing not found", "timing for this masjid and date already exists")
	}

	timing, err := t.store.GetSalahTimingByID(id)
	if err != nil {
		return nil, storeError(err, "salah timing not found", "")
	}

	t.notifier.PublishSchedule(timing.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: timing, Message: "Salah timing updated successfully"}, nil
}

func (t *TimingController) deleteTiming(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	timing, err := t.store.GetSalahTimingByID(id)
	if err != nil {
		return nil, storeError(err, "salah timing not found", "")
	}

	if err := t.store.DeleteSalahTiming(id); err != nil {
		return nil, storeError(err, "salah timing not found", "")
	}

	t.notifier.PublishSchedule(timing.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: true, Message: "Salah timing deleted successfully"}, nil
}

package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/notify"
)

type DefaultScheduleController struct {
	store    db.Store
	notifier *notify.BoardNotifier
}

func NewDefaultScheduleController(store db.Store, notifier *notify.BoardNotifier) *DefaultScheduleController {
	return &DefaultScheduleController{store: store, notifier: notifier}
}

// DefaultScheduleModule mounts the default schedule admin endpoints.
func DefaultScheduleModule(store db.Store, notifier *notify.BoardNotifier) api.Module {
	ctl := NewDefaultScheduleController(store, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/default-schedule", ctl.createSchedule)
		c.PUT("/default-schedule/:id", ctl.updateSchedule)
		c.DELETE("/default-schedule/:id", ctl.deleteSchedule)
	})
}

func (d *DefaultScheduleController) createSchedule(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateDefaultScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := d.store.GetMasjidByID(request.MasjidID); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	schedule, err := d.store.CreateDefaultSchedule(model.DefaultSchedule{
		MasjidID:    request.MasjidID,
		PrayerTimes: request.PrayerTimes,
	})
	if err != nil {
		return nil, storeError(err, "masjid not found", "masjid already has a default schedule")
	}

	d.notifier.PublishSchedule(request.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: schedule, Message: "Default schedule created successfully"}, nil
}

func (d *DefaultScheduleController) updateSchedule(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateDefaultScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := d.store.UpdateDefaultSchedule(id, request.PrayerTimes); err != nil {
		return nil, storeError(err, "default schedule not found", "")
	}

	schedule, err := d.store.GetDefaultScheduleByID(id)
	if err != nil {
		return nil, storeError(err, "default schedule not found", "")
	}

	d.notifier.PublishSchedule(schedule.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: schedule, Message: "Default schedule updated successfully"}, nil
}

func (d *DefaultScheduleController) deleteSchedule(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	schedule, err := d.store.GetDefaultScheduleByID(id)
	if err != nil {
		return nil, storeError(err, "default schedule not found", "")
	}

	if err := d.store.DeleteDefaultSchedule(id); err != nil {
		return nil, storeError(err, "default schedule not found", "")
	}

	d.notifier.PublishSchedule(schedule.MasjidID, model.DateOf(time.Now()))
	return api.Result{Data: true, Message: "Default schedule deleted successfully"}, nil
}

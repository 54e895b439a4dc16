package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/schedule"
)

type TimingController struct {
	store    db.Store
	resolver *schedule.Resolver
}

func NewTimingController(store db.Store, resolver *schedule.Resolver) *TimingController {
	return &TimingController{store: store, resolver: resolver}
}

// TimingModule mounts the public prayer-timing endpoints.
func TimingModule(store db.Store, resolver *schedule.Resolver) api.Module {
	ctl := NewTimingController(store, resolver)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/salahtimings/masjid/:masjidId", ctl.listTimings)
		c.PUBLIC_GET("/salahtimings/masjid/:masjidId/date/:date", ctl.resolveTiming)
		c.PUBLIC_GET("/salahtimings/daily-schedule/masjid/:masjidId/date/:date", ctl.dailySchedule)
		c.PUBLIC_GET("/salahtimings/default-schedule/masjid/:masjidId", ctl.defaultSchedule)
		c.PUBLIC_GET("/specialevents/masjid/:masjidId", ctl.upcomingEvents)
	})
}

// resolveTiming serves the timing the boards and the app display: exact row,
// else today's default, else the masjid's latest row. A masjid with nothing
// resolvable is a 404, not an empty payload.
func (t *TimingController) resolveTiming(ctx *gin.Context) (any, *api.Error) {
	masjidID, apiErr := pathID(ctx, "masjidId")
	if apiErr != nil {
		return nil, apiErr
	}
	date, apiErr := pathDate(ctx, "date")
	if apiErr != nil {
		return nil, apiErr
	}

	masjid, err := t.store.GetMasjidByID(masjidID)
	if err != nil {
		return nil, storeError(err, "masjid not found")
	}

	timing, err := t.resolver.ResolveTiming(masjidID, date)
	if err != nil {
		return nil, storeError(err, "salah timing not found")
	}
	if timing == nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "no salah timing available for this masjid"}
	}
	timing.MasjidName = masjid.Name
	return api.Result{Data: timing, Message: "Salah timing retrieved successfully"}, nil
}

func (t *TimingController) listTimings(ctx *gin.Context) (any, *api.Error) {
	masjidID, apiErr := pathID(ctx, "masjidId")
	if apiErr != nil {
		return nil, apiErr
	}

	var startDate, endDate *model.Date
	if raw := ctx.Query("startDate"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid startDate, expected YYYY-MM-DD"}
		}
		startDate = &d
	}
	if raw := ctx.Query("endDate"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid endDate, expected YYYY-MM-DD"}
		}
		endDate = &d
	}

	if _, err := t.store.GetMasjidByID(masjidID); err != nil {
		return nil, storeError(err, "masjid not found")
	}

	timings, err := t.store.ListSalahTimingsByMasjid(masjidID, startDate, endDate)
	if err != nil {
		return nil, storeError(err, "salah timings not found")
	}
	if timings == nil {
		timings = []model.SalahTiming{}
	}
	return api.Result{Data: timings, Message: "Salah timings retrieved successfully"}, nil
}

func (t *TimingController) dailySchedule(ctx *gin.Context) (any, *api.Error) {
	masjidID, apiErr := pathID(ctx, "masjidId")
	if apiErr != nil {
		return nil, apiErr
	}
	date, apiErr := pathDate(ctx, "date")
	if apiErr != nil {
		return nil, apiErr
	}

	ds, err := t.resolver.DailySchedule(masjidID, date)
	if err != nil {
		return nil, storeError(err, "masjid not found")
	}
	return api.Result{Data: ds, Message: "Daily schedule retrieved successfully"}, nil
}

func (t *TimingController) defaultSchedule(ctx *gin.Context) (any, *api.Error) {
	masjidID, apiErr := pathID(ctx, "masjidId")
	if apiErr != nil {
		return nil, apiErr
	}

	ds, err := t.store.GetDefaultScheduleByMasjid(masjidID)
	if err != nil {
		return nil, storeError(err, "default schedule not found")
	}
	return api.Result{Data: ds, Message: "Default schedule retrieved successfully"}, nil
}

func (t *TimingController) upcomingEvents(ctx *gin.Context) (any, *api.Error) {
	masjidID, apiErr := pathID(ctx, "masjidId")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := t.store.GetMasjidByID(masjidID); err != nil {
		return nil, storeError(err, "masjid not found")
	}

	events, err := t.store.ListUpcomingSpecialEvents(masjidID, model.DateOf(time.Now()))
	if err != nil {
		return nil, storeError(err, "special events not found")
	}
	if events == nil {
		events = []model.SpecialEvent{}
	}
	return api.Result{Data: events, Message: "Special events retrieved successfully"}, nil
}

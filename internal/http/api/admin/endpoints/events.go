package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/model"
)

type EventController struct {
	store db.Store
}

func NewEventController(store db.Store) *EventController {
	return &EventController{store: store}
}

// EventModule mounts the special event admin endpoints.
func EventModule(store db.Store) api.Module {
	ctl := NewEventController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/specialevents", ctl.createEvent)
		c.PUT("/specialevents/:id", ctl.updateEvent)
		c.DELETE("/specialevents/:id", ctl.deleteEvent)
	})
}

func (e *EventController) createEvent(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateSpecialEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := e.store.GetMasjidByID(request.MasjidID); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	event, err := e.store.CreateSpecialEvent(model.SpecialEvent{
		MasjidID:    request.MasjidID,
		EventName:   request.EventName,
		EventDate:   request.EventDate,
		EventTime:   request.EventTime,
		Description: request.Description,
	})
	if err != nil {
		return nil, storeError(err, "masjid not found", "")
	}
	return api.Result{Data: event, Message: "Special event created successfully"}, nil
}

func (e *EventController) updateEvent(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateSpecialEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := e.store.UpdateSpecialEvent(id, db.SpecialEventPatch{
		EventName:   request.EventName,
		EventDate:   request.EventDate,
		EventTime:   request.EventTime,
		Description: request.Description,
	})
	if err != nil {
		return nil, storeError(err, "special event not found", "")
	}

	event, err := e.store.GetSpecialEventByID(id)
	if err != nil {
		return nil, storeError(err, "special event not found", "")
	}
	return api.Result{Data: event, Message: "Special event updated successfully"}, nil
}

func (e *EventController) deleteEvent(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if err := e.store.DeleteSpecialEvent(id); err != nil {
		return nil, storeError(err, "special event not found", "")
	}
	return api.Result{Data: true, Message: "Special event deleted successfully"}, nil
}

package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/model"
)

type LocationController struct {
	store db.Store
}

func NewLocationController(store db.Store) *LocationController {
	return &LocationController{store: store}
}

// LocationModule mounts the state and city admin endpoints.
func LocationModule(store db.Store) api.Module {
	ctl := NewLocationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/states", ctl.createState)
		c.PUT("/states/:id", ctl.updateState)
		c.DELETE("/states/:id", ctl.deleteState)

		c.POST("/cities", ctl.createCity)
		c.PUT("/cities/:id", ctl.updateCity)
		c.DELETE("/cities/:id", ctl.deleteCity)
	})
}

func (l *LocationController) createState(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateStateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	state, err := l.store.CreateState(request.StateName)
	if err != nil {
		return nil, storeError(err, "state not found", "state already exists")
	}
	return api.Result{Data: state, Message: "State created successfully"}, nil
}

func (l *LocationController) updateState(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateStateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := l.store.UpdateState(id, request.StateName); err != nil {
		return nil, storeError(err, "state not found", "state already exists")
	}
	return api.Result{Data: true, Message: "State updated successfully"}, nil
}

func (l *LocationController) deleteState(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if err := l.store.DeleteState(id); err != nil {
		return nil, storeError(err, "state not found", "")
	}
	return api.Result{Data: true, Message: "State deleted successfully"}, nil
}

func (l *LocationController) createCity(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateCityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := l.store.GetStateByID(request.StateID); err != nil {
		return nil, storeError(err, "state not found", "")
	}

	city, err := l.store.CreateCity(request.CityName, request.StateID)
	if err != nil {
		return nil, storeError(err, "state not found", "city already exists")
	}
	return api.Result{Data: city, Message: "City created successfully"}, nil
}

func (l *LocationController) updateCity(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateCityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := l.store.UpdateCity(id, request.CityName, request.StateID); err != nil {
		return nil, storeError(err, "city not found", "city already exists")
	}
	return api.Result{Data: true, Message: "City updated successfully"}, nil
}

func (l *LocationController) deleteCity(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if err := l.store.DeleteCity(id); err != nil {
		return nil, storeError(err, "city not found", "")
	}
	return api.Result{Data: true, Message: "City deleted successfully"}, nil
}

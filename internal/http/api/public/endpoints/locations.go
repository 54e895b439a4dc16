package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
)

type LocationController struct {
	store db.Store
}

func NewLocationController(store db.Store) *LocationController {
	return &LocationController{store: store}
}

// LocationModule mounts the public state and city listings.
func LocationModule(store db.Store) api.Module {
	ctl := NewLocationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/states", ctl.listStates)
		c.PUBLIC_GET("/states/:id/cities", ctl.listCities)
	})
}

func (l *LocationController) listStates(ctx *gin.Context) (any, *api.Error) {
	states, err := l.store.ListStates()
	if err != nil {
		return nil, storeError(err, "states not found")
	}
	return api.Result{Data: states, Message: "States retrieved successfully"}, nil
}

func (l *LocationController) listCities(ctx *gin.Context) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := l.store.GetStateByID(id); err != nil {
		return nil, storeError(err, "state not found")
	}

	cities, err := l.store.ListCitiesByState(id)
	if err != nil {
		return nil, storeError(err, "state not found")
	}
	return api.Result{Data: cities, Message: "Cities retrieved successfully"}, nil
}

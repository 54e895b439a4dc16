package endpoints

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/storage"
)

type MasjidController struct {
	store        db.Store
	photoStorage storage.Storage
}

func NewMasjidController(store db.Store, photoStorage storage.Storage) *MasjidController {
	return &MasjidController{store: store, photoStorage: photoStorage}
}

// MasjidModule mounts the masjid admin endpoints.
func MasjidModule(store db.Store, photoStorage storage.Storage) api.Module {
	ctl := NewMasjidController(store, photoStorage)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/masjids", ctl.createMasjid)
		c.PUT("/masjids/:id", ctl.updateMasjid)
		c.DELETE("/masjids/:id", ctl.deleteMasjid)
		c.POST("/masjids/:id/photo", ctl.uploadPhoto)
	})
}

func (m *MasjidController) createMasjid(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	var request packets.CreateMasjidRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := m.store.GetCityByID(request.CityID); err != nil {
		return nil, storeError(err, "city not found", "")
	}

	masjid, err := m.store.CreateMasjid(model.Masjid{
		Name:          request.MasjidName,
		Address:       request.Address,
		CityID:        request.CityID,
		Latitude:      request.Latitude,
		Longitude:     request.Longitude,
		ContactNumber: request.ContactNumber,
		ImamName:      request.ImamName,
	})
	if err != nil {
		return nil, storeError(err, "city not found", "masjid already exists")
	}
	return api.Result{Data: masjid, Message: "Masjid created successfully"}, nil
}

func (m *MasjidController) updateMasjid(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateMasjidRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.CityID != nil {
		if _, err := m.store.GetCityByID(*request.CityID); err != nil {
			return nil, storeError(err, "city not found", "")
		}
	}

	err := m.store.UpdateMasjid(id, db.MasjidPatch{
		Name:          request.MasjidName,
		Address:       request.Address,
		CityID:        request.CityID,
		Latitude:      request.Latitude,
		Longitude:     request.Longitude,
		ContactNumber: request.ContactNumber,
		ImamName:      request.ImamName,
	})
	if err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	masjid, err := m.store.GetMasjidByID(id)
	if err != nil {
		return nil, storeError(err, "masjid not found", "")
	}
	return api.Result{Data: masjid, Message: "Masjid updated successfully"}, nil
}

func (m *MasjidController) deleteMasjid(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if err := m.store.DeleteMasjid(id); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}
	return api.Result{Data: true, Message: "Masjid deleted successfully"}, nil
}

// POST /api/admin/masjids/:id/photo (multipart field "photo")
func (m *MasjidController) uploadPhoto(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := m.store.GetMasjidByID(id); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "photo file is required"}
	}

	url, err := m.photoStorage.SavePhoto(fileHeader, fmt.Sprintf("masjid_%d_%s", id, fileHeader.Filename))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := m.store.SetMasjidPhoto(id, url); err != nil {
		return nil, storeError(err, "masjid not found", "")
	}
	return api.Result{Data: packets.PhotoResponse{PhotoURL: url}, Message: "Photo uploaded successfully"}, nil
}

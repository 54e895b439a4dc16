package endpoints

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/geo"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/public/packets"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50

	defaultNearbyRadiusKm = 5.0
)

type MasjidController struct {
	store db.Store
}

func NewMasjidController(store db.Store) *MasjidController {
	return &MasjidController{store: store}
}

// MasjidModule mounts the public masjid directory endpoints.
func MasjidModule(store db.Store) api.Module {
	ctl := NewMasjidController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/masjids", ctl.listMasjids)
		c.PUBLIC_GET("/masjids/nearby", ctl.nearbyMasjids)
		c.PUBLIC_GET("/masjids/:id", ctl.getMasjid)
	})
}

func (m *MasjidController) listMasjids(ctx *gin.Context) (any, *api.Error) {
	filter := db.MasjidFilter{
		Search:     ctx.Query("search"),
		PageNumber: 1,
		PageSize:   defaultPageSize,
	}

	if raw := ctx.Query("cityId"); raw != "" {
		cityID, err := strconv.Atoi(raw)
		if err != nil || cityID <= 0 {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid cityId"}
		}
		filter.CityID = &cityID
	}
	if raw := ctx.Query("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid pageNumber"}
		}
		filter.PageNumber = n
	}
	if raw := ctx.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid pageSize"}
		}
		if n > maxPageSize {
			n = maxPageSize
		}
		filter.PageSize = n
	}

	masjids, total, err := m.store.ListMasjids(filter)
	if err != nil {
		return nil, storeError(err, "masjids not found")
	}

	paged := api.NewPagedResponse(masjids, total, filter.PageNumber, filter.PageSize)
	return api.Result{Data: paged, Message: "Masjids retrieved successfully"}, nil
}

func (m *MasjidController) getMasjid(ctx *gin.Context) (any, *api.Error) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	masjid, err := m.store.GetMasjidByID(id)
	if err != nil {
		return nil, storeError(err, "masjid not found")
	}
	return api.Result{Data: masjid, Message: "Masjid retrieved successfully"}, nil
}

// nearbyMasjids filters the coordinate-bearing masjids by haversine distance.
// The directory is small enough that scanning it beats a PostGIS dependency.
func (m *MasjidController) nearbyMasjids(ctx *gin.Context) (any, *api.Error) {
	lat, ok, apiErr := queryFloat(ctx, "latitude")
	if apiErr != nil {
		return nil, apiErr
	}
	if !ok {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "latitude is required"}
	}
	lon, ok, apiErr := queryFloat(ctx, "longitude")
	if apiErr != nil {
		return nil, apiErr
	}
	if !ok {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "longitude is required"}
	}

	radius := defaultNearbyRadiusKm
	if v, ok, apiErr := queryFloat(ctx, "radius"); apiErr != nil {
		return nil, apiErr
	} else if ok {
		if v <= 0 {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "radius must be positive"}
		}
		radius = v
	}

	masjids, err := m.store.ListMasjidsWithCoordinates()
	if err != nil {
		return nil, storeError(err, "masjids not found")
	}

	nearby := []packets.NearbyMasjidResponse{}
	for _, masjid := range masjids {
		d := geo.DistanceKm(lat, lon, *masjid.Latitude, *masjid.Longitude)
		if d <= radius {
			nearby = append(nearby, packets.NearbyMasjidResponse{MasjidSummary: masjid, DistanceKm: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })

	return api.Result{Data: nearby, Message: "Nearby masjids retrieved successfully"}, nil
}

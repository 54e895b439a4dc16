package packets

import (
	"github.com/salahapp/salah-server/internal/model"
)

// NearbyMasjidResponse is a masjid summary annotated with its distance from
// the caller's position.
type NearbyMasjidResponse struct {
	model.MasjidSummary
	DistanceKm float64 `json:"DistanceKm"`
}

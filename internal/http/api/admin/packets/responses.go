package packets

import "github.com/salahapp/salah-server/internal/model"

type TokenResponse struct {
	Token string `json:"Token"`
}

type ProfileResponse struct {
	ID        int     `json:"AdminId"`
	Username  string  `json:"Username"`
	Email     string  `json:"Email"`
	FullName  *string `json:"FullName"`
	CreatedAt string  `json:"CreatedAt"`
	UpdatedAt string  `json:"UpdatedAt"`
}

// BatchCreateResponse reports what a date-range create actually did; dates
// that already had a row are skipped, not overwritten.
type BatchCreateResponse struct {
	Created int                 `json:"Created"`
	Skipped int                 `json:"Skipped"`
	Timings []model.SalahTiming `json:"Timings"`
}

type PhotoResponse struct {
	PhotoURL string `json:"PhotoUrl"`
}

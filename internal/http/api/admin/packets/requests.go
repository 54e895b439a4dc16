package packets

import (
	"github.com/salahapp/salah-server/internal/model"
)

// Field names mirror the admin console's wire format (PascalCase, matching
// the response DTOs).

type LoginRequest struct {
	Username string `json:"Username" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

type SignupRequest struct {
	Username string  `json:"Username" binding:"required"`
	Email    string  `json:"Email" binding:"required,email"`
	Password string  `json:"Password" binding:"required,min=8"`
	FullName *string `json:"FullName"`
}

type UpdateProfileRequest struct {
	Email    string  `json:"Email" binding:"required,email"`
	FullName *string `json:"FullName"`
}

type CreateStateRequest struct {
	StateName string `json:"StateName" binding:"required"`
}

type UpdateStateRequest struct {
	StateName string `json:"StateName" binding:"required"`
}

type CreateCityRequest struct {
	CityName string `json:"CityName" binding:"required"`
	StateID  int    `json:"StateId" binding:"required"`
}

type UpdateCityRequest struct {
	CityName *string `json:"CityName"`
	StateID  *int    `json:"StateId"`
}

type CreateMasjidRequest struct {
	MasjidName    string   `json:"MasjidName" binding:"required"`
	Address       string   `json:"Address" binding:"required"`
	CityID        int      `json:"CityId" binding:"required"`
	Latitude      *float64 `json:"Latitude"`
	Longitude     *float64 `json:"Longitude"`
	ContactNumber *string  `json:"ContactNumber"`
	ImamName      *string  `json:"ImamName"`
}

type UpdateMasjidRequest struct {
	MasjidName    *string  `json:"MasjidName"`
	Address       *string  `json:"Address"`
	CityID        *int     `json:"CityId"`
	Latitude      *float64 `json:"Latitude"`
	Longitude     *float64 `json:"Longitude"`
	ContactNumber *string  `json:"ContactNumber"`
	ImamName      *string  `json:"ImamName"`
}

type CreateSalahTimingRequest struct {
	MasjidID    int        `json:"MasjidId" binding:"required"`
	Date        model.Date `json:"Date" binding:"required"`
	IslamicDate *string    `json:"IslamicDate"`
	model.PrayerTimes
}

type UpdateSalahTimingRequest struct {
	Date        *model.Date `json:"Date"`
	IslamicDate *string     `json:"IslamicDate"`
	model.PrayerTimes
}

// BatchCreateSalahTimingRequest applies one timing block to every date in
// [StartDate, EndDate].
type BatchCreateSalahTimingRequest struct {
	MasjidID  int        `json:"MasjidId" binding:"required"`
	StartDate model.Date `json:"StartDate" binding:"required"`
	EndDate   model.Date `json:"EndDate" binding:"required"`
	model.PrayerTimes
}

type CreateDefaultScheduleRequest struct {
	MasjidID int `json:"MasjidId" binding:"required"`
	model.PrayerTimes
}

type UpdateDefaultScheduleRequest struct {
	model.PrayerTimes
}

type CreateAdditionalTimingsRequest struct {
	MasjidID     int              `json:"MasjidId" binding:"required"`
	Date         model.Date       `json:"Date" binding:"required"`
	SunriseTime  *model.TimeOfDay `json:"SunriseTime"`
	SunsetTime   *model.TimeOfDay `json:"SunsetTime"`
	ZawalTime    *model.TimeOfDay `json:"ZawalTime"`
	TahajjudTime *model.TimeOfDay `json:"TahajjudTime"`
	SehriEndTime *model.TimeOfDay `json:"SehriEndTime"`
	IftarTime    *model.TimeOfDay `json:"IftarTime"`
}

type UpdateAdditionalTimingsRequest struct {
	Date         *model.Date      `json:"Date"`
	SunriseTime  *model.TimeOfDay `json:"SunriseTime"`
	SunsetTime   *model.TimeOfDay `json:"SunsetTime"`
	ZawalTime    *model.TimeOfDay `json:"ZawalTime"`
	TahajjudTime *model.TimeOfDay `json:"TahajjudTime"`
	SehriEndTime *model.TimeOfDay `json:"SehriEndTime"`
	IftarTime    *model.TimeOfDay `json:"IftarTime"`
}

type CreateSpecialEventRequest struct {
	MasjidID    int              `json:"MasjidId" binding:"required"`
	EventName   string           `json:"EventName" binding:"required"`
	EventDate   model.Date       `json:"EventDate" binding:"required"`
	EventTime   *model.TimeOfDay `json:"EventTime"`
	Description *string          `json:"Description"`
}

type UpdateSpecialEventRequest struct {
	EventName   *string          `json:"EventName"`
	EventDate   *model.Date      `json:"EventDate"`
	EventTime   *model.TimeOfDay `json:"EventTime"`
	Description *string          `json:"Description"`
}

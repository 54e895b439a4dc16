package model

import "time"

// PrayerTimes is the azan/iqamah pair block shared by the per-date timing
// rows and the default schedule template. All fields are optional; a masjid
// may publish azan-only or iqamah-only times.
type PrayerTimes struct {
	FajrAzanTime      *TimeOfDay `db:"fajr_azan_time" json:"FajrAzanTime"`
	FajrIqamahTime    *TimeOfDay `db:"fajr_iqamah_time" json:"FajrIqamahTime"`
	DhuhrAzanTime     *TimeOfDay `db:"dhuhr_azan_time" json:"DhuhrAzanTime"`
	DhuhrIqamahTime   *TimeOfDay `db:"dhuhr_iqamah_time" json:"DhuhrIqamahTime"`
	AsrAzanTime       *TimeOfDay `db:"asr_azan_time" json:"AsrAzanTime"`
	AsrIqamahTime     *TimeOfDay `db:"asr_iqamah_time" json:"AsrIqamahTime"`
	MaghribAzanTime   *TimeOfDay `db:"maghrib_azan_time" json:"MaghribAzanTime"`
	MaghribIqamahTime *TimeOfDay `db:"maghrib_iqamah_time" json:"MaghribIqamahTime"`
	IshaAzanTime      *TimeOfDay `db:"isha_azan_time" json:"IshaAzanTime"`
	IshaIqamahTime    *TimeOfDay `db:"isha_iqamah_time" json:"IshaIqamahTime"`
	JummahAzanTime    *TimeOfDay `db:"jummah_azan_time" json:"JummahAzanTime"`
	JummahIqamahTime  *TimeOfDay `db:"jummah_iqamah_time" json:"JummahIqamahTime"`
}

// SalahTiming is the prayer timing actually recorded for one masjid on one
// calendar date. Unique per (MasjidID, Date).
type SalahTiming struct {
	ID          int     `db:"id" json:"SalahId"`
	MasjidID    int     `db:"masjid_id" json:"MasjidId"`
	Date        Date    `db:"date" json:"Date"`
	IslamicDate *string `db:"islamic_date" json:"IslamicDate"`
	PrayerTimes
}

// DefaultSchedule is the single fallback template per masjid, served when no
// date-specific row exists for the current day.
type DefaultSchedule struct {
	ID       int `db:"id" json:"ScheduleId"`
	MasjidID int `db:"masjid_id" json:"MasjidId"`
	PrayerTimes
	LastUpdated time.Time `db:"last_updated" json:"LastUpdated"`
}

// AdditionalTimings holds the non-prayer timings for one masjid and date.
// Unique per (MasjidID, Date).
type AdditionalTimings struct {
	ID           int        `db:"id" json:"AdditionalId"`
	MasjidID     int        `db:"masjid_id" json:"MasjidId"`
	Date         Date       `db:"date" json:"Date"`
	SunriseTime  *TimeOfDay `db:"sunrise_time" json:"SunriseTime"`
	SunsetTime   *TimeOfDay `db:"sunset_time" json:"SunsetTime"`
	ZawalTime    *TimeOfDay `db:"zawal_time" json:"ZawalTime"`
	TahajjudTime *TimeOfDay `db:"tahajjud_time" json:"TahajjudTime"`
	SehriEndTime *TimeOfDay `db:"sehri_end_time" json:"SehriEndTime"`
	IftarTime    *TimeOfDay `db:"iftar_time" json:"IftarTime"`
}

// SpecialEvent is a one-off masjid event on a fixed date. Events are never
// date-fallback resolved; a daily schedule only lists exact-date matches.
type SpecialEvent struct {
	ID          int        `db:"id" json:"EventId"`
	MasjidID    int        `db:"masjid_id" json:"MasjidId"`
	EventName   string     `db:"event_name" json:"EventName"`
	EventDate   Date       `db:"event_date" json:"EventDate"`
	EventTime   *TimeOfDay `db:"event_time" json:"EventTime"`
	Description *string    `db:"description" json:"Description"`
}

package model

import "time"

type State struct {
	ID   int    `db:"id" json:"StateId"`
	Name string `db:"name" json:"StateName"`
}

type City struct {
	ID      int    `db:"id" json:"CityId"`
	Name    string `db:"name" json:"CityName"`
	StateID int    `db:"state_id" json:"StateId"`
}

type Masjid struct {
	ID            int       `db:"id" json:"MasjidId"`
	Name          string    `db:"name" json:"MasjidName"`
	Address       string    `db:"address" json:"Address"`
	CityID        int       `db:"city_id" json:"CityId"`
	Latitude      *float64  `db:"latitude" json:"Latitude"`
	Longitude     *float64  `db:"longitude" json:"Longitude"`
	ContactNumber *string   `db:"contact_number" json:"ContactNumber"`
	ImamName      *string   `db:"imam_name" json:"ImamName"`
	PhotoURL      *string   `db:"photo_url" json:"PhotoUrl"`
	CreatedAt     time.Time `db:"created_at" json:"-"`
	UpdatedAt     time.Time `db:"updated_at" json:"-"`
}

// MasjidSummary is the joined display view (city and state names resolved)
// used in lists and inside resolved schedules.
type MasjidSummary struct {
	Masjid
	CityName  string `db:"city_name" json:"CityName"`
	StateName string `db:"state_name" json:"StateName"`
}

package domain

import "time"

// Flight представляет текущее состояние полёта по данным OpenSky
type Flight struct {
	ICAO24        string    `json:"icao24"`
	Callsign      string    `json:"callsign"`
	OriginCountry string    `json:"origin_country"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	BaroAltitude  float64   `json:"baro_altitude"`
	Velocity      float64   `json:"velocity"`
	Track         float64   `json:"true_track"`
	OnGround      bool      `json:"on_ground"`
	LastContact   time.Time `json:"last_contact"`
}

package models

import "database/sql"

// Observation represents one daily row of the weather_data table
type Observation struct {
	StationCode    string          `db:"station_code" json:"station_code"`
	ObsDate        string          `db:"obs_date" json:"obs_date"`
	MaxTemp        sql.NullFloat64 `db:"max_temp" json:"max_temp,omitempty"`
	MinTemp        sql.NullFloat64 `db:"min_temp" json:"min_temp,omitempty"`
	AvgTemp        sql.NullFloat64 `db:"avg_temp" json:"avg_temp,omitempty"`
	Precipitation  sql.NullFloat64 `db:"precipitation" json:"precipitation,omitempty"`
	AvgWindSpeed   sql.NullFloat64 `db:"avg_wind_speed" json:"avg_wind_speed,omitempty"`
	SolarRadiation sql.NullFloat64 `db:"solar_radiation" json:"solar_radiation,omitempty"`
	RelHumidity    sql.NullFloat64 `db:"rel_humidity" json:"rel_humidity,omitempty"`
	SoilTemp4In    sql.NullFloat64 `db:"soil_temp_4in" json:"soil_temp_4in,omitempty"`
}

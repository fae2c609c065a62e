package models

import "database/sql"

// Station represents the stations table
type Station struct {
	StationCode string          `db:"station_code" json:"station_code"`
	StationName string          `db:"station_name" json:"station_name"`
	City        sql.NullString  `db:"city" json:"city,omitempty"`
	County      sql.NullString  `db:"county" json:"county,omitempty"`
	Latitude    sql.NullFloat64 `db:"latitude" json:"latitude,omitempty"`
	Longitude   sql.NullFloat64 `db:"longitude" json:"longitude,omitempty"`
	ElevationM  sql.NullFloat64 `db:"elevation_m" json:"elevation_m,omitempty"`
}

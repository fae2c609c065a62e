package importer

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nonsonwune/warm_db/models"
)

// expected CSV header for daily observation exports
var observationColumns = []string{
	"station_code", "obs_date", "max_temp", "min_temp", "avg_temp",
	"precipitation", "avg_wind_speed", "solar_radiation", "rel_humidity", "soil_temp_4in",
}

const insertObservation = `
	INSERT INTO weather_data (
		station_code, obs_date, max_temp, min_temp, avg_temp,
		precipitation, avg_wind_speed, solar_radiation, rel_humidity, soil_temp_4in
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (station_code, obs_date) DO UPDATE SET
		max_temp = EXCLUDED.max_temp,
		min_temp = EXCLUDED.min_temp,
		avg_temp = EXCLUDED.avg_temp,
		precipitation = EXCLUDED.precipitation,
		avg_wind_speed = EXCLUDED.avg_wind_speed,
		solar_radiation = EXCLUDED.solar_radiation,
		rel_humidity = EXCLUDED.rel_humidity,
		soil_temp_4in = EXCLUDED.soil_temp_4in`

// Summary reports the outcome of one import run.
type Summary struct {
	Imported int
	Failed   int
	Errors   []string
}

// ImportObservations loads a daily observation CSV into weather_data. The
// whole file is one transaction; individual bad rows are skipped and
// reported, not fatal.
func ImportObservations(db *sql.DB, path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertObservation)
	if err != nil {
		return nil, fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	summary := &Summary{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.fail(line, err)
			continue
		}

		obs, err := parseObservation(record)
		if err != nil {
			summary.fail(line, err)
			continue
		}

		_, err = stmt.Exec(
			obs.StationCode, obs.ObsDate, obs.MaxTemp, obs.MinTemp, obs.AvgTemp,
			obs.Precipitation, obs.AvgWindSpeed, obs.SolarRadiation, obs.RelHumidity, obs.SoilTemp4In,
		)
		if err != nil {
			summary.fail(line, err)
			continue
		}
		summary.Imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing import: %w", err)
	}
	return summary, nil
}

func checkHeader(header []string) error {
	if len(header) != len(observationColumns) {
		return fmt.Errorf("expected %d columns, got %d", len(observationColumns), len(header))
	}
	for i, want := range observationColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseObservation(record []string) (*models.Observation, error) {
	if len(record) != len(observationColumns) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(observationColumns), len(record))
	}

	obs := &models.Observation{
		StationCode: strings.ToUpper(strings.TrimSpace(record[0])),
		ObsDate:     strings.TrimSpace(record[1]),
	}
	if obs.StationCode == "" || obs.ObsDate == "" {
		return nil, fmt.Errorf("missing station_code or obs_date")
	}

	values := []*sql.NullFloat64{
		&obs.MaxTemp, &obs.MinTemp, &obs.AvgTemp, &obs.Precipitation,
		&obs.AvgWindSpeed, &obs.SolarRadiation, &obs.RelHumidity, &obs.SoilTemp4In,
	}
	for i, dst := range values {
		raw := strings.TrimSpace(record[i+2])
		// WARM exports mark missing sensor readings with "M"
		if raw == "" || strings.EqualFold(raw, "M") {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q for %s", raw, observationColumns[i+2])
		}
		dst.Float64 = f
		dst.Valid = true
	}
	return obs, nil
}

func (s *Summary) fail(line int, err error) {
	s.Failed++
	if len(s.Errors) < 20 {
		s.Errors = append(s.Errors, fmt.Sprintf("line %d: %v", line, err))
	}
}

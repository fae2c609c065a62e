package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "station_code,obs_date,max_temp,min_temp,avg_temp,precipitation,avg_wind_speed,solar_radiation,rel_humidity,soil_temp_4in\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportObservations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO weather_data")
	prep.ExpectExec().
		WithArgs("CMI", "2026-08-01", 88.2, 65.1, 76.6, 0.0, 6.2, 22.51, 71.0, 77.3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("ICC", "2026-08-01", 85.0, nil, 75.2, 0.12, nil, 21.0, 68.5, 76.1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	path := writeCSV(t, csvHeader+
		"CMI,2026-08-01,88.2,65.1,76.6,0.00,6.2,22.51,71.0,77.3\n"+
		"icc,2026-08-01,85.0,M,75.2,0.12,,21.0,68.5,76.1\n")

	summary, err := ImportObservations(db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Zero(t, summary.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportSkipsBadRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO weather_data")
	prep.ExpectExec().
		WithArgs("CMI", "2026-08-01", 88.2, 65.1, 76.6, 0.0, 6.2, 22.51, 71.0, 77.3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	path := writeCSV(t, csvHeader+
		"CMI,2026-08-01,88.2,65.1,76.6,0.00,6.2,22.51,71.0,77.3\n"+
		"CMI,2026-08-02,not-a-number,65.1,76.6,0.00,6.2,22.51,71.0,77.3\n"+
		",2026-08-03,88.2,65.1,76.6,0.00,6.2,22.51,71.0,77.3\n")

	summary, err := ImportObservations(db, path)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 2, summary.Failed)
	assert.Len(t, summary.Errors, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRejectsWrongHeader(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	path := writeCSV(t, "site,date,temp\nCMI,2026-08-01,80.0\n")

	_, err = ImportObservations(db, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestImportMissingFile(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = ImportObservations(db, filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artcrm/models"
)

func mskLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return loc
}

func TestCreateReport(t *testing.T) {
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	loc := mskLocation(t)
	dt := time.Date(2026, 2, 5, 14, 30, 0, 0, loc)

	created, err := db.CreateReport(context.Background(), models.Report{
		Dt:      dt,
		Project: "Landing page",
		Manager: "manager",
		Status:  "On Time",
		Comment: "handed off to review",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Landing page", created.Project)
	assert.Equal(t, "On Time", created.Status)
	assert.Equal(t, "handed off to review", created.Comment)
	assert.Equal(t, dt.Year(), created.Dt.Year())
	assert.Equal(t, dt.Day(), created.Dt.Day())
	assert.Equal(t, dt.Hour(), created.Dt.Hour())
}

func TestListReports_DateRange(t *testing.T) {
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()
	loc := mskLocation(t)

	mkReport := func(dt time.Time) {
		_, err := db.CreateReport(ctx, models.Report{
			Dt: dt, Project: "Landing page", Manager: "manager", Status: "On Time",
		})
		require.NoError(t, err)
	}

	// last second of Feb 5 and noon of Feb 6
	mkReport(time.Date(2026, 2, 5, 23, 59, 59, 0, loc))
	mkReport(time.Date(2026, 2, 6, 12, 0, 0, 0, loc))

	// to=2026-02-05 includes the 23:59:59 report
	reports, err := db.ListReports(ctx, models.ReportQueryParams{To: "2026-02-05"}, loc)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 5, reports[0].Dt.Day())

	// to=2026-02-04 excludes it
	reports, err = db.ListReports(ctx, models.ReportQueryParams{To: "2026-02-04"}, loc)
	require.NoError(t, err)
	assert.Empty(t, reports)

	// from=2026-02-06 keeps only the later report
	reports, err = db.ListReports(ctx, models.ReportQueryParams{From: "2026-02-06"}, loc)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 6, reports[0].Dt.Day())

	// both bounds combine with AND
	reports, err = db.ListReports(ctx, models.ReportQueryParams{From: "2026-02-05", To: "2026-02-06"}, loc)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestListReports_SearchCombinesWithDates(t *testing.T) {
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()
	loc := mskLocation(t)
	dt := time.Date(2026, 2, 5, 10, 0, 0, 0, loc)

	_, err := db.CreateReport(ctx, models.Report{Dt: dt, Project: "Landing page", Manager: "manager", Status: "On Time"})
	require.NoError(t, err)
	_, err = db.CreateReport(ctx, models.Report{Dt: dt, Project: "Mobile app", Manager: "manager", Status: "Delayed"})
	require.NoError(t, err)

	reports, err := db.ListReports(ctx, models.ReportQueryParams{
		Q: "delayed", From: "2026-02-05", To: "2026-02-05",
	}, loc)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Mobile app", reports[0].Project)
}

func TestListReports_OrderedNewestFirst(t *testing.T) {
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()
	loc := mskLocation(t)

	_, err := db.CreateReport(ctx, models.Report{
		Dt: time.Date(2026, 2, 1, 9, 0, 0, 0, loc), Project: "Older", Manager: "manager", Status: "On Time",
	})
	require.NoError(t, err)
	_, err = db.CreateReport(ctx, models.Report{
		Dt: time.Date(2026, 2, 3, 9, 0, 0, 0, loc), Project: "Newer", Manager: "manager", Status: "On Time",
	})
	require.NoError(t, err)

	reports, err := db.ListReports(ctx, models.ReportQueryParams{}, loc)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Newer", reports[0].Project)
	assert.Equal(t, "Older", reports[1].Project)
}

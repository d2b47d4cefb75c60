package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportFixture(t *testing.T) (*statsFixture, ExportService) {
	t.Helper()
	f := newStatsFixture(t)
	f.seed(t)
	return f, NewExportService(f.userRepo, f.jobRepo, f.newsRepo, f.appRepo, f.inquiryRepo)
}

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportService_Jobs(t *testing.T) {
	_, svc := newExportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf, "jobs"))

	rows := readCSV(t, &buf)
	require.Len(t, rows, 3) // header plus the two seeded jobs
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "title", rows[0][1])
	assert.Equal(t, "Warehouse Supervisor", rows[1][1])
}

func TestExportService_Users(t *testing.T) {
	_, svc := newExportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf, "users"))

	rows := readCSV(t, &buf)
	require.Len(t, rows, 3)
	for _, row := range rows[1:] {
		assert.Contains(t, row[2], "@example.com")
	}
}

func TestExportService_EmptyTableExportsHeaderOnly(t *testing.T) {
	f := newStatsFixture(t)
	svc := NewExportService(f.userRepo, f.jobRepo, f.newsRepo, f.appRepo, f.inquiryRepo)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf, "inquiries"))

	rows := readCSV(t, &buf)
	require.Len(t, rows, 1)
}

func TestExportService_UnknownEntity(t *testing.T) {
	_, svc := newExportFixture(t)

	var buf bytes.Buffer
	err := svc.ExportCSV(&buf, "payments")
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestExportService_LargeTablePagesThrough(t *testing.T) {
	f := newStatsFixture(t)
	svc := NewExportService(f.userRepo, f.jobRepo, f.newsRepo, f.appRepo, f.inquiryRepo)

	jobSvc := NewJobService(f.jobRepo)
	for i := 0; i < exportBatchSize+10; i++ {
		_, err := jobSvc.Create("u1", createJobRequest())
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf, "jobs"))

	rows := readCSV(t, &buf)
	assert.Len(t, rows, exportBatchSize+11)
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename("jobs")
	assert.Contains(t, name, "jobs-")
	assert.Contains(t, name, ".csv")
}

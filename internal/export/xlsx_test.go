package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type row struct {
	Name   string
	Tags   []string
	Amount decimal.Decimal
	When   *time.Time
}

func TestWriteXLSX(t *testing.T) {
	when := time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)
	columns := []Column[row]{
		{Header: "Name", Value: func(r row) interface{} { return r.Name }},
		{Header: "Tags", Value: func(r row) interface{} { return List(r.Tags) }},
		{Header: "Amount", Value: func(r row) interface{} { return Amount(r.Amount) }},
		{Header: "When", Value: func(r row) interface{} { return Time(r.When) }},
	}
	rows := []row{
		{Name: "Gala", Tags: []string{"fundraising", "formal"}, Amount: decimal.RequireFromString("2500.50"), When: &when},
		{Name: "Meetup"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "events", columns, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"events"}, f.GetSheetList())

	got, err := f.GetRows("events")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Name", "Tags", "Amount", "When"}, got[0])
	assert.Equal(t, []string{"Gala", "fundraising, formal", "2500.5", "2026-05-04 18:30:00"}, got[1])
	assert.Equal(t, "Meetup", got[2][0])
}

func TestWriteXLSX_NoRows(t *testing.T) {
	columns := []Column[row]{{Header: "Name", Value: func(r row) interface{} { return r.Name }}}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Sheet1", columns, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name"}}, got)
}

func TestTime(t *testing.T) {
	assert.Equal(t, "", Time(nil))
	assert.Equal(t, "", Time(&time.Time{}))

	local := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+2", 2*3600))
	assert.Equal(t, "2026-01-02 01:04:05", Stamp(local))
}

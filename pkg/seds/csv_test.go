package seds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Year,StateCode,MSN,Description,Unit,Data",
		"2019,TX,TETCB,Total consumption,Billion Btu,100",
		"2020,TX,TETCB,Total consumption,Billion Btu,120",
		"2020,CA,TETCB,Total consumption,Billion Btu,80",
		"2020,,TETCB,Total consumption,Billion Btu,50",
		"2020,WA,TETCB,Total consumption,Billion Btu,n/a",
	}, "\n")

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{Year: 2019, State: "TX", MSN: "TETCB", Description: "Total consumption", Unit: "Billion Btu", Value: 100}, records[0])
	assert.Equal(t, "CA", records[2].State)
}

func TestParseCSVRaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"Year,State,MSN,Data",
		"2020,TX,TETCB,120,extra,columns",
		"2020,CA",
		"2021,CA,TETCB,80",
	}, "\n")

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, float64(120), records[0].Value)
	assert.Equal(t, float64(80), records[1].Value)
}

func TestParseCSVNoUsableHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "unrecognized columns", input: "foo,bar,baz\n1,2,3\n"},
		{name: "header only missing value", input: "Year,State,MSN\n2020,TX,TETCB\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrNoUsableHeader)
		})
	}
}

func TestParseCSVEmptyBody(t *testing.T) {
	records, err := ParseCSV(strings.NewReader("Year,State,MSN,Data\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

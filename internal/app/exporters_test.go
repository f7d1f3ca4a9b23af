package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	rows := ExpandAll([]Event{{
		Start:   date(2024, time.February, 10),
		End:     date(2024, time.February, 13),
		Summary: "The second day of Chinese New Year",
	}})

	want := "holiday_date,holiday_name,holiday_period\n" +
		"2024-02-10,The second day of Chinese New Year,CNY\n" +
		"2024-02-11,The second day of Chinese New Year,CNY\n" +
		"2024-02-12,The second day of Chinese New Year,CNY"

	assert.Equal(t, want, string(RenderCSV(rows)))
}

func TestRenderCSVEmpty(t *testing.T) {
	assert.Equal(t, CSVHeader+"\n", string(RenderCSV(nil)))
}

func TestRenderCSVSanitizesCommas(t *testing.T) {
	rows := []Row{{Date: date(2024, time.December, 26), Name: "Holiday, observed", Period: PeriodHoliday}}
	body := string(RenderCSV(rows))

	if !strings.Contains(body, "2024-12-26,Holiday  observed,HOLIDAY") {
		t.Errorf("Expected comma replaced by space, got:\n%s", body)
	}
	for i, line := range strings.Split(body, "\n") {
		if n := strings.Count(line, ","); n != 2 {
			t.Errorf("Line %d has %d commas: %q", i, n, line)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Holiday  observed", SanitizeName("Holiday, observed"))
	assert.Equal(t, "a b c", SanitizeName("a,b,c"))
	assert.Equal(t, "Labour Day", SanitizeName("Labour Day"))
}

func TestReadCSV(t *testing.T) {
	rows := []Row{
		{Date: date(2024, time.December, 25), Name: "Christmas Day", Period: PeriodXmasNewYear},
		{Date: date(2024, time.December, 26), Name: "Boxing Day, observed", Period: PeriodXmasNewYear},
	}

	records, err := ReadCSV(bytes.NewReader(RenderCSV(rows)))
	require.NoError(t, err)

	want := []Record{
		{Date: "2024-12-25", Name: "Christmas Day", Period: "XMAS_NEWYEAR"},
		{Date: "2024-12-26", Name: "Boxing Day  observed", Period: "XMAS_NEWYEAR"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVQuotesAreLiteral(t *testing.T) {
	names := []string{
		`The "Big" Day`,
		`"Quoted" Day`,
		`Trailing quote"`,
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rows := []Row{
				{Date: date(2024, time.May, 1), Name: name, Period: PeriodHoliday},
				{Date: date(2024, time.May, 2), Name: "Labour Day", Period: PeriodLabourDay},
			}

			records, err := ReadCSV(bytes.NewReader(RenderCSV(rows)))
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, name, records[0].Name)
			assert.Equal(t, "HOLIDAY", records[0].Period)
			assert.Equal(t, "Labour Day", records[1].Name)
		})
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	records, err := ReadCSV(bytes.NewReader(RenderCSV(nil)))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadCSVEmbeddedNewline(t *testing.T) {
	// A newline inside a name splits the line; the reader reports it instead of misreading columns
	rows := []Row{{Date: date(2024, time.May, 1), Name: "Two\nLines", Period: PeriodHoliday}}
	_, err := ReadCSV(bytes.NewReader(RenderCSV(rows)))
	assert.ErrorContains(t, err, "expected 3 fields")
}

func TestRecordsOn(t *testing.T) {
	records := []Record{
		{Date: "2024-12-25", Name: "Christmas Day", Period: "XMAS_NEWYEAR"},
		{Date: "2024-12-26", Name: "Boxing Day", Period: "XMAS_NEWYEAR"},
		{Date: "2024-12-26", Name: "Other", Period: "HOLIDAY"},
	}
	assert.Len(t, RecordsOn(records, date(2024, time.December, 26)), 2)
	assert.Empty(t, RecordsOn(records, date(2024, time.December, 27)))
}

func TestDigest(t *testing.T) {
	// BLAKE2b-256 of the empty input
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", Digest(nil))

	a := Digest([]byte(CSVHeader))
	assert.Len(t, a, 64)
	assert.Equal(t, a, Digest([]byte(CSVHeader)))
	assert.NotEqual(t, a, Digest([]byte(CSVHeader+"\n")))
}

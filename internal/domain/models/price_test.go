package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTruncateToDate(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc midnight", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
		{"utc afternoon", time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC), "2024-03-01"},
		{"exchange local", time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*3600)), "2024-03-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateToDate(tc.in)
			if got.Format(DateLayout) != tc.want {
				t.Fatalf("got %s, want %s", got.Format(DateLayout), tc.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
				t.Fatalf("time of day not dropped: %v", got)
			}
		})
	}
}

func TestPriceRow_MarshalJSON(t *testing.T) {
	row := PriceRow{
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Close:  decimal.RequireFromString("511.7"),
		Volume: 42,
	}
	b, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"date":"2024-03-01"`) || !strings.Contains(s, `"close":"511.7"`) || !strings.Contains(s, `"volume":42`) {
		t.Fatalf("unexpected json: %s", s)
	}
}

func TestPriceRow_JSONRoundTrip(t *testing.T) {
	in := NamedSeries{
		Symbol:   "IVV",
		Name:     "iShares Core S&P 500 ETF",
		Currency: "USD",
		Rows: []PriceRow{{
			Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Open:     decimal.RequireFromString("509.5"),
			High:     decimal.RequireFromString("510"),
			Low:      decimal.RequireFromString("508"),
			Close:    decimal.RequireFromString("509.9"),
			AdjClose: decimal.RequireFromString("509.8"),
			Volume:   2000,
		}},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out NamedSeries
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	got, want := out.Rows[0], in.Rows[0]
	if !got.Date.Equal(want.Date) || !got.Close.Equal(want.Close) || !got.AdjClose.Equal(want.AdjClose) || got.Volume != want.Volume {
		t.Fatalf("round trip changed the row: %+v != %+v", got, want)
	}
	if out.Symbol != in.Symbol || out.Currency != in.Currency {
		t.Fatalf("round trip changed the series: %+v", out)
	}
}

func TestPriceRow_UnmarshalJSON_Dates(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "calendar date", in: `{"date":"2024-03-01","close":"1"}`, want: "2024-03-01"},
		{name: "missing date", in: `{"close":"1"}`, want: "0001-01-01"},
		{name: "timestamp rejected", in: `{"date":"2024-03-01T00:00:00Z"}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r PriceRow
			err := json.Unmarshal([]byte(tc.in), &r)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if r.Date.Format(DateLayout) != tc.want {
				t.Fatalf("date=%s, want %s", r.Date.Format(DateLayout), tc.want)
			}
		})
	}
}

func TestNamedSeries_LabelAndCloses(t *testing.T) {
	d1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := NamedSeries{Symbol: "IVV", Rows: []PriceRow{{Date: d1, Close: decimal.NewFromFloat(1.5)}}}
	if s.Label() != "IVV" {
		t.Fatalf("label=%q", s.Label())
	}
	s.Name = "iShares"
	if s.Label() != "iShares" {
		t.Fatalf("label=%q", s.Label())
	}
	xs, ys := s.Closes()
	if len(xs) != 1 || !xs[0].Equal(d1) || ys[0] != 1.5 {
		t.Fatalf("closes=%v %v", xs, ys)
	}
}

package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"rfc3339", `"2023-11-14T22:13:20+00:00"`, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{"rfc3339 with offset", `"2023-11-14T23:13:20+01:00"`, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{"mysql datetime", `"2021-06-01 10:30:00"`, time.Date(2021, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", `"2024-01-31"`, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
		{"false", `false`, time.Time{}},
		{"zero date", `"0000-00-00 00:00:00"`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Time = %v, want %v", got.Time, tt.expected)
			}
		})
	}
}

func TestTime_UnmarshalJSON_Invalid(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte(`"yesterday"`), &got); err == nil {
		t.Error("Unmarshal() should reject an unrecognized date")
	}
}

func TestUnixTime_UnmarshalJSON(t *testing.T) {
	want := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"number", `1700000000`, want},
		{"string", `"1700000000"`, want},
		{"zero", `0`, time.Time{}},
		{"null", `null`, time.Time{}},
		{"false", `false`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got UnixTime
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("UnixTime = %v, want %v", got.Time, tt.expected)
			}
			if !got.IsZero() && got.Location() != time.UTC {
				t.Errorf("Location = %v, want UTC", got.Location())
			}
		})
	}
}

func TestBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`1`, true},
		{`"1"`, true},
		{`0`, false},
		{`""`, false},
		{`null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Bool
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if bool(got) != tt.expected {
				t.Errorf("Bool = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`12.0`, 12},
		{`""`, 0},
		{`null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Int
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if int(got) != tt.expected {
				t.Errorf("Int = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"abc"`, "abc"},
		{`76561198000000000`, "76561198000000000"},
		{`null`, ""},
		{`false`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got String
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("String = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"100.00"`, "100"},
		{`12.5`, "12.5"},
		{`""`, "0"},
		{`null`, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Decimal
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if d.String() != tt.want {
				t.Errorf("Decimal = %s, want %s", d, tt.want)
			}
		})
	}

	var d Decimal
	if err := json.Unmarshal([]byte(`"abc"`), &d); err == nil {
		t.Error("Unmarshal(\"abc\") should fail")
	}
}

func TestTotals_UnmarshalJSON(t *testing.T) {
	var empty Totals
	if err := json.Unmarshal([]byte(`[]`), &empty); err != nil {
		t.Fatalf("Unmarshal([]) error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("Totals = %v, want empty non-nil map", empty)
	}

	var totals Totals
	if err := json.Unmarshal([]byte(`{"USD":12.5,"EUR":"3","GBP":""}`), &totals); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !totals["USD"].Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("USD = %s, want 12.5", totals["USD"])
	}
	if !totals["EUR"].Equal(decimal.NewFromInt(3)) {
		t.Errorf("EUR = %s, want 3", totals["EUR"])
	}
	if !totals["GBP"].IsZero() {
		t.Errorf("GBP = %s, want 0", totals["GBP"])
	}
}

func TestDecodeEmbedded(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantNil bool
	}{
		{"string json", `"{\"rank\":\"VIP\"}"`, false},
		{"object", `{"rank":"VIP"}`, false},
		{"empty string", `""`, true},
		{"null", `null`, true},
		{"absent", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEmbedded(json.RawMessage(tt.input))
			if err != nil {
				t.Fatalf("DecodeEmbedded() error = %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("DecodeEmbedded() = %v, want nil", got)
				}
				return
			}
			m, ok := got.(map[string]any)
			if !ok || m["rank"] != "VIP" {
				t.Errorf("DecodeEmbedded() = %v, want map with rank VIP", got)
			}
		})
	}
}

func TestDecodeEmbedded_Malformed(t *testing.T) {
	if _, err := DecodeEmbedded(json.RawMessage(`"{not json"`)); err == nil {
		t.Error("DecodeEmbedded() should fail on malformed embedded JSON")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate() = %v", got)
	}
}

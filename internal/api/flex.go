package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The plugin API is served by PHP and is loose about JSON types: dates come
// as ISO strings, "Y-m-d H:i:s" strings or UNIX seconds, booleans sometimes
// arrive as "true"/"1", counters as strings, and empty maps as []. The types
// below absorb those variations at decode time.

var null = []byte("null")

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, null)
}

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an upstream date string. The empty string and MySQL's
// zero date yield the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "0000-00-00") {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Time is a date sent as a string. null, "" and false decode to the zero time.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	if isNull(data) || bytes.Equal(data, []byte("false")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// UnixTime is a date sent as UNIX seconds, either as a number or a numeric
// string. null, false and 0 decode to the zero time.
type UnixTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	if isNull(data) || bytes.Equal(data, []byte("false")) {
		t.Time = time.Time{}
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("unix time: %w", err)
	}
	if secs == 0 {
		t.Time = time.Time{}
		return nil
	}
	whole, frac := math.Modf(secs)
	t.Time = time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return nil
}

// Bool accepts true/false, "true"/"false", 1/0 and "1"/"0". null and "" are false.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if isNull(data) || raw == "" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("bool: %w", err)
	}
	*b = Bool(v)
	return nil
}

// Int accepts a JSON number or a numeric string. null and "" are 0.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*i = 0
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fmt.Errorf("int: %w", err)
		}
		v = int64(f)
	}
	*i = Int(v)
	return nil
}

// String accepts a JSON string or number. null and false are "".
type String string

// UnmarshalJSON implements json.Unmarshaler.
func (s *String) UnmarshalJSON(data []byte) error {
	if isNull(data) || bytes.Equal(data, []byte("false")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = String(v)
		return nil
	}
	*s = String(data)
	return nil
}

// Decimal is an amount sent as a number or a numeric string. null and ""
// are zero.
type Decimal struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if isNull(data) || bytes.Equal(data, []byte(`""`)) {
		d.Decimal = decimal.Zero
		return nil
	}
	if err := d.Decimal.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	return nil
}

// Totals is a currency→amount map that also accepts the [] PHP emits for
// an empty map.
type Totals map[string]decimal.Decimal

// UnmarshalJSON implements json.Unmarshaler.
func (t *Totals) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if isNull(trimmed) || (len(trimmed) > 0 && trimmed[0] == '[') {
		*t = Totals{}
		return nil
	}
	m := map[string]Decimal{}
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return fmt.Errorf("totals: %w", err)
	}
	out := make(Totals, len(m))
	for currency, amount := range m {
		out[currency] = amount.Decimal
	}
	*t = out
	return nil
}

// DecodeEmbedded decodes a JSON document that may be embedded as a string.
// null, absent and "" yield nil; a string is parsed as JSON; any other value
// is decoded as is.
func DecodeEmbedded(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if isNull(trimmed) {
		return nil, nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		trimmed = []byte(s)
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, fmt.Errorf("embedded json: %w", err)
	}
	return v, nil
}

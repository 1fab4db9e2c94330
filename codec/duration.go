package codec

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	streamconv "github.com/reoring/streamconv"
)

// Duration returns a Codec that converts between human-readable elapsed-time
// strings ("5s", "2h 30m", "1day") and time.Duration.
func Duration() streamconv.Codec[string, time.Duration] { return durationCodec{} }

type durationCodec struct{}

func (durationCodec) Decode(ctx context.Context, a string) (time.Duration, error) {
	d, err := ParseDuration(a)
	if err != nil {
		return 0, formatIssue("duration", err)
	}
	return d, nil
}

func (durationCodec) Encode(ctx context.Context, b time.Duration) (string, error) {
	if b < 0 {
		return "", formatIssue("duration", errNegativeDuration)
	}
	return FormatDuration(b), nil
}

const (
	day   = 24 * time.Hour
	month = 2_630_016 * time.Second  // 30.44 days
	year  = 31_557_600 * time.Second // 365.25 days
)

var (
	errEmptyDuration    = errors.New("value was empty")
	errNegativeDuration = errors.New("negative duration")
	errDurationOverflow = errors.New("number is too large")
)

var durationUnits = map[string]time.Duration{
	"nsec": time.Nanosecond, "ns": time.Nanosecond, "nanos": time.Nanosecond,
	"usec": time.Microsecond, "us": time.Microsecond, "µs": time.Microsecond,
	"msec": time.Millisecond, "ms": time.Millisecond, "millis": time.Millisecond,
	"seconds": time.Second, "second": time.Second, "secs": time.Second, "sec": time.Second, "s": time.Second,
	"minutes": time.Minute, "minute": time.Minute, "mins": time.Minute, "min": time.Minute, "m": time.Minute,
	"hours": time.Hour, "hour": time.Hour, "hrs": time.Hour, "hr": time.Hour, "h": time.Hour,
	"days": day, "day": day, "d": day,
	"weeks": 7 * day, "week": 7 * day, "w": 7 * day,
	"months": month, "month": month, "M": month,
	"years": year, "year": year, "y": year,
}

// ParseDuration parses a sequence of <digits><unit> items, optionally
// separated by whitespace. Whitespace may also sit between a number and its
// unit ("5 s"). Signs, fractions and bare numbers are rejected.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyDuration
	}
	var total time.Duration
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("invalid character at %d", start)
		}
		num, err := parseDigits(s[start:i])
		if err != nil {
			return 0, err
		}
		numEnd := i
		for i < len(s) && isDurationSep(s[i]) {
			i++
		}
		ustart := i
		for i < len(s) && !isDurationSep(s[i]) && (s[i] < '0' || s[i] > '9') {
			i++
		}
		unitText := s[ustart:i]
		if unitText == "" {
			return 0, fmt.Errorf("time unit needed, for example %ssec or %sms", s[start:numEnd], s[start:numEnd])
		}
		unit, ok := durationUnits[unitText]
		if !ok {
			return 0, fmt.Errorf("unknown time unit %q", unitText)
		}
		if num > uint64(math.MaxInt64/int64(unit)) {
			return 0, errDurationOverflow
		}
		part := time.Duration(num) * unit
		if total > math.MaxInt64-part {
			return 0, errDurationOverflow
		}
		total += part
		for i < len(s) && isDurationSep(s[i]) {
			i++
		}
	}
	return total, nil
}

func parseDigits(s string) (uint64, error) {
	var n uint64
	for _, c := range []byte(s) {
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, errDurationOverflow
		}
		n = n*10 + d
	}
	return n, nil
}

func isDurationSep(c byte) bool { return c == ' ' || c == '\t' }

// FormatDuration renders d as space-separated components in the order
// years, months, days, h, m, s, ms, us, ns. Zero renders as "0s".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	parts := make([]string, 0, 9)
	rest := d
	for _, u := range []struct {
		size time.Duration
		name string
	}{
		{year, "years"}, {month, "months"}, {day, "days"},
		{time.Hour, "h"}, {time.Minute, "m"}, {time.Second, "s"},
		{time.Millisecond, "ms"}, {time.Microsecond, "us"}, {time.Nanosecond, "ns"},
	} {
		n := rest / u.size
		if n == 0 {
			continue
		}
		rest -= n * u.size
		name := u.name
		// years/months/days are singular for one unit, as in "1day 2h".
		if n == 1 && (u.size == year || u.size == month || u.size == day) {
			name = strings.TrimSuffix(name, "s")
		}
		parts = append(parts, fmt.Sprintf("%d%s", n, name))
	}
	return strings.Join(parts, " ")
}

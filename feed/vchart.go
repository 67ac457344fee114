package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// VChart CSV record layout, by field position:
//
//	ticker, session flag, YYYYMMDD date, HHMMSS time (0 for daily rows),
//	open, high, low, close, volume, openinterest.
const (
	vchartFieldDate = 2
	vchartFieldTime = 3
	vchartFieldOpen = 4
	vchartNumFields = 10
)

// Option configures a VChartCSV adapter.
type Option func(*VChartCSV)

// WithComma sets the field separator (default ',').
func WithComma(r rune) Option {
	return func(v *VChartCSV) { v.comma = r }
}

// WithLocation sets the location bar timestamps are interpreted in
// (default UTC).
func WithLocation(loc *time.Location) Option {
	return func(v *VChartCSV) { v.loc = loc }
}

// VChartCSV reads VChart-format CSV records into a BarSeries, one bar
// per Load call. Price and volume fields are parsed exactly via decimal
// before conversion to line storage, so "1.1" round-trips without a
// binary-float detour through the text layer.
type VChartCSV struct {
	reader *csv.Reader
	bars   *BarSeries
	comma  rune
	loc    *time.Location
}

// NewVChartCSV returns an adapter over r with an empty bar stream.
func NewVChartCSV(r io.Reader, opts ...Option) *VChartCSV {
	v := &VChartCSV{
		bars:  NewBarSeries(),
		comma: ',',
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.reader = csv.NewReader(r)
	v.reader.Comma = v.comma
	v.reader.FieldsPerRecord = -1 // length is validated per record

	return v
}

// Bars exposes the stream the adapter appends into.
func (v *VChartCSV) Bars() *BarSeries { return v.bars }

// Load reads and parses one record, writing exactly one full bar on
// success. It reports (false, nil) at end of input. A malformed record
// fails with ErrShortRecord/ErrBadRecord and writes nothing.
func (v *VChartCSV) Load() (bool, error) {
	rec, err := v.reader.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(rec) < vchartNumFields {
		return false, ErrShortRecord
	}

	bar, err := v.parseBar(rec)
	if err != nil {
		return false, err
	}
	if err = v.bars.Append(bar); err != nil {
		return false, err
	}

	return true, nil
}

// LoadAll drains the input, returning how many bars were written.
func (v *VChartCSV) LoadAll() (int, error) {
	n := 0
	for {
		ok, err := v.Load()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// parseBar decodes one validated-length record into a Bar.
func (v *VChartCSV) parseBar(rec []string) (Bar, error) {
	ts, err := v.parseStamp(rec[vchartFieldDate], rec[vchartFieldTime])
	if err != nil {
		return Bar{}, err
	}

	var fields [6]float64
	for i := range fields {
		d, derr := decimal.NewFromString(rec[vchartFieldOpen+i])
		if derr != nil {
			return Bar{}, fmt.Errorf("%w: field %d: %v", ErrBadRecord, vchartFieldOpen+i, derr)
		}
		fields[i] = d.InexactFloat64()
	}

	return Bar{
		Time:         ts,
		Open:         fields[0],
		High:         fields[1],
		Low:          fields[2],
		Close:        fields[3],
		Volume:       fields[4],
		OpenInterest: fields[5],
	}, nil
}

// parseStamp decodes the YYYYMMDD date and HHMMSS time fields.
func (v *VChartCSV) parseStamp(date, clock string) (time.Time, error) {
	if len(date) != 8 {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrBadRecord, date)
	}
	y, err := strconv.Atoi(date[0:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrBadRecord, date)
	}
	m, err := strconv.Atoi(date[4:6])
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrBadRecord, date)
	}
	d, err := strconv.Atoi(date[6:8])
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrBadRecord, date)
	}

	// Daily rows carry a zero/empty time field.
	hhmmss := 0
	if clock != "" {
		if hhmmss, err = strconv.Atoi(clock); err != nil {
			return time.Time{}, fmt.Errorf("%w: time %q", ErrBadRecord, clock)
		}
	}
	hh, rest := hhmmss/10000, hhmmss%10000
	mm, ss := rest/100, rest%100
	if hh > 23 || mm > 59 || ss > 59 {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrBadRecord, clock)
	}

	return time.Date(y, time.Month(m), d, hh, mm, ss, 0, v.loc), nil
}

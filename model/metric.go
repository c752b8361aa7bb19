package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// SampleType defines the role of a sample within a metric.
type SampleType string

const (
	Value    SampleType = "Value"    // Value is the observed value.
	Warning  SampleType = "Warning"  // Warning is the warning threshold.
	Critical SampleType = "Critical" // Critical is the critical threshold.
	Min      SampleType = "Min"
	Max      SampleType = "Max"
)

// ValueType tags the populated field of a TypedValue.
type ValueType string

const (
	StringType  ValueType = "StringType"
	IntegerType ValueType = "IntegerType"
	DoubleType  ValueType = "DoubleType"
)

// ErrUnknownValueType is returned when a TypedValue carries an unsupported tag.
var ErrUnknownValueType = errors.New("unknown value type")

// TypedValue holds exactly one of a string, integer or double, selected by ValueType.
type TypedValue struct {
	ValueType    ValueType
	StringValue  string
	IntegerValue int64
	DoubleValue  float64
}

// StringValue returns a string typed value.
func StringValue(s string) TypedValue { return TypedValue{ValueType: StringType, StringValue: s} }

// IntegerValue returns an integer typed value.
func IntegerValue(i int64) TypedValue { return TypedValue{ValueType: IntegerType, IntegerValue: i} }

// DoubleValue returns a double typed value.
func DoubleValue(f float64) TypedValue { return TypedValue{ValueType: DoubleType, DoubleValue: f} }

// NewTypedValue wraps a Go value into a TypedValue.
func NewTypedValue(v any) (TypedValue, error) {
	switch x := v.(type) {
	case string:
		return StringValue(x), nil
	case int:
		return IntegerValue(int64(x)), nil
	case int32:
		return IntegerValue(int64(x)), nil
	case int64:
		return IntegerValue(x), nil
	case float32:
		return DoubleValue(float64(x)), nil
	case float64:
		return DoubleValue(x), nil
	default:
		return TypedValue{}, fmt.Errorf("%w: %T", ErrUnknownValueType, v)
	}
}

// Any returns the populated field.
func (v TypedValue) Any() any {
	switch v.ValueType {
	case StringType:
		return v.StringValue
	case IntegerType:
		return v.IntegerValue
	case DoubleType:
		return v.DoubleValue
	}
	return nil
}

type typedValueJSON struct {
	ValueType    ValueType `json:"valueType"`
	StringValue  *string   `json:"stringValue,omitempty"`
	IntegerValue *int64    `json:"integerValue,omitempty"`
	DoubleValue  *float64  `json:"doubleValue,omitempty"`
}

// MarshalJSON emits only the field selected by ValueType, zero values included.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	out := typedValueJSON{ValueType: v.ValueType}
	switch v.ValueType {
	case StringType:
		out.StringValue = &v.StringValue
	case IntegerType:
		out.IntegerValue = &v.IntegerValue
	case DoubleType:
		out.DoubleValue = &v.DoubleValue
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownValueType, v.ValueType)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *TypedValue) UnmarshalJSON(b []byte) error {
	var in typedValueJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*v = TypedValue{ValueType: in.ValueType}
	if in.StringValue != nil {
		v.StringValue = *in.StringValue
	}
	if in.IntegerValue != nil {
		v.IntegerValue = *in.IntegerValue
	}
	if in.DoubleValue != nil {
		v.DoubleValue = *in.DoubleValue
	}
	switch v.ValueType {
	case StringType, IntegerType, DoubleType:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownValueType, v.ValueType)
	}
}

// TimestampLayout is the wire form of a Timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000-0700"

// Timestamp is a point in time with millisecond precision. The wire form is always UTC
// with milliseconds, so a decoded value equals NewTimestamp of the encoded one.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond).UTC()}
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(NewTimestamp(t.Time).Format(TimestampLayout))), nil
}

// UnmarshalJSON accepts the wire layout, RFC 3339 and epoch milliseconds.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if len(b) > 0 && b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("parse timestamp %s: %w", b, err)
		}
		*t = Timestamp{Time: time.UnixMilli(ms).UTC()}
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
	}
	*t = Timestamp{Time: parsed.UTC()}
	return nil
}

// TimeInterval is the period a sample covers.
type TimeInterval struct {
	EndTime   Timestamp `json:"endTime"`
	StartTime Timestamp `json:"startTime"`
}

// Valid reports whether the interval does not end before it starts.
func (i TimeInterval) Valid() bool {
	return !i.EndTime.Before(i.StartTime.Time)
}

// MetricSample is a single typed measurement of a resource. A sample set for one metric
// usually holds a Value plus its Warning and Critical thresholds.
type MetricSample struct {
	MetricName string            `json:"metricName"`
	SampleType SampleType        `json:"sampleType"`
	Tags       map[string]string `json:"tags,omitempty"`
	Interval   TimeInterval      `json:"interval"`
	Value      TypedValue        `json:"value"`
	Unit       string            `json:"unit,omitempty"`
}

// ResourceWithMetrics pairs a resource with its current samples.
type ResourceWithMetrics struct {
	Resource Resource       `json:"resource"`
	Metrics  []MetricSample `json:"metrics,omitempty"`
}

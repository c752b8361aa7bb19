package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testBundle() ResourceBundle {
	start := NewTimestamp(time.Date(2019, 9, 27, 6, 55, 56, 805_000_000, time.UTC))
	end := NewTimestamp(start.Add(time.Minute))
	check := NewTimestamp(end.Time)
	interval := TimeInterval{StartTime: start, EndTime: end}

	return ResourceBundle{
		Context: TracerContext{
			AppType:    "VEMA",
			AgentID:    "3939333393342",
			TraceToken: "token-99e93",
			TimeStamp:  end,
		},
		Resources: []ResourceWithMetrics{
			{
				Resource: Resource{Name: "mc-test-host", Type: Host, Status: HostUp, LastCheckTime: &check},
			},
			{
				Resource: Resource{Name: "mc-test-service-0", Type: Service, Status: ServiceOk, Owner: "mc-test-host"},
				Metrics: []MetricSample{
					{MetricName: "mc-test-service-0", SampleType: Value, Interval: interval, Value: IntegerValue(0)},
					{MetricName: "mc-test-service-0", SampleType: Warning, Interval: interval, Value: IntegerValue(50)},
					{MetricName: "mc-test-service-0", SampleType: Critical, Interval: interval, Value: DoubleValue(75.5)},
					{MetricName: "label", SampleType: Value, Interval: interval, Value: StringValue(""),
						Tags: map[string]string{"env": "dev"}, Unit: "1"},
				},
			},
		},
	}
}

func TestResourceBundle_RoundTrip(t *testing.T) {
	in := testBundle()

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out ResourceBundle
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Equal(t, in, out)
}

func TestInventory_RoundTrip(t *testing.T) {
	host := Resource{Name: "mc-test-host", Type: Host, Status: HostUp, Device: "10.0.0.1"}
	svc := Resource{Name: "mc-test-service-0", Type: Service, Status: ServiceOk, Owner: host.Name}
	in := Inventory{
		Context:   TracerContext{AppType: "VEMA", AgentID: "a", TraceToken: "t", TimeStamp: NewTimestamp(time.Unix(1569567356, 0))},
		Resources: []Resource{host, svc},
		Groups:    []ResourceGroup{{GroupName: "PrometheusDemo", Resources: []ResourceRef{host.Ref(), svc.Ref()}}},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Inventory
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Equal(t, in, out)
}

func TestTypedValue_ZeroValuesAreEmitted(t *testing.T) {
	raw, err := json.Marshal(IntegerValue(0))
	require.NoError(t, err)
	require.JSONEq(t, `{"valueType":"IntegerType","integerValue":0}`, string(raw))

	raw, err = json.Marshal(StringValue(""))
	require.NoError(t, err)
	require.JSONEq(t, `{"valueType":"StringType","stringValue":""}`, string(raw))
}

func TestTypedValue_UnknownType(t *testing.T) {
	_, err := json.Marshal(TypedValue{ValueType: "BooleanType"})
	require.ErrorIs(t, err, ErrUnknownValueType)

	var v TypedValue
	err = json.Unmarshal([]byte(`{"valueType":"DateType"}`), &v)
	require.ErrorIs(t, err, ErrUnknownValueType)
}

func TestNewTypedValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want TypedValue
	}{
		{"string", "up", StringValue("up")},
		{"int", 3, IntegerValue(3)},
		{"int64", int64(-7), IntegerValue(-7)},
		{"float64", 1.5, DoubleValue(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTypedValue(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	require.Equal(t, int64(3), IntegerValue(3).Any())
	require.Equal(t, "up", StringValue("up").Any())
	require.Nil(t, TypedValue{}.Any())

	_, err := NewTypedValue(true)
	require.ErrorIs(t, err, ErrUnknownValueType)
}

func TestTimestamp_JSON(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2019-09-27T06:55:56.805+0000"`), &ts))
	require.Equal(t, int64(1569567356805), ts.UnixMilli())

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	require.Equal(t, `"2019-09-27T06:55:56.805+0000"`, string(raw))

	require.NoError(t, json.Unmarshal([]byte(`1569567356805`), &ts))
	require.Equal(t, int64(1569567356805), ts.UnixMilli())

	require.NoError(t, json.Unmarshal([]byte(`"2019-09-27T06:55:56Z"`), &ts))
	require.Equal(t, int64(1569567356000), ts.UnixMilli())

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	require.True(t, ts.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestTimestamp_UnnormalizedValueRoundTrip(t *testing.T) {
	local := time.FixedZone("UTC+3", 3*60*60)
	raw := Timestamp{Time: time.Date(2024, 5, 1, 12, 30, 15, 123_456_789, local)}

	out, err := json.Marshal(raw)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-01T09:30:15.123+0000"`, string(out))

	var got Timestamp
	require.NoError(t, json.Unmarshal(out, &got))
	require.Equal(t, NewTimestamp(raw.Time), got)
	require.Equal(t, time.UTC, got.Location())

	// bundles built from such values round-trip to their normalized form
	start := Timestamp{Time: raw.Time}
	b := ResourceBundle{Resources: []ResourceWithMetrics{{
		Resource: Resource{Name: "h", Type: Host, LastCheckTime: &start},
		Metrics: []MetricSample{{MetricName: "m", SampleType: Value,
			Interval: TimeInterval{StartTime: start, EndTime: start}, Value: IntegerValue(1)}},
	}}}
	out, err = json.Marshal(b)
	require.NoError(t, err)
	var decoded ResourceBundle
	require.NoError(t, json.Unmarshal(out, &decoded))
	norm := NewTimestamp(raw.Time)
	require.Equal(t, &norm, decoded.Resources[0].Resource.LastCheckTime)
	require.Equal(t, TimeInterval{StartTime: norm, EndTime: norm}, decoded.Resources[0].Metrics[0].Interval)
}

func TestTimeInterval_Valid(t *testing.T) {
	now := Now()
	later := NewTimestamp(now.Add(time.Second))

	require.True(t, TimeInterval{StartTime: now, EndTime: now}.Valid())
	require.True(t, TimeInterval{StartTime: now, EndTime: later}.Valid())
	require.False(t, TimeInterval{StartTime: later, EndTime: now}.Valid())
}

func TestOperationResults_Consistent(t *testing.T) {
	var r OperationResults
	require.NoError(t, json.Unmarshal([]byte(`{"successful":2,"failed":0,"count":2,"entityType":"RESOURCE","operation":"Update"}`), &r))
	require.True(t, r.Consistent())

	r.Failed = 1
	require.False(t, r.Consistent())
}

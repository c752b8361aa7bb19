package model

// TracerContext identifies a single transit call.
type TracerContext struct {
	AppType    string    `json:"appType"`
	AgentID    string    `json:"agentId"`
	TraceToken string    `json:"traceToken"`
	TimeStamp  Timestamp `json:"timeStamp"`
}

// ResourceBundle is the payload of SendResourcesWithMetrics.
// Resources keep the order in which they were added.
type ResourceBundle struct {
	Context   TracerContext         `json:"context"`
	Resources []ResourceWithMetrics `json:"resources"`
}

// ResourceGroup is a named set of resources.
type ResourceGroup struct {
	GroupName string        `json:"groupName"`
	Resources []ResourceRef `json:"resources"`
}

// Inventory is the payload of SynchronizeInventory.
type Inventory struct {
	Context   TracerContext   `json:"context"`
	Resources []Resource      `json:"resources"`
	Groups    []ResourceGroup `json:"groups,omitempty"`
}

// OperationResult is the outcome for a single entity.
type OperationResult struct {
	Entity   string `json:"entity"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Location string `json:"location,omitempty"`
	EntityID int    `json:"entityID,omitempty"`
}

// OperationResults tallies a publish or sync call.
type OperationResults struct {
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	EntityType string            `json:"entityType,omitempty"`
	Operation  string            `json:"operation,omitempty"`
	Warning    int               `json:"warning"`
	Count      int               `json:"count"`
	Results    []OperationResult `json:"results,omitempty"`
}

// Consistent reports whether the tallies add up.
func (r OperationResults) Consistent() bool {
	return r.Successful+r.Failed == r.Count
}

// MetricKind describes how values of a metric relate over time.
type MetricKind string

const (
	Gauge      MetricKind = "GAUGE"
	Delta      MetricKind = "DELTA"
	Cumulative MetricKind = "CUMULATIVE"
)

// LabelDescriptor describes a label of a metric.
type LabelDescriptor struct {
	Key         string    `json:"key"`
	Description string    `json:"description,omitempty"`
	ValueType   ValueType `json:"valueType,omitempty"`
}

// ThresholdDescriptor is a named threshold value.
type ThresholdDescriptor struct {
	Key   string `json:"key"`
	Value int32  `json:"value"`
}

// MetricDescriptor describes a metric the publisher can report. The native module asks
// for the current list of descriptors through the metrics callback.
type MetricDescriptor struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	DisplayName string                `json:"displayName,omitempty"`
	Labels      []LabelDescriptor     `json:"labels,omitempty"`
	Thresholds  []ThresholdDescriptor `json:"thresholds,omitempty"`
	Type        string                `json:"type,omitempty"`
	Unit        string                `json:"unit,omitempty"`
	ValueType   ValueType             `json:"valueType,omitempty"`
	ComputeType string                `json:"computeType,omitempty"`
	MetricKind  MetricKind            `json:"metricKind,omitempty"`
}

package model

// Event is a log message raised against a host or one of its services.
type Event struct {
	Device              string        `json:"device,omitempty"`
	Host                string        `json:"host"`
	Service             string        `json:"service,omitempty"`
	OperationStatus     string        `json:"operationStatus,omitempty"`
	MonitorStatus       MonitorStatus `json:"monitorStatus"`
	Severity            string        `json:"severity,omitempty"`
	ApplicationSeverity string        `json:"applicationSeverity,omitempty"`
	Component           string        `json:"component,omitempty"`
	SubComponent        string        `json:"subComponent,omitempty"`
	Priority            string        `json:"priority,omitempty"`
	TypeRule            string        `json:"typeRule,omitempty"`
	TextMessage         string        `json:"textMessage,omitempty"`
	LastInsertDate      *Timestamp    `json:"lastInsertDate,omitempty"`
	ReportDate          *Timestamp    `json:"reportDate"`
	AppType             string        `json:"appType"`
}

// EventsRequest is the payload of SendEvents.
type EventsRequest struct {
	Events []Event `json:"events"`
}

// EventAck acknowledges the events of a host or service.
type EventAck struct {
	AppType            string `json:"appType"`
	Host               string `json:"host"`
	Service            string `json:"service,omitempty"`
	AcknowledgedBy     string `json:"acknowledgedBy,omitempty"`
	AcknowledgeComment string `json:"acknowledgeComment,omitempty"`
}

// EventsAckRequest is the payload of SendEventsAck.
type EventsAckRequest struct {
	Acks []EventAck `json:"acks"`
}

// EventUnack withdraws an acknowledgement.
type EventUnack struct {
	AppType string `json:"appType"`
	Host    string `json:"host"`
	Service string `json:"service,omitempty"`
}

// EventsUnackRequest is the payload of SendEventsUnack.
type EventsUnackRequest struct {
	Unacks []EventUnack `json:"unacks"`
}

// DowntimesRequest is the payload of SetInDowntime.
type DowntimesRequest struct {
	HostNames                 []string `json:"hostNames"`
	HostGroupNames            []string `json:"hostGroupNames"`
	ServiceDescriptions       []string `json:"serviceDescriptions"`
	ServiceGroupCategoryNames []string `json:"serviceGroupCategoryNames"`
	SetHosts                  bool     `json:"setHosts"`
	SetServices               bool     `json:"setServices"`
}

// Downtime is a scheduled downtime of one entity.
type Downtime struct {
	EntityType             string `json:"entityType"`
	EntityName             string `json:"entityName"`
	HostName               string `json:"hostName"`
	ServiceDescription     string `json:"serviceDescription,omitempty"`
	ScheduledDowntimeDepth int    `json:"scheduledDowntimeDepth"`
}

// Downtimes is the payload of ClearInDowntime.
type Downtimes struct {
	BizHostServiceInDowntimes []Downtime `json:"bizHostServiceInDowntimes"`
}

// AgentIdentity names the agent a loaded module publishes as.
type AgentIdentity struct {
	AgentID string `json:"agentId"`
	AppName string `json:"appName"`
	AppType string `json:"appType"`
}

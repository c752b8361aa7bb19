// Package model contains the transit payload types exchanged with the native module.
package model

// ResourceType defines the kind of a monitored resource.
// Any non-empty value other than Host or Service is treated as a generic type.
type ResourceType string

const (
	Host    ResourceType = "HOST"    // Host is a machine or device.
	Service ResourceType = "SERVICE" // Service runs on a host.
)

// MonitorStatus is a GroundWork monitor status.
type MonitorStatus string

const (
	HostUp                     MonitorStatus = "HOST_UP"
	HostUnscheduledDown        MonitorStatus = "HOST_UNSCHEDULED_DOWN"
	HostWarning                MonitorStatus = "HOST_WARNING"
	HostPending                MonitorStatus = "HOST_PENDING"
	HostScheduledDown          MonitorStatus = "HOST_SCHEDULED_DOWN"
	HostUnreachable            MonitorStatus = "HOST_UNREACHABLE"
	ServiceOk                  MonitorStatus = "SERVICE_OK"
	ServiceWarning             MonitorStatus = "SERVICE_WARNING"
	ServiceUnscheduledCritical MonitorStatus = "SERVICE_UNSCHEDULED_CRITICAL"
	ServicePending             MonitorStatus = "SERVICE_PENDING"
	ServiceScheduledCritical   MonitorStatus = "SERVICE_SCHEDULED_CRITICAL"
	ServiceUnknown             MonitorStatus = "SERVICE_UNKNOWN"
)

// Resource is a monitored entity.
type Resource struct {
	Name             string            `json:"name"`                       // Unique resource name.
	Type             ResourceType      `json:"type"`                       // HOST, SERVICE or a generic type.
	Status           MonitorStatus     `json:"status,omitempty"`           // Current monitor status.
	Owner            string            `json:"owner,omitempty"`            // Name of the parent resource, if any.
	LastCheckTime    *Timestamp        `json:"lastCheckTime,omitempty"`    // Time of the last status check.
	NextCheckTime    *Timestamp        `json:"nextCheckTime,omitempty"`    // Time of the next status check.
	LastPlugInOutput string            `json:"lastPlugInOutput,omitempty"` // Plugin output text.
	Category         string            `json:"category,omitempty"`
	Description      string            `json:"description,omitempty"`
	Device           string            `json:"device,omitempty"` // Usually the IP address.
	Labels           map[string]string `json:"labels,omitempty"`
}

// ResourceRef names a resource inside a group.
type ResourceRef struct {
	Name  string       `json:"name"`
	Type  ResourceType `json:"type"`
	Owner string       `json:"owner,omitempty"`
}

// Ref returns a reference to r.
func (r Resource) Ref() ResourceRef {
	return ResourceRef{Name: r.Name, Type: r.Type, Owner: r.Owner}
}

// Key identifies r within a bundle or inventory. Service names only need to be unique on
// their host, so owned resources are keyed as "owner/name".
func (r Resource) Key() string {
	return key(r.Owner, r.Name)
}

// Key is Resource.Key for references.
func (r ResourceRef) Key() string {
	return key(r.Owner, r.Name)
}

func key(owner, name string) string {
	if owner == "" {
		return name
	}
	return owner + "/" + name
}

package transit

//go:generate mockgen -destination=mocks/mock_native.go -package=mocks github.com/and161185/gw-transit/internal/transit Native

// Native is the libtransit ABI as seen from Go. Every method that can fail reports
// failure through its bool result (or ok flag) and writes a NUL-terminated diagnostic
// into errBuf. String results are copies owned by Go.
type Native interface {
	SendResourcesWithMetrics(payload string, errBuf []byte) bool
	SynchronizeInventory(payload string, errBuf []byte) bool
	SynchronizeInventoryExt(payload string, errBuf []byte) bool
	SendEvents(payload string, errBuf []byte) bool
	SendEventsAck(payload string, errBuf []byte) bool
	SendEventsUnack(payload string, errBuf []byte) bool
	SetInDowntime(payload string, errBuf []byte) bool
	ClearInDowntime(payload string, errBuf []byte) bool
	ListMetrics(errBuf []byte) (string, bool)

	StartTransport(errBuf []byte) bool
	StopTransport(errBuf []byte) bool
	StartNats(errBuf []byte) bool
	StopNats(errBuf []byte) bool
	StartController(errBuf []byte) bool
	StopController(errBuf []byte) bool
	DemandConfig(errBuf []byte) bool

	IsControllerRunning() bool
	IsNatsRunning() bool
	IsTransportRunning() bool

	RegisterListMetricsHandler(handler func() string, errBuf []byte) bool
	RemoveListMetricsHandler()
	RegisterConfigHandler(handler func(string), errBuf []byte) bool
	RemoveConfigHandler()

	AgentIdentity(buf, errBuf []byte) bool
	AgentID() (string, bool)
	AppName() (string, bool)
	AppType() (string, bool)

	Setenv(key, value string, errBuf []byte) bool
}

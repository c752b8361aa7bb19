// Package transit provides the client of the native transit module. It encodes typed
// requests to JSON, calls the module and decodes its answers into typed results.
//
// Every call is synchronous and blocks until the module returns. The client does no
// locking of its own and never retries: a failed call returns *errs.TransitError with
// the module's diagnostic text, an encoding problem returns *errs.SerializationError.
package transit

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/errs"
	"github.com/and161185/gw-transit/model"
	"go.uber.org/zap"
)

// Client talks to a loaded native transit module.
type Client struct {
	native     Native
	logger     *zap.SugaredLogger
	errBufSize int
}

// NewClient creates a client over an already loaded native module.
func NewClient(native Native, cfg *config.TransitConfig) *Client {
	size := config.DefaultErrBufSize
	logger := zap.NewNop().Sugar()
	if cfg != nil {
		if cfg.ErrBufSize > 0 {
			size = cfg.ErrBufSize
		}
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
	}
	return &Client{native: native, logger: logger, errBufSize: size}
}

// MetricsHandler returns the current metric listing when the native module asks for it.
// It runs on a thread owned by the native module and must not block.
type MetricsHandler func() ([]model.MetricDescriptor, error)

// ConfigHandler receives the configuration the module was given. Like MetricsHandler it
// runs on a module thread.
type ConfigHandler func(config []byte)

// identityBufSize bounds the identity JSON returned by GetAgentIdentity.
const identityBufSize = 1024

// SendResourcesWithMetrics publishes a bundle of resources and their samples.
// The module reports only success or failure, so on success every resource of the
// bundle is counted as successful.
func (c *Client) SendResourcesWithMetrics(bundle *model.ResourceBundle) (*model.OperationResults, error) {
	return c.request("SendResourcesWithMetrics", bundle, len(bundle.Resources), c.native.SendResourcesWithMetrics)
}

// SynchronizeInventory replaces the backend inventory with inv. Results are tallied
// like SendResourcesWithMetrics.
func (c *Client) SynchronizeInventory(inv *model.Inventory) (*model.OperationResults, error) {
	return c.request("SynchronizeInventory", inv, len(inv.Resources), c.native.SynchronizeInventory)
}

// SynchronizeInventoryExt synchronizes inv through the module's extended inventory path.
func (c *Client) SynchronizeInventoryExt(inv *model.Inventory) (*model.OperationResults, error) {
	return c.request("SynchronizeInventoryExt", inv, len(inv.Resources), c.native.SynchronizeInventoryExt)
}

// SendEvents raises log messages.
func (c *Client) SendEvents(req *model.EventsRequest) error {
	return c.send("SendEvents", req, c.native.SendEvents)
}

// SendEventsAck acknowledges events.
func (c *Client) SendEventsAck(req *model.EventsAckRequest) error {
	return c.send("SendEventsAck", req, c.native.SendEventsAck)
}

// SendEventsUnack withdraws acknowledgements.
func (c *Client) SendEventsUnack(req *model.EventsUnackRequest) error {
	return c.send("SendEventsUnack", req, c.native.SendEventsUnack)
}

// SetInDowntime puts the selected hosts and services into downtime.
func (c *Client) SetInDowntime(req *model.DowntimesRequest) error {
	return c.send("SetInDowntime", req, c.native.SetInDowntime)
}

// ClearInDowntime ends the given downtimes.
func (c *Client) ClearInDowntime(req *model.Downtimes) error {
	return c.send("ClearInDowntime", req, c.native.ClearInDowntime)
}

// StartTransport starts the native transport. Whether a second start succeeds is up to
// the module; a reported failure is returned as a TransitError.
func (c *Client) StartTransport() error {
	return c.do("StartTransport", c.native.StartTransport)
}

// StopTransport stops the native transport.
func (c *Client) StopTransport() error {
	return c.do("StopTransport", c.native.StopTransport)
}

// StartMessaging starts the embedded messaging server of the module.
func (c *Client) StartMessaging() error {
	return c.do("StartNats", c.native.StartNats)
}

// StopMessaging stops the embedded messaging server.
func (c *Client) StopMessaging() error {
	return c.do("StopNats", c.native.StopNats)
}

// StartController starts the module's control endpoint.
func (c *Client) StartController() error {
	return c.do("StartController", c.native.StartController)
}

// StopController stops the module's control endpoint.
func (c *Client) StopController() error {
	return c.do("StopController", c.native.StopController)
}

// DemandConfig asks the module to request its configuration from the backend. The
// answer arrives through the handler installed with RegisterConfigCallback.
func (c *Client) DemandConfig() error {
	return c.do("DemandConfig", c.native.DemandConfig)
}

// IsControllerRunning, IsMessagingRunning and IsTransportRunning pass the module's health checks through.
func (c *Client) IsControllerRunning() bool { return c.native.IsControllerRunning() }
func (c *Client) IsMessagingRunning() bool  { return c.native.IsNatsRunning() }
func (c *Client) IsTransportRunning() bool  { return c.native.IsTransportRunning() }

// ListMetrics asks the module for its metric descriptors. An empty or null answer is an
// error, never an empty list. libtransit builds do not export the call and answer with a
// TransitError naming it.
func (c *Client) ListMetrics() ([]model.MetricDescriptor, error) {
	const op = "ListMetrics"

	buf := c.errBuf()
	out, ok := c.native.ListMetrics(buf)
	if !ok || isEmptyResponse(out) {
		return nil, transitError(op, buf)
	}

	var descriptors []model.MetricDescriptor
	if err := json.Unmarshal([]byte(out), &descriptors); err != nil {
		return nil, &errs.SerializationError{Op: op, Err: err}
	}
	return descriptors, nil
}

// RegisterMetricsCallback installs handler as the module's metrics listing source,
// replacing any previous one.
func (c *Client) RegisterMetricsCallback(handler MetricsHandler) error {
	if handler == nil {
		return errors.New("transit: nil metrics handler")
	}
	buf := c.errBuf()
	if !c.native.RegisterListMetricsHandler(c.listing(handler), buf) {
		return transitError("RegisterListMetricsHandler", buf)
	}
	return nil
}

// RemoveMetricsCallback uninstalls the metrics listing source.
func (c *Client) RemoveMetricsCallback() {
	c.native.RemoveListMetricsHandler()
}

// RegisterConfigCallback installs handler as the receiver of configuration updates,
// replacing any previous one.
func (c *Client) RegisterConfigCallback(handler ConfigHandler) error {
	if handler == nil {
		return errors.New("transit: nil config handler")
	}
	buf := c.errBuf()
	if !c.native.RegisterConfigHandler(func(s string) { handler([]byte(s)) }, buf) {
		return transitError("RegisterConfigHandler", buf)
	}
	return nil
}

// RemoveConfigCallback uninstalls the configuration receiver.
func (c *Client) RemoveConfigCallback() {
	c.native.RemoveConfigHandler()
}

// AgentIdentity returns the identity the module publishes as. It prefers the GetAgentId
// family and falls back to GetAgentIdentity for modules that only export that one.
func (c *Client) AgentIdentity() (*model.AgentIdentity, error) {
	if id, ok := c.native.AgentID(); ok {
		identity := &model.AgentIdentity{AgentID: id}
		identity.AppName, _ = c.native.AppName()
		identity.AppType, _ = c.native.AppType()
		return identity, nil
	}

	const op = "GetAgentIdentity"
	out := make([]byte, identityBufSize)
	buf := c.errBuf()
	if !c.native.AgentIdentity(out, buf) {
		return nil, transitError(op, buf)
	}
	var identity model.AgentIdentity
	if err := json.Unmarshal([]byte(cString(out)), &identity); err != nil {
		return nil, &errs.SerializationError{Op: op, Err: err}
	}
	return &identity, nil
}

// Setenv sets an environment variable inside the native runtime. The module reads its
// settings from the environment when transport starts.
func (c *Client) Setenv(key, value string) error {
	buf := c.errBuf()
	if !c.native.Setenv(key, value, buf) {
		return transitError("GoSetenv", buf)
	}
	return nil
}

func (c *Client) request(op string, payload any, n int, call func(string, []byte) bool) (*model.OperationResults, error) {
	if err := c.send(op, payload, call); err != nil {
		return nil, err
	}
	res := &model.OperationResults{Successful: n, Count: n}
	c.logger.Debugf("%s: count=%d successful=%d failed=%d", op, res.Count, res.Successful, res.Failed)
	return res, nil
}

func (c *Client) send(op string, payload any, call func(string, []byte) bool) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &errs.SerializationError{Op: op, Err: err}
	}
	buf := c.errBuf()
	if !call(string(raw), buf) {
		return transitError(op, buf)
	}
	return nil
}

func (c *Client) do(op string, call func([]byte) bool) error {
	buf := c.errBuf()
	if !call(buf) {
		return transitError(op, buf)
	}
	return nil
}

// listing adapts handler to the string-returning callback the module invokes.
func (c *Client) listing(handler MetricsHandler) func() string {
	return func() string {
		descriptors, err := handler()
		if err != nil {
			c.logger.Errorf("metrics handler failed: %v", err)
			return "[]"
		}
		if descriptors == nil {
			descriptors = []model.MetricDescriptor{}
		}
		raw, err := json.Marshal(descriptors)
		if err != nil {
			c.logger.Errorf("failed to encode metrics listing: %v", err)
			return "[]"
		}
		return string(raw)
	}
}

// errBuf returns a fresh zeroed buffer for a single native call.
func (c *Client) errBuf() []byte {
	return make([]byte, c.errBufSize)
}

func transitError(op string, buf []byte) error {
	return &errs.TransitError{Op: op, Message: cString(buf)}
}

// cString reads the NUL-terminated text the module wrote into buf.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimSpace(string(buf))
}

func isEmptyResponse(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "null"
}


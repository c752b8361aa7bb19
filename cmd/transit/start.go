package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/gw-transit/internal/errs"
	"github.com/and161185/gw-transit/model"
	"github.com/spf13/cobra"
)

// status is the output of the status command.
type status struct {
	Transport  bool `json:"transport"`
	Messaging  bool `json:"messaging"`
	Controller bool `json:"controller"`
}

// serveOptions select what start runs besides the transport.
type serveOptions struct {
	messaging    bool
	controller   bool
	metrics      string // descriptors file answering the metrics listing
	demandConfig bool
}

func (a *app) startCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the transport and keep it running until interrupted",
		Long: `start starts the transport (and optionally the embedded messaging server and the
controller), then waits for SIGINT or SIGTERM and stops everything it started.
With --metrics the descriptors in the file answer the module's metrics listing.
With --demand-config the module is asked for its configuration and every update is logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.messaging, "nats", false, "start the embedded messaging server")
	cmd.Flags().BoolVar(&opts.controller, "controller", false, "start the controller")
	cmd.Flags().StringVar(&opts.metrics, "metrics", "", "JSON file with the metric descriptors to report")
	cmd.Flags().BoolVar(&opts.demandConfig, "demand-config", false, "request the module configuration and log updates")
	return cmd
}

func (a *app) serve(ctx context.Context, opts serveOptions) error {
	var descriptors []model.MetricDescriptor
	if opts.metrics != "" {
		raw, err := os.ReadFile(opts.metrics)
		if err != nil {
			return fmt.Errorf("read metrics: %w", err)
		}
		if err := json.Unmarshal(raw, &descriptors); err != nil {
			return &errs.SerializationError{Op: "decode " + opts.metrics, Err: err}
		}
	}

	logger := a.cfg.Logger
	if opts.messaging {
		if err := a.client.StartMessaging(); err != nil {
			return err
		}
		defer func() {
			if err := a.client.StopMessaging(); err != nil {
				logger.Errorf("stop messaging: %v", err)
			}
		}()
	}
	if err := a.client.StartTransport(); err != nil {
		return err
	}
	defer func() {
		if err := a.client.StopTransport(); err != nil {
			logger.Errorf("stop transport: %v", err)
		}
	}()
	if opts.controller {
		if err := a.client.StartController(); err != nil {
			return err
		}
		defer func() {
			if err := a.client.StopController(); err != nil {
				logger.Errorf("stop controller: %v", err)
			}
		}()
	}
	if descriptors != nil {
		err := a.client.RegisterMetricsCallback(func() ([]model.MetricDescriptor, error) {
			return descriptors, nil
		})
		if err != nil {
			return err
		}
		defer a.client.RemoveMetricsCallback()
	}
	if opts.demandConfig {
		err := a.client.RegisterConfigCallback(func(cfg []byte) {
			logger.Infof("configuration received: %d bytes", len(cfg))
		})
		if err != nil {
			return err
		}
		defer a.client.RemoveConfigCallback()
		if err := a.client.DemandConfig(); err != nil {
			return err
		}
	}

	logger.Infof("transport running, waiting for interrupt")
	<-ctx.Done()
	logger.Infof("stopping transport")
	return nil
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print which module components are running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), status{
				Transport:  a.client.IsTransportRunning(),
				Messaging:  a.client.IsMessagingRunning(),
				Controller: a.client.IsControllerRunning(),
			})
		},
	}
}

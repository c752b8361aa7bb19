package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/and161185/gw-transit/internal/bundle"
	"github.com/and161185/gw-transit/internal/errs"
	"github.com/and161185/gw-transit/model"
	"github.com/spf13/cobra"
)

var errNoPayload = errors.New("no payload file: use --file or bundle_file in the config")

func (a *app) sendCmd() *cobra.Command {
	var (
		file  string
		check bool
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a resource bundle with metrics",
		Long: `send reads a ResourceBundle JSON document and passes it to SendResourcesWithMetrics.
A bundle without a trace token gets a fresh tracer context.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b model.ResourceBundle
			if err := a.readPayload(cmd, file, &b); err != nil {
				return err
			}
			if b.Context.TraceToken == "" {
				b.Context = bundle.NewTracerContext(a.cfg.AppType, a.cfg.AgentID)
			}
			if check {
				if err := bundle.Check(&b); err != nil {
					return fmt.Errorf("invalid bundle: %w", err)
				}
			}

			res, err := a.client.SendResourcesWithMetrics(&b)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "bundle JSON file, - reads stdin")
	cmd.Flags().BoolVar(&check, "check", false, "validate the bundle before sending")
	return cmd
}

func (a *app) syncCmd() *cobra.Command {
	var (
		file  string
		check bool
		ext   bool
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the inventory",
		Long: `sync reads an Inventory JSON document and passes it to SynchronizeInventory,
or to SynchronizeInventoryExt with --ext.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var inv model.Inventory
			if err := a.readPayload(cmd, file, &inv); err != nil {
				return err
			}
			if inv.Context.TraceToken == "" {
				inv.Context = bundle.NewTracerContext(a.cfg.AppType, a.cfg.AgentID)
			}
			if check {
				if err := bundle.CheckInventory(&inv); err != nil {
					return fmt.Errorf("invalid inventory: %w", err)
				}
			}

			sync := a.client.SynchronizeInventory
			if ext {
				sync = a.client.SynchronizeInventoryExt
			}
			res, err := sync(&inv)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "inventory JSON file, - reads stdin")
	cmd.Flags().BoolVar(&check, "check", false, "validate the inventory before sending")
	cmd.Flags().BoolVar(&ext, "ext", false, "use the extended inventory call")
	return cmd
}

// readPayload decodes the payload file into v. It falls back to the configured bundle file.
func (a *app) readPayload(cmd *cobra.Command, file string, v any) error {
	if file == "" {
		file = a.cfg.BundleFile
	}
	return decodeFile(cmd, file, v)
}

// decodeFile decodes the JSON document in file into v. "-" reads stdin.
func decodeFile(cmd *cobra.Command, file string, v any) error {
	var (
		raw []byte
		err error
	)
	switch file {
	case "":
		return errNoPayload
	case "-":
		raw, err = io.ReadAll(cmd.InOrStdin())
	default:
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &errs.SerializationError{Op: "decode " + file, Err: err}
	}
	return nil
}

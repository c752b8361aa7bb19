package main

import (
	"github.com/and161185/gw-transit/model"
	"github.com/spf13/cobra"
)

func (a *app) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Send, acknowledge or unacknowledge events",
	}
	cmd.AddCommand(
		payloadCmd("send", "Send an EventsRequest document", func(c *cobra.Command, file string) error {
			var req model.EventsRequest
			if err := decodeFile(c, file, &req); err != nil {
				return err
			}
			return a.client.SendEvents(&req)
		}),
		payloadCmd("ack", "Acknowledge the events in an EventsAckRequest document", func(c *cobra.Command, file string) error {
			var req model.EventsAckRequest
			if err := decodeFile(c, file, &req); err != nil {
				return err
			}
			return a.client.SendEventsAck(&req)
		}),
		payloadCmd("unack", "Withdraw the acknowledgements in an EventsUnackRequest document", func(c *cobra.Command, file string) error {
			var req model.EventsUnackRequest
			if err := decodeFile(c, file, &req); err != nil {
				return err
			}
			return a.client.SendEventsUnack(&req)
		}),
	)
	return cmd
}

func (a *app) downtimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downtime",
		Short: "Set or clear scheduled downtimes",
	}
	cmd.AddCommand(
		payloadCmd("set", "Put the hosts and services of a DowntimesRequest document in downtime", func(c *cobra.Command, file string) error {
			var req model.DowntimesRequest
			if err := decodeFile(c, file, &req); err != nil {
				return err
			}
			return a.client.SetInDowntime(&req)
		}),
		payloadCmd("clear", "Clear the downtimes of a Downtimes document", func(c *cobra.Command, file string) error {
			var req model.Downtimes
			if err := decodeFile(c, file, &req); err != nil {
				return err
			}
			return a.client.ClearInDowntime(&req)
		}),
	)
	return cmd
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Print the agent identity of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := a.client.AgentIdentity()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), identity)
		},
	}
}

// payloadCmd builds a subcommand that passes the JSON document named by --file to run.
func payloadCmd(use, short string, run func(cmd *cobra.Command, file string) error) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "payload JSON file, - reads stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

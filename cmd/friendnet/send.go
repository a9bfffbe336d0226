package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/opd-ai/friendnet"
	"github.com/opd-ai/friendnet/friend"
	"github.com/opd-ai/friendnet/messaging"
	"github.com/opd-ai/friendnet/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type sendFlags struct {
	encrypt     bool
	compress    float64
	fft         bool
	showMetrics bool
}

func newSendCmd(a *app) *cobra.Command {
	f := &sendFlags{}

	cmd := &cobra.Command{
		Use:   "send <from> <to> <text>",
		Short: "Deliver a message and print the delivered record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, a, f, args[0], args[1], args[2])
		},
	}
	cmd.Flags().BoolVar(&f.encrypt, "encrypt", false, "RSA-encrypt the message for the receiver")
	cmd.Flags().Float64Var(&f.compress, "compress", 0, "FFT-compress with this lossiness")
	cmd.Flags().BoolVar(&f.fft, "fft", false, "FFT-compress with the configured lossiness")
	cmd.Flags().BoolVar(&f.showMetrics, "metrics", false, "print delivery metrics after sending")
	cmd.MarkFlagsMutuallyExclusive("encrypt", "compress", "fft")
	return cmd
}

func runSend(cmd *cobra.Command, a *app, f *sendFlags, from, to, text string) error {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	n, err := a.network(friend.WithMetrics(collector))
	if err != nil {
		return err
	}

	opts := friendnet.NewOptions()
	opts.Keys = a.cfg.KeyOptions()
	opts.Lossiness = a.cfg.Lossiness
	m, err := friendnet.New(n, opts)
	if err != nil {
		return err
	}

	var msg *messaging.Message
	switch {
	case f.encrypt:
		msg, err = m.SendEncrypted(from, to, text)
	case cmd.Flags().Changed("compress"):
		msg, err = m.SendCompressed(from, to, text, f.compress)
	case f.fft:
		msg, err = m.SendCompressedDefault(from, to, text)
	default:
		msg, err = m.SendPlain(from, to, text)
	}

	out := cmd.OutOrStdout()
	if err == nil {
		err = printDelivery(out, n, msg)
	}
	if f.showMetrics {
		if merr := writeMetrics(out, reg); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func printDelivery(w io.Writer, n *friend.Network, msg *messaging.Message) error {
	record, err := yaml.Marshal(msg.ToMap())
	if err != nil {
		return fmt.Errorf("failed to render message: %w", err)
	}
	if _, err := w.Write(record); err != nil {
		return err
	}

	receiver, ok := n.GetPerson(msg.ReceiverID())
	if !ok {
		return fmt.Errorf("%w: receiver %q", friend.ErrPersonNotFound, msg.ReceiverID())
	}
	text, err := friendnet.Open(receiver, msg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s reads: %s\n", receiver.Name(), text)
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

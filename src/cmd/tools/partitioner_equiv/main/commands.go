// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/bazaarvoice/emopartitioner/src/cluster/hybridring"
	"github.com/bazaarvoice/emopartitioner/src/cluster/partitioner"
	"github.com/bazaarvoice/emopartitioner/src/x/config"
	"github.com/bazaarvoice/emopartitioner/src/x/config/configflag"
	"github.com/bazaarvoice/emopartitioner/src/x/instrument"
	xlog "github.com/bazaarvoice/emopartitioner/src/x/log"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	errNotEquivalent    = errors.New("partitioners are not equivalent")
	errIncompatibleRing = errors.New("ring contains incompatible partitioners")
	errNoLocal          = errors.New("ring.local must be set")
)

type configuration struct {
	// Logging configuration.
	Logging xlog.Configuration `yaml:"logging"`

	// Partitioner equivalence configuration.
	Partitioner partitioner.Configuration `yaml:"partitioner"`

	// Ring is the ring state evaluated by the ring command.
	Ring ringConfiguration `yaml:"ring"`
}

type ringConfiguration struct {
	Local string            `yaml:"local"`
	Peers []hybridring.Peer `yaml:"peers"`
}

// Validate validates the ring configuration.
func (c ringConfiguration) Validate() error {
	if c.Local == "" {
		return errNoLocal
	}
	var err error
	for i, peer := range c.Peers {
		if peerErr := peer.Validate(); peerErr != nil {
			err = multierr.Append(err, fmt.Errorf("ring.peers[%d]: %w", i, peerErr))
		}
	}
	return err
}

type command struct {
	cfgOpts  configflag.Options
	cfg      configuration
	logger   *zap.Logger
	registry partitioner.Registry
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &command{}

	root := &cobra.Command{
		Use:               "partitioner_equiv",
		Short:             "Checks whether partitioners can share a hybrid ring",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	configFlags := flag.NewFlagSet("config", flag.ContinueOnError)
	c.cfgOpts.RegisterFlagSet(configFlags)
	root.PersistentFlags().AddGoFlagSet(configFlags)

	root.SetOut(out)
	root.AddCommand(c.checkCmd(), c.classesCmd(), c.ringCmd())
	return root
}

func (c *command) load(_ *cobra.Command, _ []string) error {
	if err := c.cfgOpts.MainLoad(&c.cfg, config.Options{}); err != nil {
		return err
	}

	logger, err := c.cfg.Logging.BuildLogger()
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	c.logger = logger

	registry, err := c.cfg.Partitioner.NewRegistry()
	if err != nil {
		return fmt.Errorf("invalid partitioner config: %w", err)
	}
	c.registry = registry
	return nil
}

func (c *command) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <partitioner> <partitioner>",
		Short: "Checks whether two partitioners are equivalent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.registry.AreEquivalent(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
			return errNotEquivalent
		},
	}
}

func (c *command) classesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "Lists the partitioner equivalence classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, class := range c.registry.EquivalenceClasses() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(class.Members(), " "))
			}
			return nil
		},
	}
}

func (c *command) ringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ring",
		Short: "Reports the partitioner state of the configured ring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.Ring.Validate(); err != nil {
				return err
			}

			checker, err := hybridring.NewChecker(hybridring.NewOptions().
				SetInstrumentOptions(instrument.NewOptions().SetLogger(c.logger)).
				SetRegistry(c.registry).
				SetLocalPartitioner(c.cfg.Ring.Local))
			if err != nil {
				return err
			}

			status := checker.Status(c.cfg.Ring.Peers)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state: %s\n", status.State)
			fmt.Fprintf(out, "local: %s\n", status.Local)
			fmt.Fprintf(out, "safe for topology change: %t\n", status.SafeForTopologyChange())
			for _, p := range status.PartitionerNames() {
				fmt.Fprintf(out, "%s: %s\n", p, strings.Join(status.Partitioners[p], ", "))
			}

			if status.State == hybridring.Incompatible {
				return errIncompatibleRing
			}
			return nil
		},
	}
}

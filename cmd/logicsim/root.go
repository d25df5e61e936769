// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gatelib"
	"github.com/db47h/logicsim/workbench"
	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	style      string

	cfg   Config
	bench *workbench.Bench
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:          "logicsim",
		Short:        "Inspect the logicsim chip library",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	root.PersistentFlags().StringVar(&a.style, "style", "", "table style: plain, ascii, unicode, unicode-light, github")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List library chips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "table NAME",
		Short: "Print the truth table of a library chip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.table(cmd.OutOrStdout(), args[0])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "compare NAME NAME",
		Short: "Check that two library chips compute the same function",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compare(cmd.OutOrStdout(), args[0], args[1])
		},
	})
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("style") {
		cfg.TableStyle = a.style
	}
	if _, err = tableStyle(cfg.TableStyle); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(level)
	a.cfg = cfg

	a.bench = workbench.New("logicsim", workbench.Options{EagerSimulate: cfg.EagerSimulate})
	return a.bench.ImportLibrary()
}

func (a *app) list(w io.Writer) error {
	for _, n := range gatelib.Names() {
		t, _ := gatelib.Lookup(n)
		fmt.Fprintf(w, "%-10s in: %s\tout: %s\n", n, strings.Join(t.Inputs, ", "), strings.Join(t.Outputs, ", "))
	}
	return nil
}

func levelString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (a *app) table(w io.Writer, name string) error {
	t, ok := gatelib.Lookup(name)
	if !ok {
		return errors.Wrap(workbench.ErrUnknownTemplate, name)
	}
	c, err := a.bench.Template(name)
	if err != nil {
		return err
	}
	rows, err := logicsim.TruthTable(c)
	if err != nil {
		return errors.Wrap(err, name)
	}
	style, _ := tableStyle(a.cfg.TableStyle)
	tab := tabulate.New(style)
	for _, n := range t.Inputs {
		tab.Header(n).SetAlign(tabulate.MC)
	}
	for _, n := range t.Outputs {
		tab.Header(n).SetAlign(tabulate.MC)
	}
	for _, r := range rows {
		row := tab.Row()
		for _, v := range r.In {
			row.Column(levelString(v))
		}
		for _, v := range r.Out {
			row.Column(levelString(v))
		}
	}
	tab.Print(w)
	return nil
}

func (a *app) compare(w io.Writer, n1, n2 string) error {
	c1, err := a.bench.Template(n1)
	if err != nil {
		return err
	}
	c2, err := a.bench.Template(n2)
	if err != nil {
		return err
	}
	if len(c1.Inputs()) != len(c2.Inputs()) || len(c1.Outputs()) != len(c2.Outputs()) {
		return errors.Errorf("%s and %s have different pin counts", n1, n2)
	}
	r1, err := logicsim.TruthTable(c1)
	if err != nil {
		return errors.Wrap(err, n1)
	}
	r2, err := logicsim.TruthTable(c2)
	if err != nil {
		return errors.Wrap(err, n2)
	}
	for i := range r1 {
		for o := range r1[i].Out {
			if r1[i].Out[o] != r2[i].Out[o] {
				fmt.Fprintf(w, "differ: inputs %v, output %d: %s=%v %s=%v\n",
					r1[i].In, o, n1, r1[i].Out[o], n2, r2[i].Out[o])
				return nil
			}
		}
	}
	fmt.Fprintf(w, "%s and %s are equivalent\n", n1, n2)
	return nil
}

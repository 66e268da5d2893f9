// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/Fantom-foundation/MockVM/go/config"
	cliUtils "github.com/Fantom-foundation/MockVM/go/driver/cli"
	"github.com/Fantom-foundation/MockVM/go/examples"
	"github.com/Fantom-foundation/MockVM/go/ledger"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/processor/driver"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run the transactions of a plan on its world state",
	ArgsUsage: "<plan.toml>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "print the collected metrics after the run",
		},
	},
}

func doRun(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one plan, got %d", context.Args().Len())
	}
	cfg, err := cliUtils.ConfigFlag.Fetch(context)
	if err != nil {
		return err
	}
	logger, err := cliUtils.NewLogger(cfg)
	if err != nil {
		return err
	}
	plan, err := LoadPlan(context.Args().First())
	if err != nil {
		return err
	}

	var registry *prometheus.Registry
	if context.Bool("metrics") {
		registry = prometheus.NewRegistry()
	}
	summary, err := runPlan(cfg, plan, logger, registry, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("%d transactions, %d failed, %s gas used\n",
		summary.Transactions, summary.Failed, unitconv.FormatPrefix(float64(summary.GasUsed), unitconv.SI, 0))

	if registry != nil {
		families, err := registry.Gather()
		if err != nil {
			return err
		}
		for _, family := range families {
			for _, metric := range family.GetMetric() {
				labels := make([]string, 0, len(metric.GetLabel()))
				for _, label := range metric.GetLabel() {
					labels = append(labels, label.GetName()+"="+label.GetValue())
				}
				value := metric.GetCounter().GetValue()
				if histogram := metric.GetHistogram(); histogram != nil {
					value = float64(histogram.GetSampleCount())
				}
				fmt.Printf("%s{%s} %v\n", family.GetName(), strings.Join(labels, ","), value)
			}
		}
	}
	return nil
}

type runSummary struct {
	Transactions int
	Failed       int
	GasUsed      uint64
}

// runPlan executes all transactions of the plan in order and writes one
// line per transaction to out. With the ledger enabled, every transaction
// is recorded in it as well.
func runPlan(cfg config.Config, plan *Plan, logger *slog.Logger, registry prometheus.Registerer, out io.Writer) (runSummary, error) {
	var summary runSummary
	processorConfig, err := driver.ConfigFrom(cfg)
	if err != nil {
		return summary, err
	}
	exec, err := driver.NewExecutor(cfg, examples.Contracts())
	if err != nil {
		return summary, err
	}
	state, err := plan.State()
	if err != nil {
		return summary, err
	}

	opts := []driver.Option{driver.WithLogger(logger)}
	if registry != nil {
		opts = append(opts, driver.WithMetrics(registry))
	}
	if cfg.Ledger.Enabled {
		l, err := ledger.Open(cfg.Ledger.DSN)
		if err != nil {
			return summary, err
		}
		defer l.Close()
		opts = append(opts, driver.WithJournal(l))
	}
	processor, err := driver.New(processorConfig, state, exec, opts...)
	if err != nil {
		return summary, err
	}

	for i := range plan.Transactions {
		tx := &plan.Transactions[i]
		input, err := tx.Input(i)
		if err != nil {
			return summary, fmt.Errorf("transaction %d: %w", i, err)
		}
		var res mockvm.TxResult
		switch {
		case tx.Deploy != "":
			code, err := loadCode(tx.Deploy)
			if err != nil {
				return summary, fmt.Errorf("transaction %d: %w", i, err)
			}
			res = processor.Deploy(input, code, nil)
		case tx.Query:
			res = processor.Query(input)
		default:
			res = processor.Execute(input)
		}

		summary.Transactions++
		summary.GasUsed += res.GasUsed
		if res.Failed() {
			summary.Failed++
		}
		printResult(out, i, &res)
	}
	return summary, nil
}

func printResult(out io.Writer, position int, res *mockvm.TxResult) {
	fmt.Fprintf(out, "#%d %v", position, res.ResultStatus)
	if res.ResultMessage != "" {
		fmt.Fprintf(out, " %q", res.ResultMessage)
	}
	fmt.Fprintf(out, " gas=%s", unitconv.FormatPrefix(float64(res.GasUsed), unitconv.SI, 0))
	if res.NewDeployedAddress != nil {
		fmt.Fprintf(out, " deployed=%v", *res.NewDeployedAddress)
	}
	for _, value := range res.ResultValues {
		fmt.Fprintf(out, " 0x%s", hex.EncodeToString(value))
	}
	fmt.Fprintln(out)
	for _, log := range res.ResultLogs {
		fmt.Fprintf(out, "  %v\n", log)
	}
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Fantom-foundation/MockVM/go/config"
)

type configFlagType struct {
	flag cli.StringFlag
}

var ConfigFlag = configFlagType{
	cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "TOML file with the VM configuration; MOCKVM_* environment variables take precedence",
		TakesFile: true,
	},
}

func (f *configFlagType) GetFlag() cli.Flag {
	return &f.flag
}

// Fetch loads the configuration named by the flag, or the defaults if the
// flag is not set, and applies the environment overrides.
func (f *configFlagType) Fetch(context *cli.Context) (config.Config, error) {
	return config.Load(context.String(f.flag.Name))
}

type cpuProfileFlagType struct {
	flag cli.StringFlag
}

var CpuProfileFlag = cpuProfileFlagType{
	cli.StringFlag{
		Name:      "cpuprofile",
		Usage:     "store CPU profile in the provided filename",
		TakesFile: true,
	},
}

func (f *cpuProfileFlagType) GetFlag() cli.Flag {
	return &f.flag
}

func (f *cpuProfileFlagType) Fetch(context *cli.Context) string {
	return context.String(f.flag.Name)
}

// AddCommonFlags adds the configuration and profiling flags to a command.
func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, ConfigFlag.GetFlag(), CpuProfileFlag.GetFlag())

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {
		if filename := CpuProfileFlag.Fetch(ctx); filename != "" {
			f, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}
		return action(ctx)
	}
	return command
}

// NewLogger creates a text logger writing to stderr at the configured
// level.
func NewLogger(c config.Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

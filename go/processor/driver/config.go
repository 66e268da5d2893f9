// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package driver

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Fantom-foundation/MockVM/go/builtin"
	"github.com/Fantom-foundation/MockVM/go/config"
	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/executor/native"
	"github.com/Fantom-foundation/MockVM/go/executor/wazero"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
)

// SyncCallFailure decides what a failed synchronous call costs its caller.
type SyncCallFailure string

const (
	// SyncCallConsume keeps the whole gas budget of the failed call
	// consumed.
	SyncCallConsume SyncCallFailure = "consume"
	// SyncCallRefund charges only the gas the failed call actually used.
	SyncCallRefund SyncCallFailure = "refund"
)

// AutoExecutor names the executor running WebAssembly code on wazero and
// everything else as native contract.
const AutoExecutor = "auto"

type Config struct {
	MaxCallDepth    int
	SyncCallFailure SyncCallFailure
	// RefundUnused credits unused gas of contract executions back to the
	// sender. Plain transfers always consume their full gas limit.
	RefundUnused bool
	// FeeCollector receives the fees; nil burns them.
	FeeCollector            *mockvm.Address
	DeveloperRewardsPercent uint64
	GasSchedule             vmhooks.GasSchedule
	BuiltIns                builtin.Options
	Compilation             executor.CompilationOptions
}

func DefaultConfig() Config {
	return Config{
		MaxCallDepth:            10,
		SyncCallFailure:         SyncCallConsume,
		RefundUnused:            true,
		DeveloperRewardsPercent: 30,
		GasSchedule:             vmhooks.DefaultGasSchedule(),
		BuiltIns:                builtin.DefaultOptions(),
		Compilation: executor.CompilationOptions{
			MaxMemoryGrow:      64,
			MaxMemoryGrowDelta: 16,
			Metering:           true,
			RuntimeBreakpoints: true,
		},
	}
}

func (c *Config) Validate() error {
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max call depth must be positive, got %d", c.MaxCallDepth)
	}
	switch c.SyncCallFailure {
	case SyncCallConsume, SyncCallRefund:
	default:
		return fmt.Errorf("unknown sync call failure policy %q", string(c.SyncCallFailure))
	}
	if c.DeveloperRewardsPercent > 100 {
		return fmt.Errorf("developer rewards exceed 100%%: %d", c.DeveloperRewardsPercent)
	}
	return c.BuiltIns.NFTCreatePolicy.Validate()
}

// ConfigFrom derives the processor configuration from the file based
// settings.
func ConfigFrom(c config.Config) (Config, error) {
	res := DefaultConfig()
	res.MaxCallDepth = c.Gas.MaxCallDepth
	res.SyncCallFailure = SyncCallFailure(c.Gas.SyncCallFailure)
	res.RefundUnused = c.Gas.RefundUnused
	res.DeveloperRewardsPercent = c.Gas.DeveloperRewardsPercent
	res.BuiltIns.GasCost = c.Gas.BuiltInCost
	res.BuiltIns.NFTCreatePolicy = builtin.NFTCreatePolicy(c.Tokens.NFTCreatePolicy)
	res.Compilation.MaxMemoryGrow = c.Executor.MaxMemoryGrow
	res.Compilation.MaxMemoryGrowDelta = c.Executor.MaxMemoryGrowDelta
	if c.Gas.FeeCollector != "" {
		collector, err := parseAddress(c.Gas.FeeCollector)
		if err != nil {
			return res, fmt.Errorf("invalid fee collector: %w", err)
		}
		res.FeeCollector = &collector
	}
	return res, res.Validate()
}

func parseAddress(text string) (mockvm.Address, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(text, "0x"))
	if err != nil {
		return mockvm.Address{}, err
	}
	return mockvm.AddressFromBytes(data)
}

// NewExecutor creates the executor named by the configuration. The auto
// executor dispatches between wazero and the given native contracts.
func NewExecutor(c config.Config, contracts map[string]native.Contract) (executor.Executor, error) {
	wasmConfig := wazero.Config{
		ModuleCacheSize: c.Executor.ModuleCacheSize,
		MaxMemoryPages:  c.Executor.MaxMemoryPages,
	}
	switch strings.ToLower(c.Executor.Name) {
	case AutoExecutor:
		wasm, err := executor.NewExecutor("wazero", wasmConfig)
		if err != nil {
			return nil, err
		}
		natives, err := executor.NewExecutor("native", contracts)
		if err != nil {
			return nil, err
		}
		return executor.NewDispatcher(wasm, natives), nil
	case "wazero":
		return executor.NewExecutor("wazero", wasmConfig)
	case "native":
		return executor.NewExecutor("native", contracts)
	default:
		return executor.NewExecutor(c.Executor.Name)
	}
}

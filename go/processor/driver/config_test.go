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
	"testing"

	"github.com/Fantom-foundation/MockVM/go/builtin"
	"github.com/Fantom-foundation/MockVM/go/config"
	"github.com/Fantom-foundation/MockVM/go/examples"
	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Errorf("default configuration is invalid: %v", err)
	}
}

func TestConfig_ValidateRejectsBrokenSettings(t *testing.T) {
	tests := map[string]func(*Config){
		"zero depth":       func(c *Config) { c.MaxCallDepth = 0 },
		"unknown policy":   func(c *Config) { c.SyncCallFailure = "ignore" },
		"excess rewards":   func(c *Config) { c.DeveloperRewardsPercent = 101 },
		"unknown creation": func(c *Config) { c.BuiltIns.NFTCreatePolicy = "replace" },
	}
	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			modify(&c)
			if err := c.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestConfigFrom_DefaultsMatch(t *testing.T) {
	c, err := ConfigFrom(config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultConfig()
	if c.MaxCallDepth != want.MaxCallDepth || c.SyncCallFailure != want.SyncCallFailure ||
		c.RefundUnused != want.RefundUnused || c.DeveloperRewardsPercent != want.DeveloperRewardsPercent ||
		c.BuiltIns != want.BuiltIns || c.Compilation != want.Compilation || c.FeeCollector != nil {
		t.Errorf("unexpected configuration\nwant %+v\ngot  %+v", want, c)
	}
}

func TestConfigFrom_TakesOverSettings(t *testing.T) {
	collector := mockvm.NamedAddress("collector")
	file := config.Default()
	file.Gas.MaxCallDepth = 3
	file.Gas.SyncCallFailure = string(SyncCallRefund)
	file.Gas.FeeCollector = collector.String()
	file.Gas.BuiltInCost = 7
	file.Tokens.NFTCreatePolicy = string(builtin.NFTCreateMerge)

	c, err := ConfigFrom(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MaxCallDepth != 3 || c.SyncCallFailure != SyncCallRefund || c.BuiltIns.GasCost != 7 {
		t.Errorf("settings not taken over: %+v", c)
	}
	if c.BuiltIns.NFTCreatePolicy != builtin.NFTCreateMerge {
		t.Errorf("unexpected policy %v", c.BuiltIns.NFTCreatePolicy)
	}
	if c.FeeCollector == nil || *c.FeeCollector != collector {
		t.Errorf("unexpected fee collector %v", c.FeeCollector)
	}
}

func TestConfigFrom_RejectsInvalidSettings(t *testing.T) {
	tests := map[string]func(*config.Config){
		"collector not hex":   func(c *config.Config) { c.Gas.FeeCollector = "0xzz" },
		"collector too short": func(c *config.Config) { c.Gas.FeeCollector = "0x0102" },
		"depth":               func(c *config.Config) { c.Gas.MaxCallDepth = -1 },
		"policy":              func(c *config.Config) { c.Tokens.NFTCreatePolicy = "replace" },
	}
	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			file := config.Default()
			modify(&file)
			if _, err := ConfigFrom(file); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestNewExecutor_CreatesConfiguredExecutor(t *testing.T) {
	for _, name := range []string{AutoExecutor, "wazero", "native", "NATIVE"} {
		t.Run(name, func(t *testing.T) {
			file := config.Default()
			file.Executor.Name = name
			exec, err := NewExecutor(file, examples.Contracts())
			if err != nil {
				t.Fatalf("failed to create executor: %v", err)
			}
			if exec == nil {
				t.Fatalf("no executor created")
			}
		})
	}
	file := config.Default()
	file.Executor.Name = "evmone"
	if _, err := NewExecutor(file, nil); err == nil {
		t.Errorf("unknown executor should be rejected")
	}
}

func TestNewExecutor_AutoDispatchesNativeCode(t *testing.T) {
	exec, err := NewExecutor(config.Default(), examples.Contracts())
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	if _, ok := exec.(*executor.Dispatcher); !ok {
		t.Errorf("unexpected executor type %T", exec)
	}
	instance, err := exec.NewInstance(nil, []byte(examples.AdderCode), executor.CompilationOptions{})
	if err != nil {
		t.Fatalf("failed to instantiate native code: %v", err)
	}
	if !instance.HasFunction("add") {
		t.Errorf("adder instance lacks add endpoint")
	}
}

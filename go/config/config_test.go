// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mockvm.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFile_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, `
[gas]
max_call_depth = 4
sync_call_failure = "refund"

[tokens]
nft_create_policy = "merge"
`)
	c := Default()
	if err := LoadFile(path, &c); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if c.Gas.MaxCallDepth != 4 || c.Gas.SyncCallFailure != "refund" || c.Tokens.NFTCreatePolicy != "merge" {
		t.Errorf("file settings not applied: %+v", c)
	}
	if want, got := Default().Gas.BuiltInCost, c.Gas.BuiltInCost; want != got {
		t.Errorf("default lost, wanted %d, got %d", want, got)
	}
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "[gas]\nmax_depth = 4\n")
	c := Default()
	err := LoadFile(path, &c)
	if err == nil || !strings.Contains(err.Error(), "gas.max_depth") {
		t.Errorf("unknown key not reported: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MOCKVM_GAS_MAX_CALL_DEPTH", "3")
	t.Setenv("MOCKVM_GAS_REFUND_UNUSED", "false")
	t.Setenv("MOCKVM_EXECUTOR_NAME", "native")
	t.Setenv("MOCKVM_LOG_LEVEL", "debug")

	c := Default()
	if err := ApplyEnv(&c); err != nil {
		t.Fatalf("failed to apply environment: %v", err)
	}
	if c.Gas.MaxCallDepth != 3 || c.Gas.RefundUnused || c.Executor.Name != "native" || c.Log.Level != "debug" {
		t.Errorf("environment not applied: %+v", c)
	}
}

func TestApplyEnv_ReportsMalformedValues(t *testing.T) {
	t.Setenv("MOCKVM_GAS_BUILTIN_COST", "lots")
	t.Setenv("MOCKVM_LEDGER_ENABLED", "maybe")

	c := Default()
	err := ApplyEnv(&c)
	if err == nil {
		t.Fatalf("malformed values accepted")
	}
	for _, name := range []string{"MOCKVM_GAS_BUILTIN_COST", "MOCKVM_LEDGER_ENABLED"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("%s not reported: %v", name, err)
		}
	}
	if c.Gas.BuiltInCost != Default().Gas.BuiltInCost {
		t.Errorf("malformed value changed the setting")
	}
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeFile(t, "[log]\nlevel = \"warn\"\n[gas]\nbuiltin_cost = 7\n")
	t.Setenv("MOCKVM_LOG_LEVEL", "error")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if c.Log.Level != "error" || c.Gas.BuiltInCost != 7 {
		t.Errorf("unexpected configuration: %+v", c)
	}
}

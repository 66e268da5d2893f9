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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Fantom-foundation/MockVM/go/config"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}
	return path
}

func adderPlan() string {
	adder := txcache.DeriveContractAddress(mockvm.NamedAddress("alice"), 0)
	return fmt.Sprintf(`
[[accounts]]
address = "alice"
balance = "1000000"

[[accounts]]
address = "bob"

[[transactions]]
from = "alice"
deploy = "adder"
args = ["05"]
gas_limit = 10000
gas_price = 1

[[transactions]]
from = "alice"
to = "%[1]v"
function = "add"
args = ["03"]
gas_limit = 10000
gas_price = 1

[[transactions]]
from = "alice"
to = "%[1]v"
function = "getSum"
gas_limit = 10000
query = true

[[transactions]]
from = "bob"
to = "alice"
value = "10"
gas_limit = 100
gas_price = 1
`, adder)
}

func TestLoadPlan_ParsesAccountsAndTransactions(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, adderPlan()))
	if err != nil {
		t.Fatalf("failed to load plan: %v", err)
	}
	if want, got := 2, len(plan.Accounts); want != got {
		t.Fatalf("unexpected number of accounts, wanted %d, got %d", want, got)
	}
	if want, got := 4, len(plan.Transactions); want != got {
		t.Fatalf("unexpected number of transactions, wanted %d, got %d", want, got)
	}
	if !plan.Transactions[2].Query {
		t.Errorf("third transaction should be a query")
	}
}

func TestLoadPlan_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadPlan(writePlan(t, "[[transactions]]\nfrom = \"alice\"\nfee = 12\n"))
	if err == nil || !strings.Contains(err.Error(), "fee") {
		t.Errorf("expected unknown key to be reported, got %v", err)
	}
}

func TestPlan_StateBuildsAccounts(t *testing.T) {
	plan := &Plan{Accounts: []PlanAccount{
		{Address: "alice", Balance: "0x10", Nonce: 3},
		{
			Address: "sc:adder",
			Code:    "adder",
			Owner:   "alice",
			Storage: map[string]string{"sum": "07"},
			Tokens:  []PlanToken{{ID: "FOO-123456", Amount: "5", Roles: []string{"ESDTRoleLocalMint"}}},
		},
	}}
	state, err := plan.State()
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	alice, found := state.GetAccount(mockvm.NamedAddress("alice"))
	if !found {
		t.Fatalf("alice is missing")
	}
	if alice.Balance.Int64() != 16 || alice.Nonce != 3 {
		t.Errorf("unexpected account of alice: %v", alice)
	}
	adder, found := state.GetAccount(mockvm.NamedContractAddress("adder"))
	if !found {
		t.Fatalf("contract is missing")
	}
	if want, got := "adder", string(adder.Code); want != got {
		t.Errorf("unexpected code, wanted %q, got %q", want, got)
	}
	if !bytes.Equal(adder.GetStorage([]byte("sum")), []byte{7}) {
		t.Errorf("unexpected storage: %x", adder.GetStorage([]byte("sum")))
	}
	if adder.GetESDTBalance([]byte("FOO-123456"), 0).Int64() != 5 {
		t.Errorf("unexpected token balance")
	}
	if !adder.HasRole([]byte("FOO-123456"), "ESDTRoleLocalMint") {
		t.Errorf("role is missing")
	}
}

func TestPlan_StateReportsInvalidInput(t *testing.T) {
	tests := map[string]PlanAccount{
		"bad hex address": {Address: "0xzz"},
		"short address":   {Address: "0x1234"},
		"negative amount": {Address: "alice", Balance: "-1"},
		"bad storage":     {Address: "sc:c", Code: "adder", Storage: map[string]string{"k": "xyz"}},
		"unknown role":    {Address: "alice", Tokens: []PlanToken{{ID: "FOO", Amount: "1", Roles: []string{"nope"}}}},
		"code on user":    {Address: "alice", Code: "adder"},
		"missing address": {},
	}
	for name, account := range tests {
		t.Run(name, func(t *testing.T) {
			plan := &Plan{Accounts: []PlanAccount{account}}
			if _, err := plan.State(); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestRunPlan_ExecutesTransactionsInOrder(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, adderPlan()))
	if err != nil {
		t.Fatalf("failed to load plan: %v", err)
	}
	var out bytes.Buffer
	summary, err := runPlan(config.Default(), plan, slog.Default(), nil, &out)
	if err != nil {
		t.Fatalf("failed to run plan: %v", err)
	}
	if want, got := 4, summary.Transactions; want != got {
		t.Errorf("unexpected number of transactions, wanted %d, got %d", want, got)
	}
	// bob has no funds to pay for his transfer
	if want, got := 1, summary.Failed; want != got {
		t.Errorf("unexpected number of failures, wanted %d, got %d\n%s", want, got, out.String())
	}

	lines := strings.Split(out.String(), "\n")
	var results []string
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			results = append(results, line)
		}
	}
	if len(results) != 4 {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if !strings.HasPrefix(results[0], "#0 ok") || !strings.Contains(results[0], "deployed=") {
		t.Errorf("unexpected deploy result: %s", results[0])
	}
	if !strings.HasPrefix(results[1], "#1 ok") {
		t.Errorf("unexpected call result: %s", results[1])
	}
	if !strings.HasPrefix(results[2], "#2 ok") || !strings.HasSuffix(results[2], " 0x08") {
		t.Errorf("unexpected query result: %s", results[2])
	}
	if !strings.HasPrefix(results[3], "#3 user error") {
		t.Errorf("unexpected transfer result: %s", results[3])
	}
}

func TestRunPlan_RecordsMetricsAndLedger(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, adderPlan()))
	if err != nil {
		t.Fatalf("failed to load plan: %v", err)
	}
	cfg := config.Default()
	cfg.Ledger.Enabled = true
	cfg.Ledger.DSN = "file:" + t.Name() + "?mode=memory&cache=shared"

	registry := prometheus.NewRegistry()
	var out bytes.Buffer
	if _, err := runPlan(cfg, plan, slog.Default(), registry, &out); err != nil {
		t.Fatalf("failed to run plan: %v", err)
	}
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	if len(families) == 0 {
		t.Errorf("no metrics were collected")
	}
}

func TestRunPlan_ReportsInvalidTransactions(t *testing.T) {
	plan := &Plan{
		Accounts:     []PlanAccount{{Address: "alice", Balance: "100"}},
		Transactions: []PlanTransaction{{From: "alice", To: "0x12"}},
	}
	var out bytes.Buffer
	if _, err := runPlan(config.Default(), plan, slog.Default(), nil, &out); err == nil {
		t.Errorf("expected invalid receiver to be reported")
	}
}

func TestExportedFunctions_ListsNativeEndpoints(t *testing.T) {
	names, err := exportedFunctions(config.Default(), []byte("adder"))
	if err != nil {
		t.Fatalf("failed to list exports: %v", err)
	}
	want := []string{"add", "getSum", "init", "upgrade"}
	if fmt.Sprint(want) != fmt.Sprint(names) {
		t.Errorf("unexpected exports, wanted %v, got %v", want, names)
	}
}

func TestExportedFunctions_UnknownContractFails(t *testing.T) {
	if _, err := exportedFunctions(config.Default(), []byte("unknown")); err == nil {
		t.Errorf("expected unknown contract to be reported")
	}
}

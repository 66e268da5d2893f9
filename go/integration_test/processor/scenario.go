// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/examples"
	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/processor/driver"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// Scenario represents a test scenario for the transaction processor. A
// scenario consists of a world state before and after the operation, a
// transaction to be executed and the expected result.
type Scenario struct {
	Before      WorldState
	After       WorldState
	Transaction mockvm.TxInput
	Result      mockvm.TxResult
}

// Run executes the transaction of the scenario on a processor with the
// given configuration and checks the outcome. Logs, values and the
// deployed address of the expected result are always compared; gas only
// if the expected result names a non-zero amount.
func (s *Scenario) Run(t *testing.T, config driver.Config) mockvm.TxResult {
	t.Helper()
	state := s.Before.Build(t)
	p := newProcessor(t, config, state)
	input := s.Transaction
	res := p.Execute(&input)

	if want, got := s.After.Build(t), state; !want.Equal(got) {
		diff := strings.Join(got.Diff(want), "\n\t")
		t.Fatalf("unexpected world state after the operation: \n\t%v", diff)
	}

	if want, got := s.Result.ResultStatus, res.ResultStatus; want != got {
		t.Errorf("unexpected status, want %v, got %v", want, got)
	}
	if want, got := s.Result.ResultMessage, res.ResultMessage; want != got {
		t.Errorf("unexpected message, want %q, got %q", want, got)
	}
	if want, got := s.Result.GasUsed, res.GasUsed; want != 0 && want != got {
		t.Errorf("unexpected gas used, want %v, got %v", want, got)
	}
	if want, got := s.Result.ResultValues, res.ResultValues; !equalValues(want, got) {
		t.Errorf("unexpected values, want %x, got %x", want, got)
	}
	if len(res.ResultLogs) != len(s.Result.ResultLogs) {
		t.Fatalf("unexpected logs: %v", res.ResultLogs)
	}
	for i, want := range s.Result.ResultLogs {
		if got := res.ResultLogs[i]; !want.Equal(got) {
			t.Errorf("unexpected log %d\nwant %v\ngot  %v", i, want, got)
		}
	}
	return res
}

func newProcessor(t *testing.T, config driver.Config, state *world.State) *driver.Processor {
	t.Helper()
	exec, err := executor.NewExecutor("native", examples.Contracts())
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	p, err := driver.New(config, state, exec)
	if err != nil {
		t.Fatalf("failed to create processor: %v", err)
	}
	return p
}

func equalValues(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package driver executes transactions on a world state. It charges the
// sender, moves value, dispatches to built-in functions or contract code,
// runs nested, async and callback invocations and settles the fees.
package driver

import (
	"log/slog"
	"math/big"
	"sync"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Fantom-foundation/MockVM/go/builtin"
	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
	"github.com/Fantom-foundation/MockVM/go/world"
)

const (
	ErrMaxCallDepth = mockvm.ConstError("max call depth reached")
	ErrEmptyCode    = mockvm.ConstError("invalid contract code")
)

//go:generate mockgen -source processor.go -destination processor_mock.go -package driver

// Journal records executed transactions.
type Journal interface {
	Record(input *mockvm.TxInput, result *mockvm.TxResult) error
}

// Processor runs transactions one at a time on a shared world state.
type Processor struct {
	config   Config
	state    *world.State
	adapter  *executor.Adapter
	builtIns *builtin.Registry
	journal  Journal
	metrics  *metrics
	logger   *slog.Logger
	mutex    sync.Mutex
}

type options struct {
	logger     *slog.Logger
	journal    Journal
	registerer prometheus.Registerer
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithJournal records every executed transaction in the given journal.
func WithJournal(journal Journal) Option {
	return func(o *options) { o.journal = journal }
}

// WithMetrics registers the metrics of the processor.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(o *options) { o.registerer = registerer }
}

func New(config Config, state *world.State, exec executor.Executor, opts ...Option) (*Processor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	builtIns, err := builtin.NewRegistry(config.BuiltIns)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, err
	}
	return &Processor{
		config:   config,
		state:    state,
		adapter:  executor.NewAdapter(exec, config.Compilation, o.logger),
		builtIns: builtIns,
		journal:  o.journal,
		metrics:  m,
		logger:   o.logger,
	}, nil
}

// State returns the world state the processor operates on.
func (p *Processor) State() *world.State {
	return p.state
}

// Execute runs a call or transfer transaction. A transaction that passes
// the charging of the sender increments the sender nonce and pays for its
// gas, whatever the outcome of its execution. Other changes are committed
// only if the transaction succeeds.
func (p *Processor) Execute(input *mockvm.TxInput) mockvm.TxResult {
	return p.run("call", input, func(t *transaction, cache *txcache.Cache, _ uint64) mockvm.TxResult {
		plain := !p.builtIns.IsBuiltIn(input.FuncName) && !isContract(cache, input.To)
		res := t.invoke(cache, input)
		if plain {
			res.GasUsed = input.GasLimit
		}
		return res
	})
}

// Deploy creates a new contract from the given code and runs its init
// endpoint with the arguments of the input. The address of the contract is
// determined by the sender and its nonce before the transaction.
func (p *Processor) Deploy(input *mockvm.TxInput, code, codeMetadata []byte) mockvm.TxResult {
	return p.run("deploy", input, func(t *transaction, cache *txcache.Cache, nonce uint64) mockvm.TxResult {
		return t.deploy(cache, input, code, codeMetadata, nonce)
	})
}

// Query runs a contract endpoint without charging anybody and without
// committing any change. Failures are reported as query errors.
func (p *Processor) Query(input *mockvm.TxInput) mockvm.TxResult {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	t := p.newTransaction(input)
	res := t.invoke(txcache.New(p.state), input)
	res.PendingCalls = nil
	if res.Failed() {
		res.ResultStatus = mockvm.VMQueryError
	}
	p.finish("query", input, &res)
	return res
}

func (p *Processor) run(kind string, input *mockvm.TxInput, body func(*transaction, *txcache.Cache, uint64) mockvm.TxResult) mockvm.TxResult {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	nonce, err := p.charge(input)
	if err != nil {
		res := txcache.ToResult(err)
		p.finish(kind, input, &res)
		return res
	}

	t := p.newTransaction(input)
	cache := txcache.New(p.state)
	res := body(t, cache, nonce)
	if res.Succeeded() {
		res = t.runAsync(cache, res)
	}
	if res.Succeeded() {
		if err := cache.Commit(p.state); err != nil {
			p.logger.Warn("failed to commit transaction", "tx", input.TxHash, "err", err)
			failed := txcache.ToResult(err)
			failed.ResultLogs = res.ResultLogs
			res = failed
		}
	}
	if res.Failed() {
		res.GasUsed = input.GasLimit
	}
	p.settle(input, &res)
	p.finish(kind, input, &res)
	return res
}

// charge increments the nonce of the sender and takes the maximum fee of
// the transaction from its balance. It returns the nonce before the
// increment. A failed charge leaves the world untouched.
func (p *Processor) charge(input *mockvm.TxInput) (uint64, error) {
	fee, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(input.GasLimit), uint256.NewInt(input.GasPrice))
	if overflow {
		return 0, txcache.UserError(txcache.MsgInsufficientFunds)
	}
	account, found := p.state.GetAccount(input.From)
	if !found {
		return 0, txcache.UserError(txcache.MsgAccountNotFound)
	}
	cache := txcache.New(p.state)
	if err := cache.IncreaseAccountNonce(input.From); err != nil {
		return 0, err
	}
	if err := cache.SubtractTxGas(input.From, fee.ToBig()); err != nil {
		return 0, err
	}
	return account.Nonce, cache.Commit(p.state)
}

// settle refunds unused gas to the sender and distributes the fee of the
// consumed gas among the developer of the called contract and the fee
// collector. Without collector, the remainder of the fee is burned.
func (p *Processor) settle(input *mockvm.TxInput, res *mockvm.TxResult) {
	used := min(res.GasUsed, input.GasLimit)
	if !p.config.RefundUnused {
		used = input.GasLimit
	}
	res.GasUsed = used
	res.GasRefund = input.GasLimit - used

	price := uint256.NewInt(input.GasPrice)
	refund := new(uint256.Int).Mul(price, uint256.NewInt(res.GasRefund))
	fee := new(uint256.Int).Mul(price, uint256.NewInt(used))

	if !refund.IsZero() {
		p.mutate(input.From, false, func(account *world.Account) error {
			return account.IncreaseBalance(refund.ToBig())
		})
	}

	target := input.To
	if res.NewDeployedAddress != nil {
		target = *res.NewDeployedAddress
	}
	if res.Succeeded() && p.config.DeveloperRewardsPercent > 0 {
		if account, found := p.state.GetAccount(target); found && account.IsContract() {
			reward := new(uint256.Int).Mul(fee, uint256.NewInt(p.config.DeveloperRewardsPercent))
			reward.Div(reward, uint256.NewInt(100))
			fee.Sub(fee, reward)
			p.mutate(target, false, func(account *world.Account) error {
				account.DeveloperRewards = new(big.Int).Add(bigOrZero(account.DeveloperRewards), reward.ToBig())
				return nil
			})
		}
	}

	if p.config.FeeCollector != nil && !fee.IsZero() {
		p.mutate(*p.config.FeeCollector, true, func(account *world.Account) error {
			return account.IncreaseBalance(fee.ToBig())
		})
	}
}

func (p *Processor) mutate(address mockvm.Address, create bool, f func(*world.Account) error) {
	var err error
	if create {
		err = p.state.MutateOrCreateAccount(address, f)
	} else {
		err = p.state.MutateAccount(address, f)
	}
	if err != nil {
		p.logger.Warn("failed to settle fees", "address", address, "err", err)
	}
}

func (p *Processor) finish(kind string, input *mockvm.TxInput, res *mockvm.TxResult) {
	p.metrics.transaction(kind, res)
	p.logger.Debug("transaction executed",
		"kind", kind,
		"from", input.From,
		"to", input.To,
		"endpoint", input.FuncName,
		"status", res.ResultStatus,
		"gas", res.GasUsed,
	)
	if p.journal == nil {
		return
	}
	if err := p.journal.Record(input, res); err != nil {
		p.logger.Warn("failed to record transaction", "tx", input.TxHash, "err", err)
	}
}

func isContract(cache *txcache.Cache, address mockvm.Address) bool {
	account, found := cache.GetAccount(address)
	return found && account.IsContract()
}

func bigOrZero(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return value
}

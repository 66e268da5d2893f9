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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

type metrics struct {
	transactions *prometheus.CounterVec
	gasUsed      prometheus.Histogram
	builtIns     *prometheus.CounterVec
	asyncSteps   *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	res := &metrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mockvm",
			Name:      "transactions_total",
			Help:      "Number of executed transactions by kind and result status.",
		}, []string{"kind", "status"}),
		gasUsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mockvm",
			Name:      "transaction_gas_used",
			Help:      "Gas consumed by executed transactions.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
		}),
		builtIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mockvm",
			Name:      "builtin_calls_total",
			Help:      "Number of built-in function executions by function and result status.",
		}, []string{"function", "status"}),
		asyncSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mockvm",
			Name:      "async_steps_total",
			Help:      "Number of executed async calls and callbacks.",
		}, []string{"step", "status"}),
	}
	if registerer == nil {
		return res, nil
	}
	for _, collector := range []prometheus.Collector{res.transactions, res.gasUsed, res.builtIns, res.asyncSteps} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (m *metrics) transaction(kind string, res *mockvm.TxResult) {
	m.transactions.WithLabelValues(kind, res.ResultStatus.String()).Inc()
	m.gasUsed.Observe(float64(res.GasUsed))
}

func (m *metrics) builtIn(function string, res *mockvm.TxResult) {
	m.builtIns.WithLabelValues(function, res.ResultStatus.String()).Inc()
}

func (m *metrics) asyncStep(step string, res *mockvm.TxResult) {
	m.asyncSteps.WithLabelValues(step, res.ResultStatus.String()).Inc()
}

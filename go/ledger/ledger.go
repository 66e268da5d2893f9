// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledger keeps a queryable record of executed transactions and
// their logs in an SQL database.
package ledger

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

// Transaction is the recorded outcome of one transaction.
type Transaction struct {
	gorm.Model
	TxHash    string `gorm:"column:tx_hash;not null;index;size:66"`
	Sender    string `gorm:"column:sender;not null;index;size:66"`
	Receiver  string `gorm:"column:receiver;not null;index;size:66"`
	Function  string `gorm:"column:function;size:255"`
	Value     string `gorm:"column:value;not null;default:'0'"`
	GasLimit  uint64 `gorm:"column:gas_limit;not null"`
	GasUsed   uint64 `gorm:"column:gas_used;not null"`
	Status    uint64 `gorm:"column:status;not null;index"`
	Message   string `gorm:"column:message"`
	Deployed  string `gorm:"column:deployed_address;size:66"`
	NumValues int    `gorm:"column:num_values;not null"`
	Logs      []Log  `gorm:"foreignKey:TransactionID"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Log is a log entry emitted by a recorded transaction.
type Log struct {
	gorm.Model
	TransactionID uint     `gorm:"column:transaction_id;not null;index"`
	Position      int      `gorm:"column:position;not null"`
	Address       string   `gorm:"column:address;not null;index;size:66"`
	Endpoint      string   `gorm:"column:endpoint;size:255"`
	Topics        [][]byte `gorm:"column:topics;serializer:json"`
	Data          []byte   `gorm:"column:data;type:blob"`
}

func (Log) TableName() string {
	return "logs"
}

// Ledger stores transactions. It can be used as journal of a processor.
type Ledger struct {
	db *gorm.DB
}

// Open connects to the SQLite database identified by dsn and prepares its
// schema.
func Open(dsn string) (*Ledger, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	if err := db.AutoMigrate(&Transaction{}, &Log{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger: %w", err)
	}
	return &Ledger{db: db}, nil
}

func (l *Ledger) Close() error {
	db, err := l.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// Record stores a transaction with its logs.
func (l *Ledger) Record(input *mockvm.TxInput, result *mockvm.TxResult) error {
	tx := Transaction{
		TxHash:    input.TxHash.String(),
		Sender:    input.From.String(),
		Receiver:  input.To.String(),
		Function:  input.FuncName,
		Value:     input.GetEGLDValue().String(),
		GasLimit:  input.GasLimit,
		GasUsed:   result.GasUsed,
		Status:    uint64(result.ResultStatus),
		Message:   result.ResultMessage,
		NumValues: len(result.ResultValues),
	}
	if result.NewDeployedAddress != nil {
		tx.Deployed = result.NewDeployedAddress.String()
	}
	for i, log := range result.ResultLogs {
		tx.Logs = append(tx.Logs, Log{
			Position: i,
			Address:  log.Address.String(),
			Endpoint: log.Endpoint,
			Topics:   log.Topics,
			Data:     log.Data,
		})
	}
	return l.db.Transaction(func(db *gorm.DB) error {
		return db.Create(&tx).Error
	})
}

// TransactionsByHash returns all recorded transactions with the given
// hash in the order they were recorded, logs included.
func (l *Ledger) TransactionsByHash(hash mockvm.Hash) ([]Transaction, error) {
	var res []Transaction
	err := l.db.
		Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("tx_hash = ?", hash.String()).
		Order("id").
		Find(&res).Error
	return res, err
}

// LogsByAddress returns all logs emitted at the given address in the
// order they were emitted.
func (l *Ledger) LogsByAddress(address mockvm.Address) ([]Log, error) {
	var res []Log
	err := l.db.
		Where("address = ?", address.String()).
		Order("transaction_id, position").
		Find(&res).Error
	return res, err
}

// CountByStatus returns the number of recorded transactions that ended
// with the given status.
func (l *Ledger) CountByStatus(status mockvm.ReturnCode) (int64, error) {
	var res int64
	err := l.db.Model(&Transaction{}).Where("status = ?", uint64(status)).Count(&res).Error
	return res, err
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vmhooks

// GasSchedule lists the cost of the hook families. Every hook charges its
// cost before it reads or modifies anything.
type GasSchedule struct {
	BaseOp         uint64
	BigIntOp       uint64
	// BigIntPerWord is charged per 64-bit word of the result of big int
	// multiplications, exponentiations and left shifts.
	BigIntPerWord  uint64
	BigFloatOp     uint64
	BufferOp       uint64
	MapOp          uint64
	PerByte        uint64
	StorageLoad    uint64
	StorageStore   uint64
	PerStoredByte  uint64
	Log            uint64
	PerLogByte     uint64
	Hash           uint64
	VerifySig      uint64
	CreateContract uint64
	ExecuteOnDest  uint64
	TransferValue  uint64
	AsyncCall      uint64
}

// DefaultGasSchedule returns the costs used unless configured otherwise.
func DefaultGasSchedule() GasSchedule {
	return GasSchedule{
		BaseOp:         1,
		BigIntOp:       2,
		BigIntPerWord:  1,
		BigFloatOp:     4,
		BufferOp:       2,
		MapOp:          2,
		PerByte:        0,
		StorageLoad:    10,
		StorageStore:   50,
		PerStoredByte:  1,
		Log:            10,
		PerLogByte:     0,
		Hash:           20,
		VerifySig:      100,
		CreateContract: 200,
		ExecuteOnDest:  50,
		TransferValue:  20,
		AsyncCall:      50,
	}
}

// FreeGasSchedule returns a schedule in which every hook is free.
func FreeGasSchedule() GasSchedule {
	return GasSchedule{}
}

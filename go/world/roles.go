// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package world

import "math/big"

// Token roles granted to an account for a token id.
const (
	RoleLocalMint           = "ESDTRoleLocalMint"
	RoleLocalBurn           = "ESDTRoleLocalBurn"
	RoleNFTCreate           = "ESDTRoleNFTCreate"
	RoleNFTAddQuantity      = "ESDTRoleNFTAddQuantity"
	RoleNFTBurn             = "ESDTRoleNFTBurn"
	RoleNFTAddURI           = "ESDTRoleNFTAddURI"
	RoleNFTUpdateAttributes = "ESDTRoleNFTUpdateAttributes"
	RoleTransfer            = "ESDTTransferRole"
)

// roleFlags maps roles to the bit flags reported to contracts.
var roleFlags = map[string]uint64{
	RoleLocalMint:           1 << 0,
	RoleLocalBurn:           1 << 1,
	RoleNFTCreate:           1 << 2,
	RoleNFTAddQuantity:      1 << 3,
	RoleNFTBurn:             1 << 4,
	RoleNFTAddURI:           1 << 5,
	RoleNFTUpdateAttributes: 1 << 6,
	RoleTransfer:            1 << 7,
}

// IsKnownRole reports whether the given name is a valid token role.
func IsKnownRole(role string) bool {
	_, found := roleFlags[role]
	return found
}

// HasRole reports whether the account holds the given role for a token.
func (a *Account) HasRole(tokenID []byte, role string) bool {
	data, found := a.ESDT[string(tokenID)]
	return found && data.Roles[role]
}

// SetRole grants or revokes a role.
func (a *Account) SetRole(tokenID []byte, role string, set bool) {
	data := a.GetTokenData(tokenID)
	if set {
		data.Roles[role] = true
	} else {
		delete(data.Roles, role)
	}
}

// RoleFlags encodes the roles of an account for a token as a bit set.
func (a *Account) RoleFlags(tokenID []byte) uint64 {
	data, found := a.ESDT[string(tokenID)]
	if !found {
		return 0
	}
	var res uint64
	for role, set := range data.Roles {
		if set {
			res |= roleFlags[role]
		}
	}
	return res
}

// TotalESDT sums all instances of a token the account holds.
func (a *Account) TotalESDT(tokenID []byte) *big.Int {
	res := new(big.Int)
	if data, found := a.ESDT[string(tokenID)]; found {
		for _, instance := range data.Instances {
			res.Add(res, instance.Balance)
		}
	}
	return res
}

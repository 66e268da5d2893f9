// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package mockvm

// Names of the functions executed by the protocol instead of a contract.
const (
	BuiltInESDTTransfer            = "ESDTTransfer"
	BuiltInESDTNFTTransfer         = "ESDTNFTTransfer"
	BuiltInMultiESDTNFTTransfer    = "MultiESDTNFTTransfer"
	BuiltInESDTNFTCreate           = "ESDTNFTCreate"
	BuiltInESDTNFTAddQuantity      = "ESDTNFTAddQuantity"
	BuiltInESDTNFTBurn             = "ESDTNFTBurn"
	BuiltInESDTNFTAddURI           = "ESDTNFTAddURI"
	BuiltInESDTNFTUpdateAttributes = "ESDTNFTUpdateAttributes"
	BuiltInESDTLocalMint           = "ESDTLocalMint"
	BuiltInESDTLocalBurn           = "ESDTLocalBurn"
	BuiltInSetUserName             = "SetUserName"
	BuiltInESDTSetRole             = "ESDTSetRole"
	BuiltInESDTUnSetRole           = "ESDTUnSetRole"
	BuiltInChangeOwnerAddress      = "ChangeOwnerAddress"
	BuiltInClaimDeveloperRewards   = "ClaimDeveloperRewards"
	BuiltInUpgradeContract         = "upgradeContract"
)

// Endpoints the VM invokes on contracts by itself.
const (
	InitFunctionName    = "init"
	UpgradeFunctionName = "upgrade"
)

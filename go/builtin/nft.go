// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package builtin

import (
	"encoding/binary"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// MaxRoyalties is the royalty share of 100%, in basis points.
const MaxRoyalties = 10_000

// esdtNFTCreate mints a new instance with the next nonce of the token:
// ESDTNFTCreate@id@quantity@name@royalties@hash@attributes@uri[@uri...].
// The new nonce is returned.
func esdtNFTCreate(c *call) error {
	if err := c.requireArgs(7); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	if err := c.requireSelf(); err != nil {
		return err
	}
	args := c.args()
	tokenID := args[0]
	if err := c.requireRole(c.input.From, tokenID, world.RoleNFTCreate); err != nil {
		return err
	}
	quantity, err := amountArg(args[1])
	if err != nil {
		return err
	}
	royalties, ok := mockvm.DecodeUint64(args[3])
	if !ok || royalties > MaxRoyalties {
		return userError(ErrInvalidRoyalties)
	}
	metadata := world.TokenMetadata{
		Creator:    c.input.From,
		Royalties:  royalties,
		Hash:       args[4],
		Name:       args[2],
		Attributes: args[5],
		URIs:       args[6:],
		Type:       world.SemiFungible,
	}
	if quantity.Cmp(big.NewInt(1)) == 0 {
		metadata.Type = world.NonFungible
	}

	var nonce uint64
	err = c.cache.WithAccountMut(c.input.From, func(account *world.Account) error {
		data := account.GetTokenData(tokenID)
		nonce = data.LastNonce + 1
		if existing, found := data.Instances[nonce]; found {
			if c.options.NFTCreatePolicy != NFTCreateMerge || !existing.Metadata.CompatibleWith(&metadata) {
				return userError(ErrNFTExists)
			}
		}
		data.LastNonce = nonce
		if err := account.IncreaseESDTBalance(tokenID, nonce, quantity, &metadata); err != nil {
			return vmError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	encodedNonce := mockvm.EncodeUint64Minimal(nonce)
	c.log(c.input.From, tokenID, encodedNonce, mockvm.EncodeBigIntUnsigned(quantity), EncodeMetadata(&metadata))
	c.result.ResultValues = append(c.result.ResultValues, encodedNonce)
	return nil
}

// esdtNFTAddQuantity mints more of an existing instance:
// ESDTNFTAddQuantity@id@nonce@quantity.
func esdtNFTAddQuantity(c *call) error {
	return c.updateInstance(3, world.RoleNFTAddQuantity, func(account *world.Account, instance *world.TokenInstance) ([][]byte, error) {
		quantity, err := amountArg(c.args()[2])
		if err != nil {
			return nil, err
		}
		instance.Balance = new(big.Int).Add(instance.Balance, quantity)
		return [][]byte{mockvm.EncodeBigIntUnsigned(quantity)}, nil
	})
}

// esdtNFTBurn destroys part of an instance: ESDTNFTBurn@id@nonce@quantity.
func esdtNFTBurn(c *call) error {
	return c.updateInstance(3, world.RoleNFTBurn, func(account *world.Account, instance *world.TokenInstance) ([][]byte, error) {
		args := c.args()
		quantity, err := amountArg(args[2])
		if err != nil {
			return nil, err
		}
		if _, err := account.SubtractESDTBalance(args[0], instance.Nonce, quantity); err != nil {
			return nil, err
		}
		return [][]byte{mockvm.EncodeBigIntUnsigned(quantity)}, nil
	})
}

// esdtNFTAddURI appends URIs to an instance: ESDTNFTAddURI@id@nonce@uri[@uri...].
func esdtNFTAddURI(c *call) error {
	return c.updateInstance(3, world.RoleNFTAddURI, func(account *world.Account, instance *world.TokenInstance) ([][]byte, error) {
		uris := mockvm.CloneArgs(c.args()[2:])
		instance.Metadata.URIs = append(instance.Metadata.URIs, uris...)
		return uris, nil
	})
}

// esdtNFTUpdateAttributes replaces the attributes of an instance:
// ESDTNFTUpdateAttributes@id@nonce@attributes.
func esdtNFTUpdateAttributes(c *call) error {
	return c.updateInstance(3, world.RoleNFTUpdateAttributes, func(account *world.Account, instance *world.TokenInstance) ([][]byte, error) {
		attributes := c.args()[2]
		instance.Metadata.Attributes = append([]byte(nil), attributes...)
		return [][]byte{attributes}, nil
	})
}

// updateInstance runs f on an instance held by the sender, addressed by the
// id and nonce arguments. The topics returned by f follow id and nonce in
// the log of the function.
func (c *call) updateInstance(minArgs int, role string, f func(*world.Account, *world.TokenInstance) ([][]byte, error)) error {
	if err := c.requireArgs(minArgs); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	if err := c.requireSelf(); err != nil {
		return err
	}
	args := c.args()
	tokenID := args[0]
	if err := c.requireRole(c.input.From, tokenID, role); err != nil {
		return err
	}
	nonce, err := nonceArg(args[1])
	if err != nil {
		return err
	}
	if nonce == 0 {
		return vmError(ErrInvalidNonce)
	}

	var topics [][]byte
	err = c.cache.WithAccountMut(c.input.From, func(account *world.Account) error {
		instance := account.GetTokenInstance(tokenID, nonce)
		if instance == nil {
			return userError(ErrNFTNotFound)
		}
		var err error
		topics, err = f(account, instance)
		return err
	})
	if err != nil {
		return err
	}
	c.log(c.input.From, append([][]byte{tokenID, mockvm.EncodeUint64Minimal(nonce)}, topics...)...)
	return nil
}

// EncodeMetadata serializes the metadata of a token instance as the
// sequence of its length-prefixed fields: creator, royalties, hash, name,
// attributes, followed by the number of URIs and the URIs themselves.
func EncodeMetadata(metadata *world.TokenMetadata) []byte {
	var res []byte
	field := func(data []byte) {
		res = binary.BigEndian.AppendUint32(res, uint32(len(data)))
		res = append(res, data...)
	}
	field(metadata.Creator[:])
	field(mockvm.EncodeUint64Minimal(metadata.Royalties))
	field(metadata.Hash)
	field(metadata.Name)
	field(metadata.Attributes)
	res = binary.BigEndian.AppendUint32(res, uint32(len(metadata.URIs)))
	for _, uri := range metadata.URIs {
		field(uri)
	}
	return res
}

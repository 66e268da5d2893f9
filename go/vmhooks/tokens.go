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

import "bytes"

const (
	minTickerLength  = 3
	maxTickerLength  = 10
	randomPartLength = 6
)

// ValidateToken reports whether the given identifier has the shape
// TICKER-xxxxxx: 3 to 10 upper case letters or digits, a dash, and 6 lower
// case letters or digits.
func ValidateToken(tokenID []byte) bool {
	length := len(tokenID)
	if length < minTickerLength+1+randomPartLength || length > maxTickerLength+1+randomPartLength {
		return false
	}
	dash := bytes.IndexByte(tokenID, '-')
	if dash != length-randomPartLength-1 {
		return false
	}
	for _, c := range tokenID[:dash] {
		if !isDigit(c) && (c < 'A' || c > 'Z') {
			return false
		}
	}
	for _, c := range tokenID[dash+1:] {
		if !isDigit(c) && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

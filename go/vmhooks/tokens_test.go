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

import (
	"fmt"
	"regexp"
	"testing"

	"pgregory.net/rand"
)

func TestValidateToken_Examples(t *testing.T) {
	tests := map[string]bool{
		"FOO-aaaaaa":         true,
		"NFT-a1b2c3":         true,
		"ABC123DEF0-000000":  true,
		"AB-aaaaaa":          false,
		"ABCDEFGHIJK-aaaaaa": false,
		"FOO-AAAAAA":         false,
		"foo-aaaaaa":         false,
		"FOO-aaaaa":          false,
		"FOO-aaaaaaa":        false,
		"FOO_aaaaaa":         false,
		"FO-O-aaaaa":         false,
		"FOOaaaaaaa":         false,
		"":                   false,
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			if got := ValidateToken([]byte(input)); want != got {
				t.Errorf("unexpected result for %q, wanted %t, got %t", input, want, got)
			}
		})
	}
}

var tokenGrammar = regexp.MustCompile(`^[A-Z0-9]{3,10}-[a-z0-9]{6}$`)

func TestValidateToken_MatchesGrammarOnRandomInputs(t *testing.T) {
	const alphabet = "ABCXYZ019abcxyz-_ "
	rnd := rand.New(0)
	for i := 0; i < 100_000; i++ {
		length := 10 + rnd.Intn(8)
		data := make([]byte, length)
		for j := range data {
			data[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		// Bias towards well formed inputs, which are rare otherwise.
		if rnd.Intn(2) == 0 && length > 7 {
			data[length-7] = '-'
		}
		want := tokenGrammar.Match(data)
		if got := ValidateToken(data); want != got {
			t.Fatalf("unexpected result for %q, wanted %t, got %t", data, want, got)
		}
	}
}

func ExampleValidateToken() {
	fmt.Println(ValidateToken([]byte("FOO-aaaaaa")))
	fmt.Println(ValidateToken([]byte("FOO-AAAAAA")))
	// Output:
	// true
	// false
}

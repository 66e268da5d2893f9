// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Fantom-foundation/MockVM/go/builtin"
)

var BuiltInsCmd = cli.Command{
	Action: doBuiltIns,
	Name:   "builtins",
	Usage:  "List all built-in functions by name",
}

func doBuiltIns(context *cli.Context) error {
	registry, err := builtin.NewRegistry(builtin.DefaultOptions())
	if err != nil {
		return err
	}
	for _, name := range registry.Names() {
		fmt.Println(name)
	}
	return nil
}

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
	"os"

	"github.com/urfave/cli/v2"

	cliUtils "github.com/Fantom-foundation/MockVM/go/driver/cli"
)

func main() {
	exports := cliUtils.AddCommonFlags(ExportsCmd)
	run := cliUtils.AddCommonFlags(RunCmd)
	app := &cli.App{
		Name:      "driver",
		Usage:     "Mock VM transaction driver",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&exports,
			&run,
			&BuiltInsCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

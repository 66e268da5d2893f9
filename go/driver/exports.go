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
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/Fantom-foundation/MockVM/go/config"
	cliUtils "github.com/Fantom-foundation/MockVM/go/driver/cli"
	"github.com/Fantom-foundation/MockVM/go/examples"
	"github.com/Fantom-foundation/MockVM/go/processor/driver"
)

var ExportsCmd = cli.Command{
	Action:    doExports,
	Name:      "exports",
	Usage:     "List the endpoints exported by a contract",
	ArgsUsage: "<native contract name | file.wasm>",
}

func doExports(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one contract, got %d", context.Args().Len())
	}
	cfg, err := cliUtils.ConfigFlag.Fetch(context)
	if err != nil {
		return err
	}
	code, err := loadCode(context.Args().First())
	if err != nil {
		return err
	}
	names, err := exportedFunctions(cfg, code)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func exportedFunctions(cfg config.Config, code []byte) ([]string, error) {
	exec, err := driver.NewExecutor(cfg, examples.Contracts())
	if err != nil {
		return nil, err
	}
	processorConfig, err := driver.ConfigFrom(cfg)
	if err != nil {
		return nil, err
	}
	instance, err := exec.NewInstance(nil, code, processorConfig.Compilation)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract: %w", err)
	}
	defer instance.Clean()
	names := instance.GetExportedFunctionNames()
	slices.Sort(names)
	return names, nil
}

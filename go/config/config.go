// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package config holds the settings of the VM as read from a TOML file and
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix starts the names of all environment overrides.
const EnvPrefix = "MOCKVM_"

type Config struct {
	Gas struct {
		MaxCallDepth            int    `toml:"max_call_depth"`
		SyncCallFailure         string `toml:"sync_call_failure"`
		RefundUnused            bool   `toml:"refund_unused"`
		FeeCollector            string `toml:"fee_collector"`
		DeveloperRewardsPercent uint64 `toml:"developer_rewards_percent"`
		BuiltInCost             uint64 `toml:"builtin_cost"`
	} `toml:"gas"`
	Tokens struct {
		NFTCreatePolicy string `toml:"nft_create_policy"`
	} `toml:"tokens"`
	Executor struct {
		Name               string `toml:"name"`
		ModuleCacheSize    int    `toml:"module_cache_size"`
		MaxMemoryPages     uint32 `toml:"max_memory_pages"`
		MaxMemoryGrow      uint64 `toml:"max_memory_grow"`
		MaxMemoryGrowDelta uint64 `toml:"max_memory_grow_delta"`
	} `toml:"executor"`
	Ledger struct {
		Enabled bool   `toml:"enabled"`
		DSN     string `toml:"dsn"`
	} `toml:"ledger"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func Default() Config {
	var c Config
	c.Gas.MaxCallDepth = 10
	c.Gas.SyncCallFailure = "consume"
	c.Gas.RefundUnused = true
	c.Gas.FeeCollector = ""
	c.Gas.DeveloperRewardsPercent = 30
	c.Gas.BuiltInCost = 100
	c.Tokens.NFTCreatePolicy = "fail"
	c.Executor.Name = "auto"
	c.Executor.ModuleCacheSize = 128
	c.Executor.MaxMemoryGrow = 64
	c.Executor.MaxMemoryGrowDelta = 16
	c.Ledger.Enabled = false
	c.Ledger.DSN = "file::memory:?cache=shared"
	c.Log.Level = "info"
	return c
}

// LoadFile decodes a TOML file into out. Keys missing in the file keep
// their current value; unknown keys are an error.
func LoadFile(path string, out *Config) error {
	meta, err := toml.DecodeFile(path, out)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides settings with MOCKVM_* environment variables, e.g.
// MOCKVM_GAS_MAX_CALL_DEPTH. Malformed numbers and flags are an error.
func ApplyEnv(out *Config) error {
	var errs []string
	str := func(name string, target *string) {
		if v, found := os.LookupEnv(EnvPrefix + name); found {
			*target = v
		}
	}
	num := func(name string, set func(uint64)) {
		if v, found := os.LookupEnv(EnvPrefix + name); found {
			n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
			if err != nil {
				errs = append(errs, EnvPrefix+name)
				return
			}
			set(n)
		}
	}
	flag := func(name string, target *bool) {
		if v, found := os.LookupEnv(EnvPrefix + name); found {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, EnvPrefix+name)
				return
			}
			*target = b
		}
	}

	num("GAS_MAX_CALL_DEPTH", func(n uint64) { out.Gas.MaxCallDepth = int(n) })
	str("GAS_SYNC_CALL_FAILURE", &out.Gas.SyncCallFailure)
	flag("GAS_REFUND_UNUSED", &out.Gas.RefundUnused)
	str("GAS_FEE_COLLECTOR", &out.Gas.FeeCollector)
	num("GAS_DEVELOPER_REWARDS_PERCENT", func(n uint64) { out.Gas.DeveloperRewardsPercent = n })
	num("GAS_BUILTIN_COST", func(n uint64) { out.Gas.BuiltInCost = n })
	str("TOKENS_NFT_CREATE_POLICY", &out.Tokens.NFTCreatePolicy)
	str("EXECUTOR_NAME", &out.Executor.Name)
	num("EXECUTOR_MODULE_CACHE_SIZE", func(n uint64) { out.Executor.ModuleCacheSize = int(n) })
	num("EXECUTOR_MAX_MEMORY_PAGES", func(n uint64) { out.Executor.MaxMemoryPages = uint32(n) })
	num("EXECUTOR_MAX_MEMORY_GROW", func(n uint64) { out.Executor.MaxMemoryGrow = n })
	num("EXECUTOR_MAX_MEMORY_GROW_DELTA", func(n uint64) { out.Executor.MaxMemoryGrowDelta = n })
	flag("LEDGER_ENABLED", &out.Ledger.Enabled)
	str("LEDGER_DSN", &out.Ledger.DSN)
	str("LOG_LEVEL", &out.Log.Level)

	if len(errs) > 0 {
		return fmt.Errorf("malformed environment variables: %s", strings.Join(errs, ", "))
	}
	return nil
}

// Load combines the defaults, an optional file and the environment.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := LoadFile(path, &c); err != nil {
			return c, err
		}
	}
	return c, ApplyEnv(&c)
}

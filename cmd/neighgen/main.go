// SPDX-License-Identifier: MIT

// neighgen looks up network information on PeeringDB and generates BGP
// neighbor configuration for datacenter routers and switches.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"neighgen/pkg/cache"
	"neighgen/pkg/config"
	"neighgen/pkg/sources/peeringdb"
)

const version = "1.0.0"

// appEnv carries the lazily built dependencies shared by the subcommands.
// Config-only commands call load; lookup commands call setup, which also
// opens the cache backend.
type appEnv struct {
	configPath string

	cfg     *config.Settings
	cache   cache.Cache
	service *peeringdb.Service
}

func (e *appEnv) load() (*config.Settings, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return nil, err
	}
	e.cfg = cfg
	return cfg, nil
}

func (e *appEnv) setup() (*peeringdb.Service, error) {
	if e.service != nil {
		return e.service, nil
	}
	cfg, err := e.load()
	if err != nil {
		return nil, err
	}
	c, err := cache.Open(cfg.App.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	e.cache = c
	e.service = peeringdb.NewService(peeringdb.NewClient(cfg.Sync), c, cfg)
	return e.service, nil
}

func (e *appEnv) close() {
	if e.cache != nil {
		if err := e.cache.Close(); err != nil {
			log.Printf("WARN: Failed to close cache: %v", err)
		}
		e.cache = nil
		e.service = nil
	}
}

func newRootCmd() *cobra.Command {
	env := &appEnv{}
	cmd := &cobra.Command{
		Use:     "neighgen",
		Version: version,
		Short:   "Generate BGP neighbor configs from PeeringDB",
		Long: `neighgen displays ASN peering information and generates BGP neighbor
configs for datacenter routers/switches by querying PeeringDB.com.`,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&env.configPath, "config", "c", "",
		"config file path (overrides the default search list)")
	cmd.AddCommand(
		newASInfo(env),
		newASInfoRaw(env),
		newNeigh(env),
		newSync(env),
		newDumpConfig(env),
		newGenConfig(env),
	)
	return cmd
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}

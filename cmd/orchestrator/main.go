// Copyright 2025 Certen Protocol
//
// Command orchestrator runs the gravity bridge orchestrator daemon: the
// oracle, signer, relayer, and balance-monitor loops described in spec
// sections 4.4 through 4.7, wired together by pkg/supervisor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/certen/gravity-orchestrator/pkg/config"
	"github.com/certen/gravity-orchestrator/pkg/relayer"
	"github.com/certen/gravity-orchestrator/pkg/supervisor"
)

var (
	version   string
	gitCommit string

	flags = []cli.Flag{
		cli.StringFlag{
			Name:  "cosmos-phrase",
			Usage: "BIP-39 mnemonic for the home chain orchestrator key (required)",
		},
		cli.StringFlag{
			Name:  "ethereum-key",
			Usage: "hex-encoded Ethereum private key (required)",
		},
		cli.StringFlag{
			Name:  "cosmos-grpc",
			Value: "http://localhost:9090",
			Usage: "home chain gRPC endpoint",
		},
		cli.StringFlag{
			Name:  "cosmos-comet",
			Value: "http://localhost:26657",
			Usage: "home chain CometBFT RPC endpoint",
		},
		cli.StringFlag{
			Name:  "ethereum-rpc",
			Value: "http://localhost:8545",
			Usage: "EVM JSON-RPC endpoint",
		},
		cli.StringFlag{
			Name:  "fees",
			Usage: "home chain transaction fee as <amount><denom>, e.g. 100ugraviton (required)",
		},
		cli.StringFlag{
			Name:  "gravity-contract-address",
			Usage: "bridge contract address on the EVM chain (auto-discovered from home chain params if omitted)",
		},
		cli.StringFlag{
			Name:  "address-prefix",
			Value: "gravity",
			Usage: "bech32 human-readable prefix for home chain addresses",
		},
		cli.BoolFlag{
			Name:  "relay",
			Usage: "also run the relayer loop (component C6), submitting signed artifacts to the EVM chain",
		},
		cli.StringFlag{
			Name:  "batch-relay-mode",
			Value: "every-batch",
			Usage: "batch relaying policy: every-batch, altruistic, profitable-only, profitable-with-whitelist",
		},
		cli.Float64Flag{
			Name:  "batch-relay-margin",
			Value: 1.0,
			Usage: "minimum reward/gas-cost ratio required to relay a batch under a profitable-* mode",
		},
		cli.StringFlag{
			Name:  "monitor-token",
			Usage: "comma-separated ERC20 contract addresses to watch with the balance monitor (component C7); omit to disable",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug-level logging",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log warnings and errors",
		},
	}
)

func setupLogging(ctx *cli.Context) {
	lvl := log.LvlInfo
	switch {
	case ctx.Bool("verbose"):
		lvl = log.LvlDebug
	case ctx.Bool("quiet"):
		lvl = log.LvlWarn
	}
	handler := log.NewGlogHandler(log.StreamHandler(os.Stderr, log.TerminalFormat(true)))
	handler.Verbosity(lvl)
	log.Root().SetHandler(handler)
}

func run(ctx *cli.Context) error {
	setupLogging(ctx)

	f := config.FlagsFromEnv(config.Flags{
		CosmosPhrase:    ctx.String("cosmos-phrase"),
		EthereumKey:     ctx.String("ethereum-key"),
		CosmosGRPC:      ctx.String("cosmos-grpc"),
		CosmosComet:     ctx.String("cosmos-comet"),
		EthereumRPC:     ctx.String("ethereum-rpc"),
		Fees:            ctx.String("fees"),
		GravityContract: ctx.String("gravity-contract-address"),
		AddressPrefix:   ctx.String("address-prefix"),
		MonitoredTokens: ctx.String("monitor-token"),
		Verbose:         ctx.Bool("verbose"),
		Quiet:           ctx.Bool("quiet"),
	})

	cfg, err := config.Parse(f)
	if err != nil {
		return errors.Wrap(err, "configuration")
	}

	batchMode, err := relayer.ParseBatchMode(ctx.String("batch-relay-mode"))
	if err != nil {
		return errors.Wrap(err, "-batch-relay-mode")
	}

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	supervisorCfg := supervisor.Config{
		HomeGRPCEndpoint:  cfg.HomeGRPCEndpoint,
		HomeCometEndpoint: cfg.HomeCometEndpoint,
		AddressPrefix:     cfg.AddressPrefix,

		EvmRPCURL: cfg.EvmRPCURL,

		BridgeContract: cfg.BridgeContract,
		Mnemonic:       cfg.Mnemonic,
		EvmKey:         cfg.EvmKey,
		Fee:            cfg.Fee,

		RelayerEnabled: ctx.Bool("relay"),
		BatchRelaying: relayer.BatchRelayConfig{
			Mode:   batchMode,
			Margin: ctx.Float64("batch-relay-margin"),
		},
		ValsetRelaying: relayer.ValsetEveryValset,

		MonitoredTokens: cfg.MonitoredTokens,
	}

	if !cfg.BridgeContractKnown {
		log.Info("orchestrator: --gravity-contract-address not set, will auto-discover from home chain params")
	}

	sup, err := supervisor.New(rootCtx, supervisorCfg)
	if err != nil {
		return errors.Wrap(err, "start orchestrator")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("orchestrator: shutdown signal received")
		cancel()
	}()

	return sup.Run(rootCtx)
}

func main() {
	versionMeta := "release"
	if gitCommit == "" {
		versionMeta = "dev"
	}

	app := cli.App{
		Version: fmt.Sprintf("%s-%s-%s", orDefault(version, "0.0.0"), orDefault(gitCommit, "unknown"), versionMeta),
		Name:    "orchestrator",
		Usage:   "gravity bridge orchestrator daemon",
		Flags:   flags,
		Action:  run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

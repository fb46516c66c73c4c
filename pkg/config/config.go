// Copyright 2025 Certen Protocol
//
// Package config turns the orchestrator command's raw flag values (spec
// section 6.1) into the typed configuration the rest of this codebase
// expects: a derived EVM key, a parsed home-chain fee, and resolved
// endpoints, each with defaults applied the same way the flags document
// them. It also offers an environment-variable fallback for every flag,
// following the same getEnv-with-default shape this project's ambient
// configuration layer has always used, so the daemon can run under a
// process supervisor that sets env vars instead of passing flags.
package config

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/certen/gravity-orchestrator/pkg/homechain"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// defaultFeeGasLimit is applied to every home-chain submission. The
// bridge module's Msg types are cheap and uniform enough that a single
// constant gas limit has always been sufficient in practice; --fees only
// carries the amount and denom an operator is willing to pay.
const defaultFeeGasLimit = 200_000

// Config is the fully-parsed, validated form of the orchestrator's
// command-line flags. Every field here is ready to hand straight to
// supervisor.Config.
type Config struct {
	HomeGRPCEndpoint  string
	HomeCometEndpoint string
	AddressPrefix     string

	EvmRPCURL string

	BridgeContract      types.EvmAddress
	BridgeContractKnown bool

	Mnemonic string
	EvmKey   *ecdsa.PrivateKey
	Fee      homechain.SubmissionFee

	MonitoredTokens []types.EvmAddress

	Verbose bool
	Quiet   bool
}

// Flags bundles the raw flag values as the CLI layer read them, before
// parsing and validation. Parse checks them in order and returns the
// first problem it finds.
type Flags struct {
	CosmosPhrase    string
	EthereumKey     string
	CosmosGRPC      string
	CosmosComet     string
	EthereumRPC     string
	Fees            string
	GravityContract string
	AddressPrefix   string
	MonitoredTokens string
	Verbose         bool
	Quiet           bool
}

// FlagsFromEnv fills in any flag left empty in f from this process's
// environment, using the same variable names the teacher's own
// configuration layer would pick for each one. The CLI layer calls this
// before Parse so an operator can run the daemon under a process
// supervisor that only sets env vars.
func FlagsFromEnv(f Flags) Flags {
	f.CosmosPhrase = orEnv(f.CosmosPhrase, "ORCHESTRATOR_COSMOS_PHRASE")
	f.EthereumKey = orEnv(f.EthereumKey, "ORCHESTRATOR_ETHEREUM_KEY")
	f.CosmosGRPC = orEnv(f.CosmosGRPC, "ORCHESTRATOR_COSMOS_GRPC")
	f.CosmosComet = orEnv(f.CosmosComet, "ORCHESTRATOR_COSMOS_COMET")
	f.EthereumRPC = orEnv(f.EthereumRPC, "ORCHESTRATOR_ETHEREUM_RPC")
	f.Fees = orEnv(f.Fees, "ORCHESTRATOR_FEES")
	f.GravityContract = orEnv(f.GravityContract, "ORCHESTRATOR_GRAVITY_CONTRACT_ADDRESS")
	f.AddressPrefix = orEnv(f.AddressPrefix, "ORCHESTRATOR_ADDRESS_PREFIX")
	f.MonitoredTokens = orEnv(f.MonitoredTokens, "ORCHESTRATOR_MONITORED_TOKENS")
	return f
}

func orEnv(v, key string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return getEnv(key, "")
}

// Parse validates and converts a set of raw flags into a Config. Every
// error it returns is a configuration error in the sense of spec section
// 6.1's exit code 1 ("configuration error or fatal bridge state").
func Parse(f Flags) (*Config, error) {
	if strings.TrimSpace(f.CosmosPhrase) == "" {
		return nil, fmt.Errorf("--cosmos-phrase is required")
	}
	if strings.TrimSpace(f.EthereumKey) == "" {
		return nil, fmt.Errorf("--ethereum-key is required")
	}
	if strings.TrimSpace(f.Fees) == "" {
		return nil, fmt.Errorf("--fees is required")
	}

	evmKey, err := crypto.HexToECDSA(strings.TrimPrefix(f.EthereumKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("--ethereum-key is not a valid hex private key: %w", err)
	}

	fee, err := parseFee(f.Fees)
	if err != nil {
		return nil, fmt.Errorf("--fees: %w", err)
	}

	cfg := &Config{
		HomeGRPCEndpoint:  orDefault(f.CosmosGRPC, "http://localhost:9090"),
		HomeCometEndpoint: orDefault(f.CosmosComet, "http://localhost:26657"),
		AddressPrefix:     orDefault(f.AddressPrefix, "gravity"),
		EvmRPCURL:         orDefault(f.EthereumRPC, "http://localhost:8545"),
		Mnemonic:          f.CosmosPhrase,
		EvmKey:            evmKey,
		Fee:               fee,
		Verbose:           f.Verbose,
		Quiet:             f.Quiet,
	}

	if strings.TrimSpace(f.GravityContract) != "" {
		addr, err := types.ParseEvmAddress(f.GravityContract)
		if err != nil {
			return nil, fmt.Errorf("--gravity-contract-address: %w", err)
		}
		cfg.BridgeContract = addr
		cfg.BridgeContractKnown = true
	}

	tokens, err := parseMonitoredTokens(f.MonitoredTokens)
	if err != nil {
		return nil, fmt.Errorf("--monitor-token: %w", err)
	}
	cfg.MonitoredTokens = tokens

	return cfg, nil
}

// parseMonitoredTokens splits the --monitor-token flag's comma-separated
// ERC20 address list into the Balance Monitor's watch list (spec section
// 4.7). An empty flag leaves the monitor disabled, matching the rest of
// this daemon's opt-in component pattern (compare --relay).
func parseMonitoredTokens(s string) ([]types.EvmAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	tokens := make([]types.EvmAddress, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		addr, err := types.ParseEvmAddress(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		tokens = append(tokens, addr)
	}
	return tokens, nil
}

// parseFee splits the "<amount><denom>" coin shape spec section 6.1
// requires of --fees, e.g. "100ugraviton", into its numeric and
// denomination parts.
func parseFee(s string) (homechain.SubmissionFee, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return homechain.SubmissionFee{}, fmt.Errorf("%q is not of the form <amount><denom>", s)
	}

	amount, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return homechain.SubmissionFee{}, fmt.Errorf("%q has an invalid amount: %w", s, err)
	}

	return homechain.SubmissionFee{
		Denom:    s[i:],
		Amount:   amount,
		GasLimit: defaultFeeGasLimit,
	}, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

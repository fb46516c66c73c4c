// Copyright 2025 Certen Protocol
//
// Package supervisor wires the oracle, signer, relayer, and balance
// monitor loops into a single daemon: it owns the home-chain and EVM
// clients, verifies the delegate-key mapping before anything else runs,
// and coordinates graceful shutdown (spec sections 4.8, 4.9).
package supervisor

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/balance"
	"github.com/certen/gravity-orchestrator/pkg/evmchain"
	"github.com/certen/gravity-orchestrator/pkg/homechain"
	"github.com/certen/gravity-orchestrator/pkg/homechain/keys"
	"github.com/certen/gravity-orchestrator/pkg/oracle"
	"github.com/certen/gravity-orchestrator/pkg/relayer"
	"github.com/certen/gravity-orchestrator/pkg/signer"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// Config bundles everything needed to construct a Supervisor: connection
// details for both chains, the two signing keys, and the optional
// relayer/balance-monitor policy.
type Config struct {
	HomeGRPCEndpoint  string
	HomeCometEndpoint string
	AddressPrefix     string
	ChainID           string

	EvmRPCURL  string
	EvmChainID *big.Int

	BridgeContract types.EvmAddress
	Mnemonic       string
	EvmKey         *ecdsa.PrivateKey
	Fee            homechain.SubmissionFee

	RelayerEnabled bool
	BatchRelaying  relayer.BatchRelayConfig
	ValsetRelaying relayer.ValsetMode
	Prices         relayer.PriceSource

	MonitoredTokens []types.EvmAddress
	ExpectedSupply  balance.ExpectedSupplySource
}

// Supervisor owns every chain client and loop for one running
// orchestrator process.
type Supervisor struct {
	home *homechain.Client
	evm  *evmchain.Client

	oracle  *oracle.Oracle
	signer  *signer.Signer
	relayer *relayer.Relayer // nil when the relayer is disabled
	balance *balance.Monitor // nil when no tokens are monitored
}

// New connects to both chains, verifies the delegate-key mapping (spec
// section 3.1), and constructs every loop this process will run. It does
// not start any loop; call Run for that.
func New(ctx context.Context, cfg Config) (*Supervisor, error) {
	home, err := homechain.NewClient(cfg.HomeGRPCEndpoint, cfg.HomeCometEndpoint, cfg.AddressPrefix)
	if err != nil {
		return nil, fmt.Errorf("connect to home chain: %w", err)
	}

	evm, err := evmchain.NewClient(ctx, cfg.EvmRPCURL, cfg.EvmChainID)
	if err != nil {
		return nil, fmt.Errorf("connect to EVM chain: %w", err)
	}

	homeSigner, err := keys.NewHomeSignerFromMnemonic(cfg.Mnemonic, cfg.AddressPrefix)
	if err != nil {
		return nil, fmt.Errorf("derive home-chain signing key: %w", err)
	}

	if err := verifyDelegateKeyMapping(ctx, home, homeSigner, cfg.EvmKey); err != nil {
		return nil, err
	}

	params, err := home.Params(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch home-chain params: %w", err)
	}

	bridgeContract := cfg.BridgeContract
	if bridgeContract.IsZero() {
		bridgeContract = params.BridgeEthereumAddress
		log.Info("supervisor: auto-discovered bridge contract address from home chain params", "address", bridgeContract)
	}

	chainID := cfg.ChainID
	if chainID == "" {
		chainID, err = home.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("auto-discover home chain ID: %w", err)
		}
		log.Info("supervisor: auto-discovered home chain ID", "chain_id", chainID)
	}

	s := &Supervisor{home: home, evm: evm}

	s.oracle = oracle.New(evm, home, homeSigner, oracle.Config{
		BridgeContract: bridgeContract,
		GravityID:      params.GravityID,
		ChainID:        chainID,
		AddressPrefix:  cfg.AddressPrefix,
		Fee:            cfg.Fee,
	})

	s.signer = signer.New(home, homeSigner, signer.Config{
		EvmKey:        cfg.EvmKey,
		ChainID:       chainID,
		AddressPrefix: cfg.AddressPrefix,
		Fee:           cfg.Fee,
	})

	if cfg.RelayerEnabled {
		s.relayer = relayer.New(evm, home, relayer.Config{
			EvmKey:         cfg.EvmKey,
			BridgeContract: bridgeContract,
			Prices:         cfg.Prices,
			BatchRelaying:  cfg.BatchRelaying,
			ValsetRelaying: cfg.ValsetRelaying,
		})
	}

	if len(cfg.MonitoredTokens) > 0 {
		expected := cfg.ExpectedSupply
		if expected == nil {
			// home already implements ExpectedSupplySource by treating a
			// monitored ERC20's voucher-denom total supply as the home
			// chain's locked-supply accounting (see homechain.Client's
			// ExpectedLockedSupply). That is the correct default source
			// for every deployment that has not supplied its own.
			expected = home
		}
		s.balance = balance.New(evm, expected, balance.Config{
			BridgeContract:  bridgeContract,
			MonitoredTokens: cfg.MonitoredTokens,
		})
	}

	return s, nil
}

// verifyDelegateKeyMapping confirms the home chain actually has this
// orchestrator address delegated to the configured EVM key, per spec
// section 3.1's invariant. Running with a mismatched key would silently
// produce signatures the home chain never credits to this validator.
func verifyDelegateKeyMapping(ctx context.Context, home *homechain.Client, homeSigner *keys.HomeSigner, evmKey *ecdsa.PrivateKey) error {
	resp, err := home.GetDelegateKeyByOrchestrator(ctx, homeSigner.Address())
	if err != nil {
		return fmt.Errorf("resolve delegate key for orchestrator %s: %w", homeSigner.Address(), err)
	}

	want := crypto.PubkeyToAddress(evmKey.PublicKey).Hex()
	if !strings.EqualFold(resp.EthAddress, want) {
		return fmt.Errorf("orchestrator %s is delegated to eth address %s on the home chain, but the configured key is %s",
			homeSigner.Address(), resp.EthAddress, want)
	}
	return nil
}

// Run starts every constructed loop and blocks until ctx is canceled,
// then stops them all and closes the home-chain connection.
func (s *Supervisor) Run(ctx context.Context) error {
	s.oracle.Start(ctx)
	s.signer.Start(ctx)
	if s.relayer != nil {
		s.relayer.Start(ctx)
	}
	if s.balance != nil {
		s.balance.Start(ctx)
	}

	log.Info("supervisor: all loops started")
	<-ctx.Done()
	log.Info("supervisor: shutdown signal received, stopping loops")

	s.oracle.Stop()
	s.signer.Stop()
	if s.relayer != nil {
		s.relayer.Stop()
	}
	if s.balance != nil {
		s.balance.Stop()
	}

	return s.home.Close()
}

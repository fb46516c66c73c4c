// Copyright 2025 Certen Protocol
//
// Package balance implements the Balance Monitor (component C7):
// periodically compares each monitored ERC20's actual on-chain balance
// held by the bridge contract against the home chain's expected
// locked-supply accounting, halting the process on any mismatch (spec
// section 4.7).
package balance

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/evmchain"
	"github.com/certen/gravity-orchestrator/pkg/looprunner"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// period is how often the monitor re-checks every monitored token.
// Balance drift is a slow-moving signal compared to the oracle/signer/
// relayer loops, so this runs far less often than any of them.
const period = 60 * time.Second

// ExpectedSupplySource reports the home chain's current locked-supply
// accounting for one monitored ERC20: the total amount that chain
// believes is locked in the bridge contract on its behalf. The home-chain
// gRPC surface this orchestrator wraps has no single dedicated RPC for
// this, so it is abstracted behind an interface the supervisor wires up.
type ExpectedSupplySource interface {
	ExpectedLockedSupply(ctx context.Context, token types.EvmAddress) (*big.Int, error)
}

// Config bundles a Monitor's static dependencies.
type Config struct {
	BridgeContract  types.EvmAddress
	MonitoredTokens []types.EvmAddress
}

// Monitor watches monitored ERC20 balances for drift against the home
// chain's accounting.
type Monitor struct {
	evm      *evmchain.Client
	expected ExpectedSupplySource
	cfg      Config
	loop     *looprunner.Loop
}

// New constructs a Monitor. Callers must call Start to begin iterating.
func New(evm *evmchain.Client, expected ExpectedSupplySource, cfg Config) *Monitor {
	m := &Monitor{evm: evm, expected: expected, cfg: cfg}
	m.loop = looprunner.New("balance", m.iterate)
	return m
}

// Start launches the monitor's background loop.
func (m *Monitor) Start(ctx context.Context) { m.loop.Start(ctx) }

// Stop halts the monitor's background loop.
func (m *Monitor) Stop() { m.loop.Stop() }

func (m *Monitor) iterate(ctx context.Context) time.Duration {
	for _, token := range m.cfg.MonitoredTokens {
		m.checkOne(ctx, token)
	}
	return period
}

// checkOne implements the per-token contract from spec section 4.7: a
// mismatch is fatal, since it implies either an EVM-contract exploit or
// a home-chain accounting bug, and both must stop the bridge before
// honest users lose funds.
func (m *Monitor) checkOne(ctx context.Context, token types.EvmAddress) {
	actual, err := m.evm.BalanceOf(ctx, common.Address(token), common.Address(m.cfg.BridgeContract))
	if err != nil {
		log.Error("balance monitor: failed to read on-chain balance", "token", token, "err", err)
		return
	}

	expected, err := m.expected.ExpectedLockedSupply(ctx, token)
	if err != nil {
		log.Error("balance monitor: failed to read expected locked supply", "token", token, "err", err)
		return
	}

	if !balancesMatch(actual, expected) {
		log.Crit("balance monitor: bridge contract balance diverged from home chain accounting",
			"token", token, "actual", actual, "expected", expected)
	}
}

// balancesMatch is the pure comparison checkOne applies, split out so it
// can be exercised without going through log.Crit's fatal exit.
func balancesMatch(actual, expected *big.Int) bool {
	return actual.Cmp(expected) == 0
}

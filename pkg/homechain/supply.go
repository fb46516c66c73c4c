// Copyright 2025 Certen Protocol
//
package homechain

import (
	"context"
	"math/big"

	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// ExpectedLockedSupply implements balance.ExpectedSupplySource: it treats
// the home chain's total supply of an ERC20's voucher denom as the
// amount that chain believes is locked in the bridge contract on its
// behalf, using the bank module's own TotalSupplyOf query. This is the
// same cross-chain accounting invariant the Balance Monitor checks
// (spec section 4.7): minted vouchers on one side must equal locked
// collateral on the other.
func (c *Client) ExpectedLockedSupply(ctx context.Context, token types.EvmAddress) (*big.Int, error) {
	denom, err := c.Erc20ToDenom(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.bank.TotalSupplyOf(ctx, &banktypes.QueryTotalSupplyOfRequest{Denom: denom})
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, "query bank module total supply", err)
	}

	amount, ok := new(big.Int).SetString(resp.Amount.Amount.String(), 10)
	if !ok {
		return nil, bridgeerr.New(bridgeerr.KindDecode, "parse bank total supply amount", nil)
	}
	return amount, nil
}

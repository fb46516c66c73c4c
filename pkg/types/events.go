// Copyright 2025 Certen Protocol
//
package types

import "math/big"

// EventKind tags which of the five EVM bridge-contract log types an Event
// carries. The five kinds share a capability set (block height, event
// nonce, claim-message construction); rather than modeling them as an
// inheritance hierarchy we use one tagged struct with a kind discriminant
// and per-kind payload, dispatched by a single type switch at the call
// site that builds claim messages (see pkg/oracle).
type EventKind string

const (
	EventSendToCosmos      EventKind = "send_to_cosmos"
	EventBatchExecuted     EventKind = "batch_executed"
	EventErc20Deployed     EventKind = "erc20_deployed"
	EventLogicCallExecuted EventKind = "logic_call_executed"
	EventValsetUpdated     EventKind = "valset_updated"
)

// SendToCosmosData is the payload of a SentToCosmos EVM log: a deposit
// moving from the EVM chain to the home chain.
type SendToCosmosData struct {
	TokenContract EvmAddress
	Sender        EvmAddress
	// Destination is the decoded home-chain bech32 address, or empty if
	// decoding failed (oversized field, or not valid bech32) — in either
	// case the home chain routes the funds to the community pool rather
	// than blocking the claim (spec section 4.2).
	Destination string
	Amount      *big.Int
}

// BatchExecutedData is the payload of a TransactionBatchExecuted log.
type BatchExecutedData struct {
	TokenContract EvmAddress
	BatchNonce    uint64
}

// Erc20DeployedData is the payload of an ERC20Deployed log.
type Erc20DeployedData struct {
	CosmosDenom  string
	TokenContract EvmAddress
	Name         string
	Symbol       string
	Decimals     uint8
}

// LogicCallExecutedData is the payload of a LogicCallExecuted log.
type LogicCallExecutedData struct {
	InvalidationID    []byte
	InvalidationNonce uint64
}

// ValsetUpdatedData is the payload of a ValsetUpdated log.
type ValsetUpdatedData struct {
	ValsetNonce  uint64
	RewardAmount *big.Int
	// RewardToken is ZeroEvmAddress when the valset carries no reward.
	RewardToken EvmAddress
	Members     []ValsetMember
}

// Event is a tagged union over the five EVM bridge-contract log types. Only
// the field named by Kind is populated.
type Event struct {
	Kind        EventKind
	EventNonce  uint64
	BlockHeight uint64

	SendToCosmos      *SendToCosmosData
	BatchExecuted     *BatchExecutedData
	Erc20Deployed     *Erc20DeployedData
	LogicCallExecuted *LogicCallExecutedData
	ValsetUpdated     *ValsetUpdatedData
}

// Copyright 2025 Certen Protocol
//
package evmchain

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// wordSize is the EVM ABI word width.
const wordSize = 32

// maxDynamicFieldBytes bounds any length-prefixed dynamic field (string,
// bytes). A declared length beyond this is treated as an attempt to wedge
// the oracle with an oversized payload: the field decodes to empty rather
// than failing (spec section 4.2, 8 property 5).
const maxDynamicFieldBytes = 1 * 1024 * 1024

// maxValsetMembersPerEvent bounds the validators/powers arrays inside a
// ValsetUpdated log for the same reason dynamic strings are bounded: an
// attacker-controlled declared array length must not let a single log
// allocate unbounded memory.
const maxValsetMembersPerEvent = 4096

// Event signatures, hashed once at package init to the topic0 values the
// bridge contract emits (spec section 6.3). Signatures are expressed with
// only non-indexed parameters: every field the oracle needs lives in the
// log's data section, keeping the decoder's bounds-checking in one place
// rather than split across indexed topics and packed data.
var (
	sigSentToCosmos          = []byte("SentToCosmos(address,address,string,uint256,uint256,uint256)")
	sigTransactionBatchExecuted = []byte("TransactionBatchExecuted(address,uint256,uint256,uint256)")
	sigERC20Deployed         = []byte("ERC20Deployed(string,address,string,string,uint8,uint256,uint256)")
	sigLogicCallExecuted     = []byte("LogicCallExecuted(bytes32,uint256,uint256,uint256)")
	sigValsetUpdated         = []byte("ValsetUpdated(uint256,uint256,uint256,address,address[],uint256[],uint256)")

	topicSentToCosmos             = crypto.Keccak256Hash(sigSentToCosmos)
	topicTransactionBatchExecuted = crypto.Keccak256Hash(sigTransactionBatchExecuted)
	topicERC20Deployed             = crypto.Keccak256Hash(sigERC20Deployed)
	topicLogicCallExecuted         = crypto.Keccak256Hash(sigLogicCallExecuted)
	topicValsetUpdated             = crypto.Keccak256Hash(sigValsetUpdated)
)

// BridgeEventTopics returns the topic0 set the oracle should filter logs
// by (spec section 4.4 step 3).
func BridgeEventTopics() []common.Hash {
	return []common.Hash{
		topicSentToCosmos,
		topicTransactionBatchExecuted,
		topicERC20Deployed,
		topicLogicCallExecuted,
		topicValsetUpdated,
	}
}

// word reads the 32-byte word at index idx (0-based) from data, failing
// with KindBounds if the read would run past the end of data.
func word(data []byte, idx int) ([]byte, error) {
	start := idx * wordSize
	end := start + wordSize
	if start < 0 || end > len(data) {
		return nil, bridgeerr.New(bridgeerr.KindBounds, fmt.Sprintf("word %d out of range (data len %d)", idx, len(data)), nil)
	}
	return data[start:end], nil
}

// uint64FromWord decodes a big-endian 256-bit word as a u64, failing with
// KindBounds if the value does not fit (spec section 4.2: "any value
// exceeding its declared width... fails decoding with InvalidEventLog").
func uint64FromWord(w []byte) (uint64, error) {
	for _, b := range w[:wordSize-8] {
		if b != 0 {
			return 0, bridgeerr.New(bridgeerr.KindBounds, "uint64 field overflows declared width", nil)
		}
	}
	return binary.BigEndian.Uint64(w[wordSize-8:]), nil
}

// uint8FromWord decodes a big-endian 256-bit word as a u8.
func uint8FromWord(w []byte) (uint8, error) {
	for _, b := range w[:wordSize-1] {
		if b != 0 {
			return 0, bridgeerr.New(bridgeerr.KindBounds, "uint8 field overflows declared width", nil)
		}
	}
	return w[wordSize-1], nil
}

// addressFromWord extracts the right-aligned 20-byte address from a word.
func addressFromWord(w []byte) types.EvmAddress {
	var a types.EvmAddress
	copy(a[:], w[wordSize-20:])
	return a
}

// dynamicBytes reads a length-prefixed dynamic field (string or bytes)
// whose head word is the byte-offset (relative to data's start) of its
// length+payload. Oversized declared lengths are reported via ok=false
// rather than an error: the caller substitutes an empty value and logs a
// warning, per spec section 4.2.
func dynamicBytes(data []byte, headWordIdx int) (payload []byte, ok bool, err error) {
	offsetWord, err := word(data, headWordIdx)
	if err != nil {
		return nil, false, err
	}
	offset, err := uint64FromWord(offsetWord)
	if err != nil {
		return nil, false, err
	}
	if int(offset)+wordSize > len(data) {
		return nil, false, bridgeerr.New(bridgeerr.KindBounds, "dynamic field offset out of range", nil)
	}

	lengthWord := data[offset : offset+wordSize]
	length, err := uint64FromWord(lengthWord)
	if err != nil {
		return nil, false, err
	}
	if length > maxDynamicFieldBytes {
		return nil, false, nil
	}

	start := int(offset) + wordSize
	end := start + int(length)
	if end > len(data) {
		return nil, false, bridgeerr.New(bridgeerr.KindBounds, "dynamic field payload out of range", nil)
	}
	return data[start:end], true, nil
}

// dynamicUint256Array reads a length-prefixed array of 32-byte words
// located at the offset held in the head word at headWordIdx, capped at
// maxValsetMembersPerEvent entries.
func dynamicUint256Array(data []byte, headWordIdx int) (words [][]byte, truncated bool, err error) {
	offsetWord, err := word(data, headWordIdx)
	if err != nil {
		return nil, false, err
	}
	offset, err := uint64FromWord(offsetWord)
	if err != nil {
		return nil, false, err
	}
	if int(offset)+wordSize > len(data) {
		return nil, false, bridgeerr.New(bridgeerr.KindBounds, "dynamic array offset out of range", nil)
	}

	lengthWord := data[offset : offset+wordSize]
	length, err := uint64FromWord(lengthWord)
	if err != nil {
		return nil, false, err
	}

	n := length
	truncated = false
	if n > maxValsetMembersPerEvent {
		n = maxValsetMembersPerEvent
		truncated = true
	}

	elemsStart := int(offset) + wordSize
	out := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		s := elemsStart + int(i)*wordSize
		e := s + wordSize
		if e > len(data) {
			return nil, false, bridgeerr.New(bridgeerr.KindBounds, "dynamic array element out of range", nil)
		}
		out = append(out, data[s:e])
	}
	return out, truncated, nil
}

// DecodeLog decodes a single EVM log into an Event, dispatching on
// topics[0]. Returns (nil, nil) for logs whose topic does not match a
// known bridge event (callers filter by topic before calling this, but
// DecodeLog stays defensive).
func DecodeLog(l ethtypes.Log) (*types.Event, error) {
	if len(l.Topics) == 0 {
		return nil, bridgeerr.New(bridgeerr.KindDecode, "log has no topics", nil)
	}

	switch l.Topics[0] {
	case topicSentToCosmos:
		return decodeSentToCosmos(l)
	case topicTransactionBatchExecuted:
		return decodeBatchExecuted(l)
	case topicERC20Deployed:
		return decodeErc20Deployed(l)
	case topicLogicCallExecuted:
		return decodeLogicCallExecuted(l)
	case topicValsetUpdated:
		return decodeValsetUpdated(l)
	default:
		return nil, nil
	}
}

func decodeSentToCosmos(l ethtypes.Log) (*types.Event, error) {
	data := l.Data
	tokenW, err := word(data, 0)
	if err != nil {
		return nil, err
	}
	senderW, err := word(data, 1)
	if err != nil {
		return nil, err
	}
	amountW, err := word(data, 3)
	if err != nil {
		return nil, err
	}
	nonceW, err := word(data, 4)
	if err != nil {
		return nil, err
	}
	blockW, err := word(data, 5)
	if err != nil {
		return nil, err
	}

	nonce, err := uint64FromWord(nonceW)
	if err != nil {
		return nil, err
	}
	blockHeight, err := uint64FromWord(blockW)
	if err != nil {
		return nil, err
	}

	destBytes, ok, err := dynamicBytes(data, 2)
	if err != nil {
		return nil, err
	}
	dest := ""
	if !ok {
		log.Warn("evmchain: SentToCosmos destination exceeds bound, substituting empty", "event_nonce", nonce)
	} else {
		dest = decodeBech32Destination(string(destBytes), nonce)
	}

	return &types.Event{
		Kind:        types.EventSendToCosmos,
		EventNonce:  nonce,
		BlockHeight: blockHeight,
		SendToCosmos: &types.SendToCosmosData{
			TokenContract: addressFromWord(tokenW),
			Sender:        addressFromWord(senderW),
			Destination:   dest,
			Amount:        new(big.Int).SetBytes(amountW),
		},
	}, nil
}

// decodeBech32Destination trims whitespace and validates the destination
// as bech32; on failure it returns an empty string, matching the home
// chain's policy of routing unparseable destinations to the community
// pool instead of blocking the claim (spec section 4.2).
func decodeBech32Destination(raw string, eventNonce uint64) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if _, err := types.ParseHomeAddress(trimmed); err != nil {
		log.Warn("evmchain: SendToCosmos destination is not valid bech32, routing to community pool", "event_nonce", eventNonce, "err", err)
		return ""
	}
	return trimmed
}

func decodeBatchExecuted(l ethtypes.Log) (*types.Event, error) {
	data := l.Data
	tokenW, err := word(data, 0)
	if err != nil {
		return nil, err
	}
	batchNonceW, err := word(data, 1)
	if err != nil {
		return nil, err
	}
	eventNonceW, err := word(data, 2)
	if err != nil {
		return nil, err
	}
	blockW, err := word(data, 3)
	if err != nil {
		return nil, err
	}

	batchNonce, err := uint64FromWord(batchNonceW)
	if err != nil {
		return nil, err
	}
	eventNonce, err := uint64FromWord(eventNonceW)
	if err != nil {
		return nil, err
	}
	blockHeight, err := uint64FromWord(blockW)
	if err != nil {
		return nil, err
	}

	return &types.Event{
		Kind:        types.EventBatchExecuted,
		EventNonce:  eventNonce,
		BlockHeight: blockHeight,
		BatchExecuted: &types.BatchExecutedData{
			TokenContract: addressFromWord(tokenW),
			BatchNonce:    batchNonce,
		},
	}, nil
}

func decodeErc20Deployed(l ethtypes.Log) (*types.Event, error) {
	data := l.Data
	tokenW, err := word(data, 1)
	if err != nil {
		return nil, err
	}
	decimalsW, err := word(data, 4)
	if err != nil {
		return nil, err
	}
	eventNonceW, err := word(data, 5)
	if err != nil {
		return nil, err
	}
	blockW, err := word(data, 6)
	if err != nil {
		return nil, err
	}

	decimals, err := uint8FromWord(decimalsW)
	if err != nil {
		return nil, err
	}
	eventNonce, err := uint64FromWord(eventNonceW)
	if err != nil {
		return nil, err
	}
	blockHeight, err := uint64FromWord(blockW)
	if err != nil {
		return nil, err
	}

	denomBytes, ok, err := dynamicBytes(data, 0)
	if err != nil {
		return nil, err
	}
	denom := ""
	if ok {
		denom = string(denomBytes)
	} else {
		log.Warn("evmchain: ERC20Deployed cosmosDenom exceeds bound, substituting empty", "event_nonce", eventNonce)
	}

	nameBytes, ok, err := dynamicBytes(data, 2)
	if err != nil {
		return nil, err
	}
	name := ""
	if ok {
		name = string(nameBytes)
	} else {
		log.Warn("evmchain: ERC20Deployed name exceeds bound, substituting empty", "event_nonce", eventNonce)
	}

	symbolBytes, ok, err := dynamicBytes(data, 3)
	if err != nil {
		return nil, err
	}
	symbol := ""
	if ok {
		symbol = string(symbolBytes)
	} else {
		log.Warn("evmchain: ERC20Deployed symbol exceeds bound, substituting empty", "event_nonce", eventNonce)
	}

	return &types.Event{
		Kind:        types.EventErc20Deployed,
		EventNonce:  eventNonce,
		BlockHeight: blockHeight,
		Erc20Deployed: &types.Erc20DeployedData{
			CosmosDenom:   denom,
			TokenContract: addressFromWord(tokenW),
			Name:          name,
			Symbol:        symbol,
			Decimals:      decimals,
		},
	}, nil
}

func decodeLogicCallExecuted(l ethtypes.Log) (*types.Event, error) {
	data := l.Data
	invIDW, err := word(data, 0)
	if err != nil {
		return nil, err
	}
	invNonceW, err := word(data, 1)
	if err != nil {
		return nil, err
	}
	eventNonceW, err := word(data, 2)
	if err != nil {
		return nil, err
	}
	blockW, err := word(data, 3)
	if err != nil {
		return nil, err
	}

	invNonce, err := uint64FromWord(invNonceW)
	if err != nil {
		return nil, err
	}
	eventNonce, err := uint64FromWord(eventNonceW)
	if err != nil {
		return nil, err
	}
	blockHeight, err := uint64FromWord(blockW)
	if err != nil {
		return nil, err
	}

	invID := make([]byte, wordSize)
	copy(invID, invIDW)

	return &types.Event{
		Kind:        types.EventLogicCallExecuted,
		EventNonce:  eventNonce,
		BlockHeight: blockHeight,
		LogicCallExecuted: &types.LogicCallExecutedData{
			InvalidationID:    invID,
			InvalidationNonce: invNonce,
		},
	}, nil
}

func decodeValsetUpdated(l ethtypes.Log) (*types.Event, error) {
	data := l.Data
	nonceW, err := word(data, 0)
	if err != nil {
		return nil, err
	}
	eventNonceW, err := word(data, 1)
	if err != nil {
		return nil, err
	}
	rewardAmountW, err := word(data, 2)
	if err != nil {
		return nil, err
	}
	rewardTokenW, err := word(data, 3)
	if err != nil {
		return nil, err
	}
	blockW, err := word(data, 6)
	if err != nil {
		return nil, err
	}

	valsetNonce, err := uint64FromWord(nonceW)
	if err != nil {
		return nil, err
	}
	eventNonce, err := uint64FromWord(eventNonceW)
	if err != nil {
		return nil, err
	}
	blockHeight, err := uint64FromWord(blockW)
	if err != nil {
		return nil, err
	}

	validatorWords, vTrunc, err := dynamicUint256Array(data, 4)
	if err != nil {
		return nil, err
	}
	powerWords, pTrunc, err := dynamicUint256Array(data, 5)
	if err != nil {
		return nil, err
	}
	if vTrunc || pTrunc {
		log.Warn("evmchain: ValsetUpdated member list exceeds bound, truncating", "event_nonce", eventNonce)
	}

	n := len(validatorWords)
	if len(powerWords) < n {
		n = len(powerWords)
	}
	members := make([]types.ValsetMember, n)
	for i := 0; i < n; i++ {
		power, err := uint64FromWord(powerWords[i])
		if err != nil {
			return nil, err
		}
		members[i] = types.ValsetMember{
			EvmAddress: addressFromWord(validatorWords[i]),
			Power:      power,
		}
	}

	if !sort.SliceIsSorted(members, func(i, j int) bool {
		if members[i].Power != members[j].Power {
			return members[i].Power > members[j].Power
		}
		return strings.Compare(members[i].EvmAddress.Hex(), members[j].EvmAddress.Hex()) > 0
	}) {
		log.Warn("evmchain: ValsetUpdated members not sorted by (power DESC, address DESC)", "event_nonce", eventNonce)
	}

	return &types.Event{
		Kind:        types.EventValsetUpdated,
		EventNonce:  eventNonce,
		BlockHeight: blockHeight,
		ValsetUpdated: &types.ValsetUpdatedData{
			ValsetNonce:  valsetNonce,
			RewardAmount: new(big.Int).SetBytes(rewardAmountW),
			RewardToken:  addressFromWord(rewardTokenW),
			Members:      members,
		},
	}, nil
}

// FromLogs decodes all logs in order, stopping at the first log that
// fails to decode (spec section 4.2 operation "from_logs"). A KindBounds
// failure aborts the whole batch and is returned to the caller so the
// oracle iteration can abort without advancing its cursor; any other
// decode failure is logged and treated as "stop here", returning the
// events successfully decoded so far with a nil error.
func FromLogs(logs []ethtypes.Log) ([]types.Event, error) {
	events := make([]types.Event, 0, len(logs))
	for _, l := range logs {
		ev, err := DecodeLog(l)
		if err != nil {
			if kind, ok := bridgeerr.KindOf(err); ok && kind == bridgeerr.KindBounds {
				return events, err
			}
			log.Warn("evmchain: stopping log decode at malformed log", "tx_hash", l.TxHash.Hex(), "log_index", l.Index, "err", err)
			return events, nil
		}
		if ev != nil {
			events = append(events, *ev)
		}
	}
	return events, nil
}

// FilterByEventNonce returns the subset of events with EventNonce > min,
// used after fetching the validator's current attested nonce.
func FilterByEventNonce(min uint64, events []types.Event) []types.Event {
	out := make([]types.Event, 0, len(events))
	for _, e := range events {
		if e.EventNonce > min {
			out = append(out, e)
		}
	}
	return out
}

// GetBlockForNonce returns the block height of the event with the given
// nonce, used to advance last_checked_block safely (spec section 4.2).
func GetBlockForNonce(nonce uint64, events []types.Event) (uint64, bool) {
	for _, e := range events {
		if e.EventNonce == nonce {
			return e.BlockHeight, true
		}
	}
	return 0, false
}

// Copyright 2025 Certen Protocol
//
// Package bridgepb holds the wire messages for the home chain's bridge
// module query and message services (spec section 6.2), hand-written in
// the pre-codegen-v2 reflection style of the legacy
// github.com/golang/protobuf/proto package: each message is a plain
// struct with `protobuf:` field tags plus Reset/String/ProtoMessage
// methods, the same shape protoc-gen-go emitted before the APIv2 rewrite.
// There is no .proto file behind this package — the bridge module's
// service is reached by hand-constructing these messages and invoking the
// gRPC methods directly (see pkg/homechain), rather than through
// protoc-generated client stubs.
package bridgepb

import "github.com/golang/protobuf/proto"

// Erc20Token pairs an ERC20 contract address with a decimal amount,
// both carried as strings on the wire (Cosmos SDK convention for
// arbitrary-precision integers).
type Erc20Token struct {
	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Amount   string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Erc20Token) Reset()         { *m = Erc20Token{} }
func (m *Erc20Token) String() string { return proto.CompactTextString(m) }
func (*Erc20Token) ProtoMessage()    {}

// BridgeValidator is one validator-set member as carried on the wire.
type BridgeValidator struct {
	Power           uint64 `protobuf:"varint,1,opt,name=power,proto3" json:"power,omitempty"`
	EthereumAddress string `protobuf:"bytes,2,opt,name=ethereum_address,json=ethereumAddress,proto3" json:"ethereum_address,omitempty"`
}

func (m *BridgeValidator) Reset()         { *m = BridgeValidator{} }
func (m *BridgeValidator) String() string { return proto.CompactTextString(m) }
func (*BridgeValidator) ProtoMessage()    {}

// Valset is the wire form of a validator set.
type Valset struct {
	Nonce        uint64             `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Members      []*BridgeValidator `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	Height       uint64             `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	RewardAmount string             `protobuf:"bytes,4,opt,name=reward_amount,json=rewardAmount,proto3" json:"reward_amount,omitempty"`
	RewardToken  string             `protobuf:"bytes,5,opt,name=reward_token,json=rewardToken,proto3" json:"reward_token,omitempty"`
}

func (m *Valset) Reset()         { *m = Valset{} }
func (m *Valset) String() string { return proto.CompactTextString(m) }
func (*Valset) ProtoMessage()    {}

// OutgoingTransferTx is one transfer packed inside an OutgoingTxBatch.
type OutgoingTransferTx struct {
	Id          uint64      `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Sender      string      `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	DestAddress string      `protobuf:"bytes,3,opt,name=dest_address,json=destAddress,proto3" json:"dest_address,omitempty"`
	Erc20Token  *Erc20Token `protobuf:"bytes,4,opt,name=erc20_token,json=erc20Token,proto3" json:"erc20_token,omitempty"`
	Erc20Fee    *Erc20Token `protobuf:"bytes,5,opt,name=erc20_fee,json=erc20Fee,proto3" json:"erc20_fee,omitempty"`
}

func (m *OutgoingTransferTx) Reset()         { *m = OutgoingTransferTx{} }
func (m *OutgoingTransferTx) String() string { return proto.CompactTextString(m) }
func (*OutgoingTransferTx) ProtoMessage()    {}

// OutgoingTxBatch is the wire form of a TransactionBatch artifact.
type OutgoingTxBatch struct {
	BatchNonce    uint64                `protobuf:"varint,1,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	BatchTimeout  uint64                `protobuf:"varint,2,opt,name=batch_timeout,json=batchTimeout,proto3" json:"batch_timeout,omitempty"`
	Transactions  []*OutgoingTransferTx `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
	TokenContract string                `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Block         uint64                `protobuf:"varint,5,opt,name=block,proto3" json:"block,omitempty"`
}

func (m *OutgoingTxBatch) Reset()         { *m = OutgoingTxBatch{} }
func (m *OutgoingTxBatch) String() string { return proto.CompactTextString(m) }
func (*OutgoingTxBatch) ProtoMessage()    {}

// OutgoingLogicCall is the wire form of a LogicCall artifact.
type OutgoingLogicCall struct {
	Transfers            []*Erc20Token `protobuf:"bytes,1,rep,name=transfers,proto3" json:"transfers,omitempty"`
	Fees                 []*Erc20Token `protobuf:"bytes,2,rep,name=fees,proto3" json:"fees,omitempty"`
	LogicContractAddress string        `protobuf:"bytes,3,opt,name=logic_contract_address,json=logicContractAddress,proto3" json:"logic_contract_address,omitempty"`
	Payload              []byte        `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
	Timeout              uint64        `protobuf:"varint,5,opt,name=timeout,proto3" json:"timeout,omitempty"`
	InvalidationId       []byte        `protobuf:"bytes,6,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce    uint64        `protobuf:"varint,7,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	Block                uint64        `protobuf:"varint,8,opt,name=block,proto3" json:"block,omitempty"`
}

func (m *OutgoingLogicCall) Reset()         { *m = OutgoingLogicCall{} }
func (m *OutgoingLogicCall) String() string { return proto.CompactTextString(m) }
func (*OutgoingLogicCall) ProtoMessage()    {}

// Params is the wire form of the bridge module's governance parameters.
type Params struct {
	GravityId                string `protobuf:"bytes,1,opt,name=gravity_id,json=gravityId,proto3" json:"gravity_id,omitempty"`
	ContractSourceHash       string `protobuf:"bytes,2,opt,name=contract_source_hash,json=contractSourceHash,proto3" json:"contract_source_hash,omitempty"`
	BridgeEthereumAddress    string `protobuf:"bytes,3,opt,name=bridge_ethereum_address,json=bridgeEthereumAddress,proto3" json:"bridge_ethereum_address,omitempty"`
	BridgeChainId            uint64 `protobuf:"varint,4,opt,name=bridge_chain_id,json=bridgeChainId,proto3" json:"bridge_chain_id,omitempty"`
	SignedValsetsWindow      uint64 `protobuf:"varint,5,opt,name=signed_valsets_window,json=signedValsetsWindow,proto3" json:"signed_valsets_window,omitempty"`
	SignedBatchesWindow      uint64 `protobuf:"varint,6,opt,name=signed_batches_window,json=signedBatchesWindow,proto3" json:"signed_batches_window,omitempty"`
	SignedLogicCallsWindow   uint64 `protobuf:"varint,7,opt,name=signed_logic_calls_window,json=signedLogicCallsWindow,proto3" json:"signed_logic_calls_window,omitempty"`
	TargetBatchTimeout       uint64 `protobuf:"varint,8,opt,name=target_batch_timeout,json=targetBatchTimeout,proto3" json:"target_batch_timeout,omitempty"`
	AverageBlockTime         uint64 `protobuf:"varint,9,opt,name=average_block_time,json=averageBlockTime,proto3" json:"average_block_time,omitempty"`
	AverageEthereumBlockTime uint64 `protobuf:"varint,10,opt,name=average_ethereum_block_time,json=averageEthereumBlockTime,proto3" json:"average_ethereum_block_time,omitempty"`
}

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return proto.CompactTextString(m) }
func (*Params) ProtoMessage()    {}

// Attestation aggregates orchestrator claims for a single observed event.
type Attestation struct {
	Observed bool     `protobuf:"varint,1,opt,name=observed,proto3" json:"observed,omitempty"`
	Votes    []string `protobuf:"bytes,2,rep,name=votes,proto3" json:"votes,omitempty"`
	Height   uint64   `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *Attestation) Reset()         { *m = Attestation{} }
func (m *Attestation) String() string { return proto.CompactTextString(m) }
func (*Attestation) ProtoMessage()    {}

// BatchFees is the BatchFees query response entry: the accumulated fee
// pool waiting on an unbatched set of transfers for one token.
type BatchFees struct {
	Token     string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	TotalFees string `protobuf:"bytes,2,opt,name=total_fees,json=totalFees,proto3" json:"total_fees,omitempty"`
	TxCount   uint64 `protobuf:"varint,3,opt,name=tx_count,json=txCount,proto3" json:"tx_count,omitempty"`
}

func (m *BatchFees) Reset()         { *m = BatchFees{} }
func (m *BatchFees) String() string { return proto.CompactTextString(m) }
func (*BatchFees) ProtoMessage()    {}

// ---- Msg service ----

type MsgValsetConfirm struct {
	Nonce        uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Orchestrator string `protobuf:"bytes,2,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthAddress   string `protobuf:"bytes,3,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
	Signature    string `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgValsetConfirm) Reset()         { *m = MsgValsetConfirm{} }
func (m *MsgValsetConfirm) String() string { return proto.CompactTextString(m) }
func (*MsgValsetConfirm) ProtoMessage()    {}

type MsgConfirmBatch struct {
	Nonce         uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	EthSigner     string `protobuf:"bytes,3,opt,name=eth_signer,json=ethSigner,proto3" json:"eth_signer,omitempty"`
	Orchestrator  string `protobuf:"bytes,4,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	Signature     string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgConfirmBatch) Reset()         { *m = MsgConfirmBatch{} }
func (m *MsgConfirmBatch) String() string { return proto.CompactTextString(m) }
func (*MsgConfirmBatch) ProtoMessage()    {}

type MsgConfirmLogicCall struct {
	InvalidationId    string `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	EthSigner         string `protobuf:"bytes,3,opt,name=eth_signer,json=ethSigner,proto3" json:"eth_signer,omitempty"`
	Orchestrator      string `protobuf:"bytes,4,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	Signature         string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgConfirmLogicCall) Reset()         { *m = MsgConfirmLogicCall{} }
func (m *MsgConfirmLogicCall) String() string { return proto.CompactTextString(m) }
func (*MsgConfirmLogicCall) ProtoMessage()    {}

type MsgSendToCosmosClaim struct {
	EventNonce     uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight    uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	TokenContract  string `protobuf:"bytes,3,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Amount         string `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	EthereumSender string `protobuf:"bytes,5,opt,name=ethereum_sender,json=ethereumSender,proto3" json:"ethereum_sender,omitempty"`
	CosmosReceiver string `protobuf:"bytes,6,opt,name=cosmos_receiver,json=cosmosReceiver,proto3" json:"cosmos_receiver,omitempty"`
	Orchestrator   string `protobuf:"bytes,7,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgSendToCosmosClaim) Reset()         { *m = MsgSendToCosmosClaim{} }
func (m *MsgSendToCosmosClaim) String() string { return proto.CompactTextString(m) }
func (*MsgSendToCosmosClaim) ProtoMessage()    {}

type MsgBatchSendToEthClaim struct {
	EventNonce    uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight   uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	BatchNonce    uint64 `protobuf:"varint,3,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	TokenContract string `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Orchestrator  string `protobuf:"bytes,5,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgBatchSendToEthClaim) Reset()         { *m = MsgBatchSendToEthClaim{} }
func (m *MsgBatchSendToEthClaim) String() string { return proto.CompactTextString(m) }
func (*MsgBatchSendToEthClaim) ProtoMessage()    {}

type MsgERC20DeployedClaim struct {
	EventNonce    uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight   uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	CosmosDenom   string `protobuf:"bytes,3,opt,name=cosmos_denom,json=cosmosDenom,proto3" json:"cosmos_denom,omitempty"`
	TokenContract string `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Name          string `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	Symbol        string `protobuf:"bytes,6,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals      uint32 `protobuf:"varint,7,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Orchestrator  string `protobuf:"bytes,8,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgERC20DeployedClaim) Reset()         { *m = MsgERC20DeployedClaim{} }
func (m *MsgERC20DeployedClaim) String() string { return proto.CompactTextString(m) }
func (*MsgERC20DeployedClaim) ProtoMessage()    {}

type MsgLogicCallExecutedClaim struct {
	EventNonce        uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight       uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	InvalidationId    []byte `protobuf:"bytes,3,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,4,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	Orchestrator      string `protobuf:"bytes,5,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgLogicCallExecutedClaim) Reset()         { *m = MsgLogicCallExecutedClaim{} }
func (m *MsgLogicCallExecutedClaim) String() string { return proto.CompactTextString(m) }
func (*MsgLogicCallExecutedClaim) ProtoMessage()    {}

type MsgValsetUpdatedClaim struct {
	EventNonce   uint64             `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight  uint64             `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	ValsetNonce  uint64             `protobuf:"varint,3,opt,name=valset_nonce,json=valsetNonce,proto3" json:"valset_nonce,omitempty"`
	Members      []*BridgeValidator `protobuf:"bytes,4,rep,name=members,proto3" json:"members,omitempty"`
	RewardAmount string             `protobuf:"bytes,5,opt,name=reward_amount,json=rewardAmount,proto3" json:"reward_amount,omitempty"`
	RewardToken  string             `protobuf:"bytes,6,opt,name=reward_token,json=rewardToken,proto3" json:"reward_token,omitempty"`
	Orchestrator string             `protobuf:"bytes,7,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgValsetUpdatedClaim) Reset()         { *m = MsgValsetUpdatedClaim{} }
func (m *MsgValsetUpdatedClaim) String() string { return proto.CompactTextString(m) }
func (*MsgValsetUpdatedClaim) ProtoMessage()    {}

type MsgSubmitBadSignatureEvidence struct {
	Subject   []byte `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	Signature string `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
	Sender    string `protobuf:"bytes,3,opt,name=sender,proto3" json:"sender,omitempty"`
}

func (m *MsgSubmitBadSignatureEvidence) Reset()         { *m = MsgSubmitBadSignatureEvidence{} }
func (m *MsgSubmitBadSignatureEvidence) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitBadSignatureEvidence) ProtoMessage()    {}

// MsgResponse is the shared empty acknowledgement every Msg method above
// returns; the bridge module's Msg service follows the Cosmos SDK
// convention of per-message response types that carry no fields.
type MsgResponse struct{}

func (m *MsgResponse) Reset()         { *m = MsgResponse{} }
func (m *MsgResponse) String() string { return proto.CompactTextString(m) }
func (*MsgResponse) ProtoMessage()    {}

// ---- Query service request/response envelopes ----

type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

type QueryParamsResponse struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

type QueryCurrentValsetRequest struct{}

func (m *QueryCurrentValsetRequest) Reset()         { *m = QueryCurrentValsetRequest{} }
func (m *QueryCurrentValsetRequest) String() string { return proto.CompactTextString(m) }
func (*QueryCurrentValsetRequest) ProtoMessage()    {}

type QueryCurrentValsetResponse struct {
	Valset *Valset `protobuf:"bytes,1,opt,name=valset,proto3" json:"valset,omitempty"`
}

func (m *QueryCurrentValsetResponse) Reset()         { *m = QueryCurrentValsetResponse{} }
func (m *QueryCurrentValsetResponse) String() string { return proto.CompactTextString(m) }
func (*QueryCurrentValsetResponse) ProtoMessage()    {}

type QueryLastPendingValsetRequestByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastPendingValsetRequestByAddrRequest) Reset() {
	*m = QueryLastPendingValsetRequestByAddrRequest{}
}
func (m *QueryLastPendingValsetRequestByAddrRequest) String() string {
	return proto.CompactTextString(m)
}
func (*QueryLastPendingValsetRequestByAddrRequest) ProtoMessage() {}

type QueryLastPendingValsetRequestByAddrResponse struct {
	Valsets []*Valset `protobuf:"bytes,1,rep,name=valsets,proto3" json:"valsets,omitempty"`
}

func (m *QueryLastPendingValsetRequestByAddrResponse) Reset() {
	*m = QueryLastPendingValsetRequestByAddrResponse{}
}
func (m *QueryLastPendingValsetRequestByAddrResponse) String() string {
	return proto.CompactTextString(m)
}
func (*QueryLastPendingValsetRequestByAddrResponse) ProtoMessage() {}

type QueryValsetConfirmsByNonceRequest struct {
	Nonce uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *QueryValsetConfirmsByNonceRequest) Reset()         { *m = QueryValsetConfirmsByNonceRequest{} }
func (m *QueryValsetConfirmsByNonceRequest) String() string { return proto.CompactTextString(m) }
func (*QueryValsetConfirmsByNonceRequest) ProtoMessage()    {}

type QueryValsetConfirmsByNonceResponse struct {
	Confirms []*MsgValsetConfirm `protobuf:"bytes,1,rep,name=confirms,proto3" json:"confirms,omitempty"`
}

func (m *QueryValsetConfirmsByNonceResponse) Reset()         { *m = QueryValsetConfirmsByNonceResponse{} }
func (m *QueryValsetConfirmsByNonceResponse) String() string { return proto.CompactTextString(m) }
func (*QueryValsetConfirmsByNonceResponse) ProtoMessage()    {}

type QueryLastPendingBatchRequestByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastPendingBatchRequestByAddrRequest) Reset() {
	*m = QueryLastPendingBatchRequestByAddrRequest{}
}
func (m *QueryLastPendingBatchRequestByAddrRequest) String() string { return proto.CompactTextString(m) }
func (*QueryLastPendingBatchRequestByAddrRequest) ProtoMessage()    {}

type QueryLastPendingBatchRequestByAddrResponse struct {
	Batches []*OutgoingTxBatch `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
}

func (m *QueryLastPendingBatchRequestByAddrResponse) Reset() {
	*m = QueryLastPendingBatchRequestByAddrResponse{}
}
func (m *QueryLastPendingBatchRequestByAddrResponse) String() string {
	return proto.CompactTextString(m)
}
func (*QueryLastPendingBatchRequestByAddrResponse) ProtoMessage() {}

type QueryOutgoingTxBatchesRequest struct{}

func (m *QueryOutgoingTxBatchesRequest) Reset()         { *m = QueryOutgoingTxBatchesRequest{} }
func (m *QueryOutgoingTxBatchesRequest) String() string { return proto.CompactTextString(m) }
func (*QueryOutgoingTxBatchesRequest) ProtoMessage()    {}

type QueryOutgoingTxBatchesResponse struct {
	Batches []*OutgoingTxBatch `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
}

func (m *QueryOutgoingTxBatchesResponse) Reset()         { *m = QueryOutgoingTxBatchesResponse{} }
func (m *QueryOutgoingTxBatchesResponse) String() string { return proto.CompactTextString(m) }
func (*QueryOutgoingTxBatchesResponse) ProtoMessage()    {}

type QueryBatchConfirmsRequest struct {
	Nonce         uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	ContractAddress string `protobuf:"bytes,2,opt,name=contract_address,json=contractAddress,proto3" json:"contract_address,omitempty"`
}

func (m *QueryBatchConfirmsRequest) Reset()         { *m = QueryBatchConfirmsRequest{} }
func (m *QueryBatchConfirmsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryBatchConfirmsRequest) ProtoMessage()    {}

type QueryBatchConfirmsResponse struct {
	Confirms []*MsgConfirmBatch `protobuf:"bytes,1,rep,name=confirms,proto3" json:"confirms,omitempty"`
}

func (m *QueryBatchConfirmsResponse) Reset()         { *m = QueryBatchConfirmsResponse{} }
func (m *QueryBatchConfirmsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryBatchConfirmsResponse) ProtoMessage()    {}

type QueryOutgoingLogicCallsRequest struct{}

func (m *QueryOutgoingLogicCallsRequest) Reset()         { *m = QueryOutgoingLogicCallsRequest{} }
func (m *QueryOutgoingLogicCallsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryOutgoingLogicCallsRequest) ProtoMessage()    {}

type QueryOutgoingLogicCallsResponse struct {
	Calls []*OutgoingLogicCall `protobuf:"bytes,1,rep,name=calls,proto3" json:"calls,omitempty"`
}

func (m *QueryOutgoingLogicCallsResponse) Reset()         { *m = QueryOutgoingLogicCallsResponse{} }
func (m *QueryOutgoingLogicCallsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryOutgoingLogicCallsResponse) ProtoMessage()    {}

type QueryLastPendingLogicCallByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastPendingLogicCallByAddrRequest) Reset() {
	*m = QueryLastPendingLogicCallByAddrRequest{}
}
func (m *QueryLastPendingLogicCallByAddrRequest) String() string { return proto.CompactTextString(m) }
func (*QueryLastPendingLogicCallByAddrRequest) ProtoMessage()    {}

type QueryLastPendingLogicCallByAddrResponse struct {
	Calls []*OutgoingLogicCall `protobuf:"bytes,1,rep,name=calls,proto3" json:"calls,omitempty"`
}

func (m *QueryLastPendingLogicCallByAddrResponse) Reset() {
	*m = QueryLastPendingLogicCallByAddrResponse{}
}
func (m *QueryLastPendingLogicCallByAddrResponse) String() string { return proto.CompactTextString(m) }
func (*QueryLastPendingLogicCallByAddrResponse) ProtoMessage()    {}

type QueryLogicConfirmsRequest struct {
	InvalidationId    string `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
}

func (m *QueryLogicConfirmsRequest) Reset()         { *m = QueryLogicConfirmsRequest{} }
func (m *QueryLogicConfirmsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryLogicConfirmsRequest) ProtoMessage()    {}

type QueryLogicConfirmsResponse struct {
	Confirms []*MsgConfirmLogicCall `protobuf:"bytes,1,rep,name=confirms,proto3" json:"confirms,omitempty"`
}

func (m *QueryLogicConfirmsResponse) Reset()         { *m = QueryLogicConfirmsResponse{} }
func (m *QueryLogicConfirmsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryLogicConfirmsResponse) ProtoMessage()    {}

type QueryLastEventNonceByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastEventNonceByAddrRequest) Reset()         { *m = QueryLastEventNonceByAddrRequest{} }
func (m *QueryLastEventNonceByAddrRequest) String() string { return proto.CompactTextString(m) }
func (*QueryLastEventNonceByAddrRequest) ProtoMessage()    {}

type QueryLastEventNonceByAddrResponse struct {
	EventNonce uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
}

func (m *QueryLastEventNonceByAddrResponse) Reset()         { *m = QueryLastEventNonceByAddrResponse{} }
func (m *QueryLastEventNonceByAddrResponse) String() string { return proto.CompactTextString(m) }
func (*QueryLastEventNonceByAddrResponse) ProtoMessage()    {}

type QueryDenomToErc20Request struct {
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *QueryDenomToErc20Request) Reset()         { *m = QueryDenomToErc20Request{} }
func (m *QueryDenomToErc20Request) String() string { return proto.CompactTextString(m) }
func (*QueryDenomToErc20Request) ProtoMessage()    {}

type QueryDenomToErc20Response struct {
	Erc20 string `protobuf:"bytes,1,opt,name=erc20,proto3" json:"erc20,omitempty"`
}

func (m *QueryDenomToErc20Response) Reset()         { *m = QueryDenomToErc20Response{} }
func (m *QueryDenomToErc20Response) String() string { return proto.CompactTextString(m) }
func (*QueryDenomToErc20Response) ProtoMessage()    {}

type QueryErc20ToDenomRequest struct {
	Erc20 string `protobuf:"bytes,1,opt,name=erc20,proto3" json:"erc20,omitempty"`
}

func (m *QueryErc20ToDenomRequest) Reset()         { *m = QueryErc20ToDenomRequest{} }
func (m *QueryErc20ToDenomRequest) String() string { return proto.CompactTextString(m) }
func (*QueryErc20ToDenomRequest) ProtoMessage()    {}

type QueryErc20ToDenomResponse struct {
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *QueryErc20ToDenomResponse) Reset()         { *m = QueryErc20ToDenomResponse{} }
func (m *QueryErc20ToDenomResponse) String() string { return proto.CompactTextString(m) }
func (*QueryErc20ToDenomResponse) ProtoMessage()    {}

type QueryGetDelegateKeyByOrchestratorRequest struct {
	OrchestratorAddress string `protobuf:"bytes,1,opt,name=orchestrator_address,json=orchestratorAddress,proto3" json:"orchestrator_address,omitempty"`
}

func (m *QueryGetDelegateKeyByOrchestratorRequest) Reset() {
	*m = QueryGetDelegateKeyByOrchestratorRequest{}
}
func (m *QueryGetDelegateKeyByOrchestratorRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetDelegateKeyByOrchestratorRequest) ProtoMessage()    {}

type QueryGetDelegateKeyByOrchestratorResponse struct {
	ValidatorAddress string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	EthAddress       string `protobuf:"bytes,2,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
}

func (m *QueryGetDelegateKeyByOrchestratorResponse) Reset() {
	*m = QueryGetDelegateKeyByOrchestratorResponse{}
}
func (m *QueryGetDelegateKeyByOrchestratorResponse) String() string {
	return proto.CompactTextString(m)
}
func (*QueryGetDelegateKeyByOrchestratorResponse) ProtoMessage() {}

type QueryGetDelegateKeyByEthRequest struct {
	EthAddress string `protobuf:"bytes,1,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
}

func (m *QueryGetDelegateKeyByEthRequest) Reset()         { *m = QueryGetDelegateKeyByEthRequest{} }
func (m *QueryGetDelegateKeyByEthRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetDelegateKeyByEthRequest) ProtoMessage()    {}

type QueryGetDelegateKeyByEthResponse struct {
	ValidatorAddress   string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	OrchestratorAddress string `protobuf:"bytes,2,opt,name=orchestrator_address,json=orchestratorAddress,proto3" json:"orchestrator_address,omitempty"`
}

func (m *QueryGetDelegateKeyByEthResponse) Reset()         { *m = QueryGetDelegateKeyByEthResponse{} }
func (m *QueryGetDelegateKeyByEthResponse) String() string { return proto.CompactTextString(m) }
func (*QueryGetDelegateKeyByEthResponse) ProtoMessage()    {}

type QueryBatchFeesRequest struct{}

func (m *QueryBatchFeesRequest) Reset()         { *m = QueryBatchFeesRequest{} }
func (m *QueryBatchFeesRequest) String() string { return proto.CompactTextString(m) }
func (*QueryBatchFeesRequest) ProtoMessage()    {}

type QueryBatchFeesResponse struct {
	BatchFees []*BatchFees `protobuf:"bytes,1,rep,name=batch_fees,json=batchFees,proto3" json:"batch_fees,omitempty"`
}

func (m *QueryBatchFeesResponse) Reset()         { *m = QueryBatchFeesResponse{} }
func (m *QueryBatchFeesResponse) String() string { return proto.CompactTextString(m) }
func (*QueryBatchFeesResponse) ProtoMessage()    {}

type QueryGetAttestationsRequest struct {
	Limit uint64 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *QueryGetAttestationsRequest) Reset()         { *m = QueryGetAttestationsRequest{} }
func (m *QueryGetAttestationsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetAttestationsRequest) ProtoMessage()    {}

type QueryGetAttestationsResponse struct {
	Attestations []*Attestation `protobuf:"bytes,1,rep,name=attestations,proto3" json:"attestations,omitempty"`
}

func (m *QueryGetAttestationsResponse) Reset()         { *m = QueryGetAttestationsResponse{} }
func (m *QueryGetAttestationsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryGetAttestationsResponse) ProtoMessage()    {}

package config

import "testing"

func validFlags() Flags {
	return Flags{
		CosmosPhrase: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		EthereumKey:  "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
		Fees:         "100ugraviton",
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse(validFlags())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HomeGRPCEndpoint != "http://localhost:9090" {
		t.Fatalf("unexpected default grpc endpoint: %s", cfg.HomeGRPCEndpoint)
	}
	if cfg.EvmRPCURL != "http://localhost:8545" {
		t.Fatalf("unexpected default evm rpc: %s", cfg.EvmRPCURL)
	}
	if cfg.AddressPrefix != "gravity" {
		t.Fatalf("unexpected default address prefix: %s", cfg.AddressPrefix)
	}
	if cfg.BridgeContractKnown {
		t.Fatalf("bridge contract should be unknown when the flag is omitted")
	}
}

func TestParseRequiresCosmosPhrase(t *testing.T) {
	f := validFlags()
	f.CosmosPhrase = ""
	if _, err := Parse(f); err == nil {
		t.Fatalf("expected error for missing --cosmos-phrase")
	}
}

func TestParseRequiresFees(t *testing.T) {
	f := validFlags()
	f.Fees = ""
	if _, err := Parse(f); err == nil {
		t.Fatalf("expected error for missing --fees")
	}
}

func TestParseRejectsMalformedEthereumKey(t *testing.T) {
	f := validFlags()
	f.EthereumKey = "not-hex"
	if _, err := Parse(f); err == nil {
		t.Fatalf("expected error for malformed --ethereum-key")
	}
}

func TestParseFeeSplitsAmountAndDenom(t *testing.T) {
	fee, err := parseFee("1500ugraviton")
	if err != nil {
		t.Fatalf("parseFee: %v", err)
	}
	if fee.Amount != 1500 || fee.Denom != "ugraviton" {
		t.Fatalf("got %+v", fee)
	}
}

func TestParseFeeRejectsMissingDenom(t *testing.T) {
	if _, err := parseFee("1500"); err == nil {
		t.Fatalf("expected error for missing denom")
	}
}

func TestParseFeeRejectsMissingAmount(t *testing.T) {
	if _, err := parseFee("ugraviton"); err == nil {
		t.Fatalf("expected error for missing amount")
	}
}

func TestParseBridgeContractAddress(t *testing.T) {
	f := validFlags()
	f.GravityContract = "0x00000000000000000000000000000000000000aa"
	cfg, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.BridgeContractKnown {
		t.Fatalf("expected bridge contract to be marked known")
	}
	if cfg.BridgeContract.IsZero() {
		t.Fatalf("expected a non-zero parsed address")
	}
}

func TestParseMonitoredTokensSplitsAndTrims(t *testing.T) {
	f := validFlags()
	f.MonitoredTokens = " 0x00000000000000000000000000000000000000aa, 0x00000000000000000000000000000000000000bb "
	cfg, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.MonitoredTokens) != 2 {
		t.Fatalf("expected 2 monitored tokens, got %d", len(cfg.MonitoredTokens))
	}
}

func TestParseMonitoredTokensEmptyLeavesMonitorDisabled(t *testing.T) {
	cfg, err := Parse(validFlags())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.MonitoredTokens) != 0 {
		t.Fatalf("expected no monitored tokens by default, got %v", cfg.MonitoredTokens)
	}
}

func TestParseMonitoredTokensRejectsMalformedAddress(t *testing.T) {
	f := validFlags()
	f.MonitoredTokens = "not-an-address"
	if _, err := Parse(f); err == nil {
		t.Fatalf("expected error for malformed --monitor-token entry")
	}
}

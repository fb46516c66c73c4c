package types

import "testing"

func TestBatchExpiredAtExactTimeout(t *testing.T) {
	b := TransactionBatch{BatchTimeout: 500}
	if !b.Expired(500) {
		t.Fatalf("batch with timeout == current block must be classified expired")
	}
	if b.Expired(499) {
		t.Fatalf("batch with timeout > current block must not be expired")
	}
}

func TestLogicCallExpiredAtExactTimeout(t *testing.T) {
	l := LogicCall{Timeout: 100}
	if !l.Expired(100) {
		t.Fatalf("logic call with timeout == current block must be classified expired")
	}
}

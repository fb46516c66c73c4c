package types

import "testing"

func threeEqualMembers() []ValsetMember {
	// 3 * 1,431,655,765 ~= 2^32, matching spec scenario A.
	return []ValsetMember{
		{EvmAddress: EvmAddress{0x01}, Power: 1_431_655_765},
		{EvmAddress: EvmAddress{0x02}, Power: 1_431_655_765},
		{EvmAddress: EvmAddress{0x03}, Power: 1_431_655_765},
	}
}

func TestEnoughPowerStrictThreshold(t *testing.T) {
	v := Valset{Members: []ValsetMember{
		{EvmAddress: EvmAddress{0x01}, Power: PassThreshold},
	}}
	if v.EnoughPower() {
		t.Fatalf("power exactly at threshold must not count as enough")
	}

	v.Members[0].Power = PassThreshold + 1
	if !v.EnoughPower() {
		t.Fatalf("power one above threshold must count as enough")
	}
}

func TestEnoughPowerThreeEqualValidators(t *testing.T) {
	v := Valset{Members: threeEqualMembers()}
	if !v.EnoughPower() {
		t.Fatalf("three validators of power 1,431,655,765 should clear the pass threshold")
	}
}

func TestPowerDiffIdentityAndSymmetry(t *testing.T) {
	v1 := Valset{Members: threeEqualMembers()}
	v2 := Valset{Members: []ValsetMember{
		{EvmAddress: EvmAddress{0x01}, Power: 2_000_000_000},
		{EvmAddress: EvmAddress{0x02}, Power: 1_431_655_765},
		{EvmAddress: EvmAddress{0x03}, Power: 862_987_900},
	}}

	if d := PowerDiff(v1, v1); d != 0 {
		t.Fatalf("PowerDiff(v, v) = %v, want 0", d)
	}

	d12 := PowerDiff(v1, v2)
	d21 := PowerDiff(v2, v1)
	if d12 != d21 {
		t.Fatalf("PowerDiff not symmetric: %v vs %v", d12, d21)
	}
	if d12 > 2 {
		t.Fatalf("PowerDiff(v1, v2) = %v, want <= 2", d12)
	}
}

func TestPowerDiffDisjointMembers(t *testing.T) {
	v1 := Valset{Members: []ValsetMember{{EvmAddress: EvmAddress{0x01}, Power: 1000}}}
	v2 := Valset{Members: []ValsetMember{{EvmAddress: EvmAddress{0x02}, Power: 1000}}}

	want := float64(2000) / float64(TotalGravityPower)
	if got := PowerDiff(v1, v2); got != want {
		t.Fatalf("PowerDiff with disjoint members = %v, want %v", got, want)
	}
}

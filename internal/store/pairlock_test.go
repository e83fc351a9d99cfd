package store

import (
	"strings"
	"testing"
)

func TestPairKey_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := "64f000000000000000000001"
	b := "64f000000000000000000002"

	if pairKey(a, b) != pairKey(b, a) {
		t.Fatalf("both directions of a pair must contend on the same key: %q vs %q",
			pairKey(a, b), pairKey(b, a))
	}
}

func TestPairKey_DistinctPairs(t *testing.T) {
	t.Parallel()

	a := "64f000000000000000000001"
	b := "64f000000000000000000002"
	c := "64f000000000000000000003"

	if pairKey(a, b) == pairKey(a, c) {
		t.Fatal("different pairs must not share a lock key")
	}
	if !strings.HasPrefix(pairKey(a, b), "followlock:") {
		t.Fatalf("unexpected keyspace prefix: %q", pairKey(a, b))
	}
}

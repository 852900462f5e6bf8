package util

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateOrderSn(t *testing.T) {
	sn := GenerateOrderSn()
	prefix := time.Now().Format("20060102")
	if !strings.HasPrefix(sn, prefix) {
		t.Errorf("order sn %s missing date prefix %s", sn, prefix)
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		sn := GenerateOrderSn()
		if seen[sn] {
			t.Fatalf("duplicate order sn %s", sn)
		}
		seen[sn] = true
	}
}

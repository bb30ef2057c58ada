package utils

import (
	"strings"
	"testing"
)

func TestGeneratePNRShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		pnr := GeneratePNR()
		if len(pnr) != 10 {
			t.Fatalf("pnr %q has length %d, want 10", pnr, len(pnr))
		}
		for _, r := range pnr {
			if r < '0' || r > '9' {
				t.Fatalf("pnr %q contains non-digit %q", pnr, r)
			}
		}
	}
}

func TestGenerateTicketNumberShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		tn := GenerateTicketNumber()
		if len(tn) != 7 || tn[0] != 'T' {
			t.Fatalf("ticket %q does not match T + 6 digits", tn)
		}
		for _, r := range tn[1:] {
			if r < '0' || r > '9' {
				t.Fatalf("ticket %q contains non-digit %q", tn, r)
			}
		}
	}
}

func TestGenerateTransactionID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GenerateTransactionID()
		if !strings.HasPrefix(id, "TXN-") {
			t.Fatalf("transaction id %q missing TXN- prefix", id)
		}
		if seen[id] {
			t.Fatalf("transaction id %q repeated", id)
		}
		seen[id] = true
	}
}

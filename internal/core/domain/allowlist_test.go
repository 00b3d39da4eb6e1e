package domain

import (
	"testing"
)

func TestAllowlist(t *testing.T) {
	a := NewAllowlist([]string{"USD", "EUR", "USD", ""})

	if !a.Allowed("USD") {
		t.Fatal("USD should be allowed")
	}
	if !a.Allowed("EUR") {
		t.Fatal("EUR should be allowed")
	}
	if a.Allowed("GBP") {
		t.Fatal("GBP should not be allowed")
	}
	if a.Allowed("") {
		t.Fatal("empty asset should not be allowed")
	}

	got := a.Assets()
	want := []string{"USD", "EUR"}
	if len(got) != len(want) {
		t.Fatalf("assets: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("assets: got %v, want %v", got, want)
		}
	}

	// mutating the returned slice must not affect the set
	got[0] = "XXX"
	if !a.Allowed("USD") {
		t.Fatal("USD should still be allowed after caller mutation")
	}
}

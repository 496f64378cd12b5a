package contestants

import "testing"

func TestLineupSize(t *testing.T) {
	if Count() != 37 {
		t.Errorf("expected 37 entries, got %d", Count())
	}
	if len(All()) != Count() {
		t.Errorf("All() length mismatch: %d vs %d", len(All()), Count())
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID("esc2025_12")
	if !ok {
		t.Fatal("esc2025_12 not found")
	}
	if c.Country != "Finland" {
		t.Errorf("expected Finland, got %s", c.Country)
	}
	if _, ok := ByID("esc2024_1"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestCircularNavigation(t *testing.T) {
	if got := NextID("esc2025_1"); got != "esc2025_2" {
		t.Errorf("next of first: got %s", got)
	}
	if got := NextID("esc2025_37"); got != "esc2025_1" {
		t.Errorf("next of last should wrap to first, got %s", got)
	}
	if got := PrevID("esc2025_1"); got != "esc2025_37" {
		t.Errorf("prev of first should wrap to last, got %s", got)
	}
	if got := NextID("nope"); got != "" {
		t.Errorf("unknown id should navigate nowhere, got %s", got)
	}
}

func TestFlagURLs(t *testing.T) {
	c, _ := ByID("esc2025_14")
	// "Flag of Georgia.svg" contains spaces and must be escaped.
	if c.FlagURL != "/flags/Flag%20of%20Georgia.svg" {
		t.Errorf("unexpected flag url %s", c.FlagURL)
	}
	if flagURL("Atlantis") != PlaceholderFlagURL {
		t.Errorf("unmapped country should fall back to placeholder")
	}
}

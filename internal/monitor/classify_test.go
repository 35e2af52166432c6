package monitor

import (
	"testing"

	"github.com/petro438/PM-Intel/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		title string
		want  domain.Category
	}{
		{"Will the Chiefs win the NFL championship?", domain.CategorySports},
		{"NBA Finals winner 2026", domain.CategorySports},
		{"Will Trump win the election?", domain.CategoryPolitics},
		{"Congress passes budget by Friday", domain.CategoryPolitics},
		{"Bitcoin above $100k by year end", domain.CategoryCrypto},
		{"ETH/BTC flippening this year", domain.CategoryCrypto},
		{"Fed cuts rates in September", domain.CategoryEconomics},
		{"US recession declared in 2026", domain.CategoryEconomics},
		{"Will it rain in Seattle tomorrow?", domain.CategoryOther},
		{"", domain.CategoryOther},
	}
	for _, c := range cases {
		if got := Classify(c.title); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if Classify("BITCOIN ABOVE 100K") != domain.CategoryCrypto {
		t.Error("uppercase titles must classify the same as lowercase")
	}
}

func TestClassifyFirstGroupWins(t *testing.T) {
	// Matches both the sports and the politics groups; sports is evaluated
	// first and must win.
	got := Classify("Championship debate: Trump vs Biden")
	if got != domain.CategorySports {
		t.Errorf("got %q, want %q", got, domain.CategorySports)
	}

	// Politics before crypto.
	got = Classify("Will Trump launch a Bitcoin reserve?")
	if got != domain.CategoryPolitics {
		t.Errorf("got %q, want %q", got, domain.CategoryPolitics)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	title := "Fed rate decision and Bitcoin reaction"
	first := Classify(title)
	for i := 0; i < 100; i++ {
		if got := Classify(title); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}

func TestClassifyClosedSet(t *testing.T) {
	titles := []string{
		"NFL opener", "Trump rally", "eth merge", "gdp print", "weather", "",
	}
	for _, title := range titles {
		if !domain.ValidCategory(string(Classify(title))) {
			t.Errorf("Classify(%q) produced a value outside the category set", title)
		}
	}
}

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPctOfRevenue(t *testing.T) {
	assertDec(t, "25", PctOfRevenue(dec("2500"), dec("10000")))
	assertDec(t, "33.33", PctOfRevenue(dec("1"), dec("3")))
	assertDec(t, "0", PctOfRevenue(dec("2500"), dec("0")), "zero revenue")
}

func TestVariation(t *testing.T) {
	assertDec(t, "2000", Variation(dec("10000"), dec("8000")))
	assertDec(t, "-500", Variation(dec("0"), dec("500")))
}

func TestVariationPct(t *testing.T) {
	assertDec(t, "25", VariationPct(dec("10000"), dec("8000")))
	assertDec(t, "-100", VariationPct(dec("0"), dec("500")))
	assertDec(t, "50", VariationPct(dec("-50"), dec("-100")), "improvement on a negative base is positive")
}

func TestVariationPct_Scenario4_ZeroPrevious(t *testing.T) {
	got := VariationPct(dec("10000"), dec("0"))
	assert.True(t, got.IsZero())
}

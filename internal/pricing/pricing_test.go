package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestCompute_Discounted(t *testing.T) {
	info := Compute(fptr(100), "", fptr(25))

	assert.Equal(t, "S/ 100.00", info.BaseLabel)
	assert.Equal(t, "S/ 75.00", info.FinalLabel)
	assert.Equal(t, "-25%", info.DiscountLabel)
	assert.True(t, info.HasDiscount)
}

func TestCompute_NoDiscount(t *testing.T) {
	for _, discount := range []*float64{nil, fptr(0)} {
		info := Compute(fptr(18.5), "", discount)

		assert.Equal(t, "S/ 18.50", info.BaseLabel)
		assert.Equal(t, info.BaseLabel, info.FinalLabel)
		assert.Empty(t, info.DiscountLabel)
		assert.False(t, info.HasDiscount)
	}
}

func TestCompute_FractionalDiscountLabel(t *testing.T) {
	info := Compute(fptr(40), "", fptr(12.5))

	assert.Equal(t, "-12.5%", info.DiscountLabel)
	assert.Equal(t, "S/ 35.00", info.FinalLabel)
}

func TestCompute_DiscountCappedAt100(t *testing.T) {
	info := Compute(fptr(80), "", fptr(150))

	assert.Equal(t, "S/ 0.00", info.FinalLabel)
}

func TestCompute_DisplayOverride(t *testing.T) {
	info := Compute(fptr(30), "Desde S/ 30", nil)

	assert.Equal(t, "Desde S/ 30", info.BaseLabel)
	assert.Equal(t, "S/ 30.00", info.FinalLabel)
}

func TestCompute_NoAmount(t *testing.T) {
	info := Compute(nil, "", fptr(25))
	assert.Empty(t, info.BaseLabel)
	assert.Empty(t, info.FinalLabel)
	assert.False(t, info.HasDiscount)

	info = Compute(nil, "Consultar", nil)
	assert.Equal(t, "Consultar", info.BaseLabel)
	assert.Equal(t, "Consultar", info.FinalLabel)
	assert.False(t, info.HasDiscount)
}

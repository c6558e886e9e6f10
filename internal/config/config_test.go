package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingSurcharge(t *testing.T) {
	p := Pricing{BaseOngkir: 15000, MinOngkir: 5000, SurchargeExpress: 5000, SurchargeSameDay: 10000}

	assert.Equal(t, int64(0), p.Surcharge("Reguler"))
	assert.Equal(t, int64(5000), p.Surcharge("Express"))
	assert.Equal(t, int64(10000), p.Surcharge("Same Day"))
	assert.Equal(t, int64(0), p.Surcharge("Kilat"))

	assert.Equal(t, int64(15000), p.SuggestedOngkir("Reguler"))
	assert.Equal(t, int64(25000), p.SuggestedOngkir("Same Day"))
}

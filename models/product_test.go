package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOnSale(t *testing.T) {
	tests := []struct {
		name          string
		originalPrice float64
		salePrice     float64
		want          bool
	}{
		{"sale above original", 100, 120, false},
		{"sale below original", 100, 80, true},
		{"no sale price", 100, 0, false},
		{"sale equals original", 100, 100, false},
		{"negative sale", 100, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOnSale(tt.originalPrice, tt.salePrice))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	onSale := &Product{OriginalPrice: 8, SalePrice: 5, OnSale: true}
	assert.Equal(t, 5.0, onSale.EffectivePrice())

	regular := &Product{OriginalPrice: 10, SalePrice: 0, OnSale: false}
	assert.Equal(t, 10.0, regular.EffectivePrice())
}

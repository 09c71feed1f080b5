package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 3005.63, RoundTo(3005.625, 2))
	assert.Equal(t, 70.0, RoundTo(70.0, 2))
	assert.Equal(t, 0.67, RoundTo(2.0/3.0, 2))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

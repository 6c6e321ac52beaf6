package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-500, "-$5.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.String(), "Cents(%d)", int64(c.in))
	}
	assert.Equal(t, "$12.00", Format(1200))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, Cents(2200), Cents(10000).Percent(2200))
	// 0.5 cent rounds up
	assert.Equal(t, Cents(1), Cents(5).Percent(1000))
	assert.Equal(t, Cents(0), Cents(5).FloorPercent(1000))
	assert.Equal(t, Cents(80000), FromDollars(4000).FloorPercent(2000))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(0))
	assert.True(t, Valid(int64(MaxAmount)))
	assert.False(t, Valid(int64(MaxAmount)+1))
	assert.False(t, Valid(-1))

	// The largest accepted amount still yields a positive share.
	assert.Equal(t, Cents(2_200_000_000_000), MaxAmount.Percent(2200))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYuanToCents(t *testing.T) {
	cases := []struct {
		yuan float64
		want uint32
	}{
		{0.01, 1},
		{0.1, 10},
		{1, 100},
		{1.1, 110},
		{19.99, 1999},
		{199.00, 19900},
		{999999.99, 99999999},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, yuanToCents(tc.yuan), "yuan=%v", tc.yuan)
	}
}

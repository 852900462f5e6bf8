package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusCanTransit(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusUnpaid:  {OrderStatusPaid, OrderStatusCancelled},
		OrderStatusPaid:    {OrderStatusShipped},
		OrderStatusShipped: {OrderStatusSigned},
		OrderStatusSigned:  {OrderStatusCompleted},
	}

	all := []OrderStatus{
		OrderStatusUnpaid, OrderStatusPaid, OrderStatusShipped,
		OrderStatusSigned, OrderStatusCompleted, OrderStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if to == ok {
					want = true
				}
			}
			require.Equal(t, want, from.CanTransit(to), "from=%d to=%d", from, to)
		}
	}
}

// 终态不允许任何流转
func TestOrderStatusTerminal(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		for to := OrderStatus(0); to <= OrderStatusCancelled; to++ {
			require.False(t, terminal.CanTransit(to))
		}
	}
}

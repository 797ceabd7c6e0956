package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lotomart_purchases_total",
		Help: "Tickets sold, per game.",
	}, []string{"game"})

	SettledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lotomart_settled_purchases_total",
		Help: "Purchases settled by draws, per game and outcome.",
	}, []string{"game", "status"})

	PayoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lotomart_payout_units_total",
		Help: "Prize money credited, in currency units, per game.",
	}, []string{"game"})

	TransactionsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lotomart_transactions_resolved_total",
		Help: "Deposit and withdraw requests resolved, per type and status.",
	}, []string{"type", "status"})
)

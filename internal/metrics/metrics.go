package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain operation counters. Registered on the default registry and
// served by the gateway's /metrics endpoint.
var (
	BattlesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "battles_started_total",
		Help: "Total number of battles started by road encounters",
	})

	BattlesEnded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "battles_ended_total",
		Help: "Total number of battles ended, by outcome",
	}, []string{"outcome"})

	TurnsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "battle_turns_resolved_total",
		Help: "Total number of battle turns resolved, by action",
	}, []string{"action"})

	MovesRolled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movement_rolls_total",
		Help: "Total number of movement dice rolls",
	})

	ItemsUsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "items_used_total",
		Help: "Total number of items used",
	})
)

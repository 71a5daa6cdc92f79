package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transfersTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "console_transfers_total",
	Help: "Number of student transfers committed through the console.",
})

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recordsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "registro_records_created_total",
		Help: "Total number of records created through the API",
	},
)

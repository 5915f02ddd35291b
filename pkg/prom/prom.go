package prom

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	xhttp "github.com/wingman/logbook/pkg/http"
	"github.com/wingman/logbook/pkg/logger"
)

const (
	SystemLedger = "ledger"
)

const (
	MetricCustomersCreated     = "customers_created_total"
	MetricTransactionsRecorded = "transactions_recorded_total"
	MetricAuditEntriesAppended = "audit_entries_appended_total"
)

var createMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var MetricCollectionCounters = make(map[string]prometheus.Counter)
var MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)

var defaultLabels prometheus.Labels

// Create registers the ledger metric set. host and env become constant
// labels on every series.
func Create(host string, env string, nameSpace string) error {
	defaultLabels = make(prometheus.Labels)
	defaultLabels["env"] = env
	defaultLabels["instance"] = host
	namespace = nameSpace
	MetricSystemEnabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounter(SystemLedger, MetricCustomersCreated))
	hasError(createCounter(SystemLedger, MetricTransactionsRecorded))
	hasError(createCounterVec(SystemLedger, MetricAuditEntriesAppended, []string{"table"}))

	return err
}

func createCounter(subsystem, name string) error {
	createMetricLock.Lock()
	defer createMetricLock.Unlock()

	key := metricKey(subsystem, name)
	if _, ok := MetricCollectionCounters[key]; ok {
		return nil
	}

	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
	})
	if err := prometheus.Register(c); err != nil {
		return err
	}
	MetricCollectionCounters[key] = c
	return nil
}

func createCounterVec(subsystem, name string, labels []string) error {
	createMetricLock.Lock()
	defer createMetricLock.Unlock()

	key := metricKey(subsystem, name)
	if _, ok := MetricCollectionCounterVec[key]; ok {
		return nil
	}

	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
	}, labels)
	if err := prometheus.Register(c); err != nil {
		return err
	}
	MetricCollectionCounterVec[key] = c
	return nil
}

// IncrementCounter is a no-op until Create has been called, so callers
// never need to guard on MetricSystemEnabled themselves.
func IncrementCounter(subsystem, name string) {
	if !MetricSystemEnabled {
		return
	}
	if c, ok := MetricCollectionCounters[metricKey(subsystem, name)]; ok {
		c.Inc()
	}
}

func IncrementCounterVec(subsystem, name string, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if c, ok := MetricCollectionCounterVec[metricKey(subsystem, name)]; ok {
		c.WithLabelValues(labelValues...).Inc()
	}
}

func metricKey(subsystem, name string) string {
	return fmt.Sprintf("%s_%s", subsystem, name)
}

// ListenAndServe exposes the registry on its own listener.
func ListenAndServe(addr string, uri string) {
	hh := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s := xhttp.CreateServer()
	s.Router.GET(uri, func(ctx *xhttp.RequestCtx) {
		hh(ctx)
	})
	go func() {
		if err := s.ListenAndServe(addr); err != nil {
			logger.Error("[prom] metrics listener stopped", "error", err)
		}
	}()
}

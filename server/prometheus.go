package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const promNamespace = "sysdeck"

func (s *Server) registerPrometheus(mux *http.ServeMux) {
	registry := prometheus.NewRegistry()

	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: promNamespace,
			Subsystem: "ws",
			Name:      "active_connections",
			Help:      "Current number of active WebSocket clients.",
		}, func() float64 {
			return float64(s.wsActive.Load())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: promNamespace,
			Subsystem: "ws",
			Name:      "connections_total",
			Help:      "Total WebSocket connections accepted since start.",
		}, func() float64 {
			return float64(s.wsTotal.Load())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: promNamespace,
			Subsystem: "ws",
			Name:      "rejected_total",
			Help:      "Total WebSocket connection attempts rejected due to capacity.",
		}, func() float64 {
			return float64(s.wsRejected.Load())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: promNamespace,
			Subsystem: "ws",
			Name:      "messages_sent_total",
			Help:      "Total WebSocket messages sent to clients.",
		}, func() float64 {
			return float64(s.wsSent.Load())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: promNamespace,
			Subsystem: "ws",
			Name:      "messages_dropped_total",
			Help:      "Total WebSocket messages dropped due to backpressure.",
		}, func() float64 {
			return float64(s.wsDropped.Load())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: promNamespace,
			Name:      "polls_total",
			Help:      "Total snapshot polls completed since start.",
		}, func() float64 {
			return float64(s.poller.Polls())
		}),
		newSnapshotCollector(s.poller),
	}

	for _, collector := range collectors {
		registry.MustRegister(collector)
	}

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}

// snapshotCollector exports the latest snapshot's telemetry as gauges.
// Values are read at scrape time from the poller cache; no extra polling
// happens on scrape.
type snapshotCollector struct {
	poller *Poller

	cpuUsage     *prometheus.Desc
	memUsage     *prometheus.Desc
	memUsedGB    *prometheus.Desc
	memTotalGB   *prometheus.Desc
	diskUsage    *prometheus.Desc
	diskFreeGB   *prometheus.Desc
	gpuUsage     *prometheus.Desc
	gpuTempC     *prometheus.Desc
	netSignal    *prometheus.Desc
	netConnected *prometheus.Desc
	load1        *prometheus.Desc
	uptime       *prometheus.Desc
	warnings     *prometheus.Desc
	age          *prometheus.Desc
}

func newSnapshotCollector(poller *Poller) *snapshotCollector {
	ns := promNamespace
	return &snapshotCollector{
		poller: poller,
		cpuUsage: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "cpu", "usage_percent"),
			"CPU usage from differential tick accounting, 0-100.", nil, nil),
		memUsage: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "memory", "usage_percent"),
			"Physical memory usage, 0-100.", nil, nil),
		memUsedGB: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "memory", "used_gb"),
			"Physical memory in use, gibibytes.", nil, nil),
		memTotalGB: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "memory", "total_gb"),
			"Physical memory installed, gibibytes.", nil, nil),
		diskUsage: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "disk", "usage_percent"),
			"Primary volume usage, 0-100.",
			[]string{"volume"}, nil),
		diskFreeGB: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "disk", "free_gb"),
			"Primary volume free space, gibibytes.",
			[]string{"volume"}, nil),
		gpuUsage: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "gpu", "simulated_usage_percent"),
			"Simulated GPU utilization; no sensor is read.",
			[]string{"gpu"}, nil),
		gpuTempC: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "gpu", "simulated_temperature_celsius"),
			"Simulated GPU temperature; no sensor is read.",
			[]string{"gpu"}, nil),
		netSignal: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "network", "signal_percent"),
			"Wireless signal strength, 0-100.",
			[]string{"label"}, nil),
		netConnected: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "network", "connected"),
			"1 when an active connection exists.", nil, nil),
		load1: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "host", "load1"),
			"One minute load average.", nil, nil),
		uptime: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "host", "uptime_seconds"),
			"Host uptime in seconds.", nil, nil),
		warnings: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "snapshot", "warnings"),
			"Number of degraded telemetry categories in the latest snapshot.", nil, nil),
		age: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "snapshot", "age_seconds"),
			"Seconds since the latest snapshot was taken.", nil, nil),
	}
}

func (c *snapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cpuUsage
	ch <- c.memUsage
	ch <- c.memUsedGB
	ch <- c.memTotalGB
	ch <- c.diskUsage
	ch <- c.diskFreeGB
	ch <- c.gpuUsage
	ch <- c.gpuTempC
	ch <- c.netSignal
	ch <- c.netConnected
	ch <- c.load1
	ch <- c.uptime
	ch <- c.warnings
	ch <- c.age
}

func (c *snapshotCollector) Collect(ch chan<- prometheus.Metric) {
	snap, ok := c.poller.Latest()
	if !ok {
		return
	}

	gauge := func(desc *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v, labels...)
	}

	gauge(c.cpuUsage, snap.CPU.UsagePercent)
	gauge(c.memUsage, snap.Memory.UsagePercent)
	gauge(c.memUsedGB, snap.Memory.UsedGB)
	gauge(c.memTotalGB, snap.Memory.TotalGB)
	gauge(c.diskUsage, snap.Storage.UsagePercent, snap.Storage.Volume)
	gauge(c.diskFreeGB, snap.Storage.FreeGB, snap.Storage.Volume)
	gauge(c.gpuUsage, snap.GPU.SimulatedUsagePercent, snap.GPU.Name)
	gauge(c.gpuTempC, snap.GPU.SimulatedTemperatureC, snap.GPU.Name)
	gauge(c.netSignal, float64(snap.Network.SignalPercent), snap.Network.Label)

	connected := 0.0
	if snap.Network.Connected {
		connected = 1
	}
	gauge(c.netConnected, connected)
	gauge(c.load1, snap.Host.Load1)
	gauge(c.uptime, float64(snap.Host.UptimeSeconds))
	gauge(c.warnings, float64(len(snap.Warnings)))
	gauge(c.age, time.Since(snap.Timestamp).Seconds())
}

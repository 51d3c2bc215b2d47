// Package metrics exposes Prometheus instruments for Monte Carlo
// percolation runs: trial counts, opened sites, random draws and the
// distribution of observed thresholds.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metric names.
const (
	nameTrials      = "percolath_trials_total"
	nameSitesOpened = "percolath_sites_opened_total"
	nameDraws       = "percolath_trial_draws_total"
	nameThreshold   = "percolath_threshold"
)

// thresholdBuckets splits [0,1] into steps of 0.05.
var thresholdBuckets = prometheus.LinearBuckets(0.05, 0.05, 20)

// Collector bundles the simulation metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Trials      prometheus.Counter
	SitesOpened prometheus.Counter
	Draws       prometheus.Counter
	Threshold   prometheus.Histogram
}

// NewCollector registers the simulation metrics against reg, defaulting to
// the global Prometheus registry when reg is nil. Registering twice against
// the same registry returns the already registered instruments.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	trials, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: nameTrials,
		Help: "Total number of completed percolation trials.",
	}), nameTrials)
	if err != nil {
		return nil, err
	}
	opened, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: nameSitesOpened,
		Help: "Total number of distinct sites opened across all trials.",
	}), nameSitesOpened)
	if err != nil {
		return nil, err
	}
	draws, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: nameDraws,
		Help: "Total number of random site draws, including draws of already open sites.",
	}), nameDraws)
	if err != nil {
		return nil, err
	}
	threshold, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    nameThreshold,
		Help:    "Fraction of open sites at the moment each trial first percolated.",
		Buckets: thresholdBuckets,
	}), nameThreshold)
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:    gatherer,
		Trials:      trials,
		SitesOpened: opened,
		Draws:       draws,
		Threshold:   threshold,
	}, nil
}

// ObserveTrial records one completed trial.
func (c *Collector) ObserveTrial(opened, draws int, threshold float64) {
	if c == nil {
		return
	}
	c.Trials.Inc()
	c.SitesOpened.Add(float64(opened))
	c.Draws.Add(float64(draws))
	c.Threshold.Observe(threshold)
}

// WriteText gathers every metric known to the collector's registry and
// writes it to w in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

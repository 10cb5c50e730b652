// Package summary computes the dashboard aggregate view. Every call
// recomputes from scratch over one snapshot of the store; there is no
// incremental state.
package summary

import (
	"math"
	"sort"
	"time"

	"github.com/ridayanti/sensor-monitor/internal/domain"
)

// Store is the read side the engine needs: one logical full-set read.
type Store interface {
	All() ([]domain.Reading, error)
}

const (
	topExtremes  = 2
	recentMonths = 2
)

type Engine struct {
	store Store
}

func New(store Store) *Engine { return &Engine{store: store} }

// Summarize builds the summary from a single snapshot. An empty store
// yields nil scalars and empty lists, never an error.
func (e *Engine) Summarize() (domain.Summary, error) {
	readings, err := e.store.All()
	if err != nil {
		return domain.Summary{}, err
	}

	out := domain.Summary{
		TopReadings:  rankExtremes(readings),
		RecentMonths: bucketMonths(readings),
	}
	out.TempMax, out.TempMin, out.TempMean = stats(readings, func(r domain.Reading) float64 { return r.Temperature })
	out.HumidMax, out.HumidMin, out.HumidMean = stats(readings, func(r domain.Reading) float64 { return r.Humidity })
	return out, nil
}

func stats(readings []domain.Reading, field func(domain.Reading) float64) (max, min, mean *float64) {
	if len(readings) == 0 {
		return nil, nil, nil
	}
	hi, lo, sum := field(readings[0]), field(readings[0]), 0.0
	for _, r := range readings {
		v := field(r)
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
		sum += v
	}
	return round2(hi), round2(lo), round2(sum / float64(len(readings)))
}

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}

// rankExtremes returns the top readings by temperature, ties broken by
// higher humidity.
func rankExtremes(readings []domain.Reading) []domain.TopReading {
	ranked := make([]domain.Reading, len(readings))
	copy(ranked, readings)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Temperature != ranked[j].Temperature {
			return ranked[i].Temperature > ranked[j].Temperature
		}
		return ranked[i].Humidity > ranked[j].Humidity
	})
	if len(ranked) > topExtremes {
		ranked = ranked[:topExtremes]
	}

	out := make([]domain.TopReading, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, domain.TopReading{
			ID:          r.ID,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Lux:         r.Lux,
			Timestamp:   r.CapturedAt.Format(domain.TimeLayout),
		})
	}
	return out
}

// bucketMonths groups readings by calendar month of capture and returns
// the labels of the most recently active months, newest first. Activity
// is the maximum captured_at within the month, so a month with one late
// reading outranks a busier but older month.
func bucketMonths(readings []domain.Reading) []domain.MonthBucket {
	latest := make(map[string]time.Time)
	for _, r := range readings {
		label := r.CapturedAt.Format(domain.MonthLayout)
		if t, ok := latest[label]; !ok || r.CapturedAt.After(t) {
			latest[label] = r.CapturedAt
		}
	}

	labels := make([]string, 0, len(latest))
	for label := range latest {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return latest[labels[i]].After(latest[labels[j]])
	})
	if len(labels) > recentMonths {
		labels = labels[:recentMonths]
	}

	out := make([]domain.MonthBucket, 0, len(labels))
	for _, label := range labels {
		out = append(out, domain.MonthBucket{MonthYear: label})
	}
	return out
}

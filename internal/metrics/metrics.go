package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	LootboxOpens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootboxOpens,
			Help: HelpTextLootboxOpens,
		},
		[]string{LabelBox},
	)

	LootboxItemsWon = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootboxItemsWon,
			Help: HelpTextLootboxItemsWon,
		},
		[]string{LabelType},
	)

	BonusPointsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusPointsCredited,
			Help: HelpTextBonusPointsCredited,
		},
	)

	PromoCodesApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePromoCodesApplied,
			Help: HelpTextPromoCodesApplied,
		},
		[]string{LabelCode},
	)

	GiftsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiftsCreated,
			Help: HelpTextGiftsCreated,
		},
	)

	GiftsRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiftsRedeemed,
			Help: HelpTextGiftsRedeemed,
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelType, LabelResult},
	)
)

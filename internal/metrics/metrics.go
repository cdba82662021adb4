// Package metrics holds the Prometheus collectors for the transcription and report pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusEmpty   = "empty"
)

var (
	// AudioChunksTotal counts chunks sent to the transcription backend
	// Labels: status (success/error/empty)
	AudioChunksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careapi_audio_chunks_total",
			Help: "Total number of audio chunks transcribed",
		},
		[]string{"status"},
	)

	// TranscriptionsTotal counts whole transcription requests
	TranscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careapi_transcriptions_total",
			Help: "Total number of transcription requests by outcome",
		},
		[]string{"status"},
	)

	// ReportsTotal counts generated documents
	// Labels: kind (journal/weekly), status (success/error)
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careapi_reports_total",
			Help: "Total number of generated reports by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	// PublishTotal counts object uploads
	// Labels: asset (docx/pdf), status (success/error)
	PublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careapi_publish_total",
			Help: "Total number of asset uploads by asset type and outcome",
		},
		[]string{"asset", "status"},
	)

	// StageDuration tracks pipeline stage latency
	// Labels: stage (decode/transcribe_chunk/narrative/render/convert/publish)
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careapi_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"stage"},
	)
)

func status(success bool) string {
	if success {
		return StatusSuccess
	}
	return StatusError
}

// RecordChunk records one backend call for a chunk
func RecordChunk(st string) {
	AudioChunksTotal.WithLabelValues(st).Inc()
}

// RecordTranscription records the outcome of a transcription request
func RecordTranscription(st string) {
	TranscriptionsTotal.WithLabelValues(st).Inc()
}

// RecordReport records a generated report
func RecordReport(kind string, success bool) {
	ReportsTotal.WithLabelValues(kind, status(success)).Inc()
}

// RecordPublish records one upload
func RecordPublish(asset string, success bool) {
	PublishTotal.WithLabelValues(asset, status(success)).Inc()
}

// ObserveStage records the time elapsed since start for a stage
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

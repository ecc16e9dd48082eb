// Package metrics exposes dataset loading and training progress as
// Prometheus metrics.
package metrics

import "net/http"
import "time"

import "github.com/prometheus/client_golang/prometheus"
import "github.com/prometheus/client_golang/prometheus/promauto"
import "github.com/prometheus/client_golang/prometheus/promhttp"
import "github.com/sirupsen/logrus"

import "github.com/neurlang/emotion/trainer"

// Metrics contains all Prometheus metrics of a training run
type Metrics struct {
	// Dataset metrics
	Loads        prometheus.Counter
	LoadErrors   prometheus.Counter
	LoadDuration prometheus.Histogram

	// Training metrics
	Batches       prometheus.Counter
	BatchLoss     prometheus.Gauge
	Epochs        prometheus.Counter
	EpochLoss     prometheus.Gauge
	EpochAccuracy prometheus.Gauge

	// Evaluation metrics, labelled by split
	EvalAccuracy *prometheus.GaugeVec
	EvalLoss     *prometheus.GaugeVec
}

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Loads: f.NewCounter(prometheus.CounterOpts{
			Name: "emotion_dataset_loads_total",
			Help: "Total number of dataset items loaded and featurized",
		}),
		LoadErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "emotion_dataset_load_errors_total",
			Help: "Total number of dataset items which failed to load",
		}),
		LoadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "emotion_dataset_load_duration_seconds",
			Help:    "Time spent decoding and featurizing one item",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}),

		Batches: f.NewCounter(prometheus.CounterOpts{
			Name: "emotion_train_batches_total",
			Help: "Total number of optimizer steps",
		}),
		BatchLoss: f.NewGauge(prometheus.GaugeOpts{
			Name: "emotion_train_batch_loss",
			Help: "Mean loss of the last training batch",
		}),
		Epochs: f.NewCounter(prometheus.CounterOpts{
			Name: "emotion_train_epochs_total",
			Help: "Total number of finished epochs",
		}),
		EpochLoss: f.NewGauge(prometheus.GaugeOpts{
			Name: "emotion_train_epoch_loss",
			Help: "Mean batch loss of the last epoch",
		}),
		EpochAccuracy: f.NewGauge(prometheus.GaugeOpts{
			Name: "emotion_train_epoch_accuracy",
			Help: "Training accuracy of the last epoch, between 0 and 1",
		}),

		EvalAccuracy: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "emotion_eval_accuracy_percent",
			Help: "Accuracy of the last evaluation in percent",
		}, []string{"split"}),
		EvalLoss: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "emotion_eval_loss",
			Help: "Summed batch loss of the last evaluation",
		}, []string{"split"}),
	}
}

// ObserveLoad records one dataset item load
func (m *Metrics) ObserveLoad(elapsed time.Duration, err error) {
	m.Loads.Inc()
	if err != nil {
		m.LoadErrors.Inc()
	}
	m.LoadDuration.Observe(elapsed.Seconds())
}

// ObserveBatch records one optimizer step
func (m *Metrics) ObserveBatch(epoch, batch int, loss float64) {
	m.Batches.Inc()
	m.BatchLoss.Set(loss)
}

// ObserveEpoch records a finished epoch
func (m *Metrics) ObserveEpoch(epoch int, loss, accuracy float64) {
	m.Epochs.Inc()
	m.EpochLoss.Set(loss)
	m.EpochAccuracy.Set(accuracy)
}

// ObserveEvaluation records an evaluation result
func (m *Metrics) ObserveEvaluation(split string, r trainer.Result) {
	m.EvalAccuracy.WithLabelValues(split).Set(r.Accuracy)
	m.EvalLoss.WithLabelValues(split).Set(r.Loss)
}

// Serve exposes g on addr under /metrics. The returned server is already
// listening in the background; close it when done.
func Serve(addr string, g prometheus.Gatherer, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("metrics server")
		}
	}()
	return srv
}

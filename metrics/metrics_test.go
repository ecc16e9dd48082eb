package metrics

import "errors"
import "io"
import "net/http/httptest"
import "strings"
import "testing"
import "time"

import "github.com/prometheus/client_golang/prometheus"
import "github.com/prometheus/client_golang/prometheus/promhttp"
import "github.com/prometheus/client_golang/prometheus/testutil"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/emotion/datasets/ravdess"
import "github.com/neurlang/emotion/trainer"

var _ ravdess.Observer = (*Metrics)(nil)
var _ trainer.Observer = (*Metrics)(nil)

func TestObserveLoad(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveLoad(5*time.Millisecond, nil)
	m.ObserveLoad(time.Millisecond, errors.New("broken"))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Loads))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadErrors))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LoadDuration))
}

func TestObserveTraining(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveBatch(0, 0, 2.5)
	m.ObserveBatch(0, 1, 1.5)
	m.ObserveEpoch(0, 2, 0.25)
	m.ObserveEvaluation("valid", trainer.Result{Accuracy: 40, Loss: 3})
	m.ObserveEvaluation("test", trainer.Result{Accuracy: 35, Loss: 4})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Batches))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.BatchLoss))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Epochs))
	assert.Equal(t, 0.25, testutil.ToFloat64(m.EpochAccuracy))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.EvalAccuracy.WithLabelValues("valid")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.EvalLoss.WithLabelValues("test")))
}

func TestExposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveEpoch(3, 1, 0.5)

	srv := httptest.NewServer(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "emotion_train_epoch_accuracy 0.5")

	expected := `
# HELP emotion_train_epochs_total Total number of finished epochs
# TYPE emotion_train_epochs_total counter
emotion_train_epochs_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "emotion_train_epochs_total"))
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

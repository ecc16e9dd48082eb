package main

import "context"
import "fmt"
import "os"
import "os/signal"
import "syscall"

import "github.com/google/uuid"
import "github.com/pkg/errors"
import "github.com/prometheus/client_golang/prometheus"
import "github.com/sirupsen/logrus"
import "github.com/spf13/cobra"

import "github.com/neurlang/emotion/config"
import "github.com/neurlang/emotion/datasets"
import "github.com/neurlang/emotion/datasets/ravdess"
import "github.com/neurlang/emotion/loss"
import "github.com/neurlang/emotion/metrics"
import "github.com/neurlang/emotion/net/feedforward"
import "github.com/neurlang/emotion/optimizer"
import "github.com/neurlang/emotion/parallel"
import "github.com/neurlang/emotion/trainer"

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "train_emotion",
		Short:         "Train the RAVDESS emotion classifier and report its test accuracy",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := config.NewLogger(cfg.Logging)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log.WithField("run", uuid.New().String()))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.String("root", "../dataset_resample", "dataset root directory")
	flags.String("ext", "wav", "audio file extension")
	flags.String("manifest", "", "split manifest written by split_emotion, replaces splitting root")
	flags.Float64("test-size", 0.2, "held out fraction, bisected into validation and test")
	flags.Int64("seed", 42, "split seed")
	flags.Bool("weighted", false, "keep the share of every emotion in each list")
	flags.Int("epochs", 40, "training epochs")
	flags.Int("batch-size", 128, "batch size")
	flags.Float64("lr", 0.001, "learning rate")
	flags.String("optimizer", "SGD", "SGD or Adam")
	flags.Int("threads", 0, "goroutines per batch, 0 means logical cores")
	flags.String("dstmodel", "", "model destination .json.lzw file")
	flags.Bool("resume", false, "resume training from dstmodel")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address")
	flags.Bool("progress", false, "draw a progress bar")
	flags.Bool("pgo", false, "enable pgo")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "text", "text or json")

	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("train_emotion failed")
		os.Exit(1)
	}
}

func manifest(d config.DatasetConfig) (*datasets.Manifest, error) {
	if d.Manifest != "" {
		return datasets.ReadManifest(d.Manifest)
	}
	return ravdess.SplitDir(d.Root, d.Extension, d.TestSize, d.Seed, d.Weighted)
}

func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	if cfg.Feature.AudioDuration <= 0 {
		return errors.New("training needs a fixed audio_duration")
	}
	m, err := manifest(cfg.Dataset)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"train": len(m.Train),
		"valid": len(m.Valid),
		"test":  len(m.Test),
	}).Info("dataset split")
	if len(m.Train) == 0 {
		return errors.New("no training files")
	}

	reg := prometheus.NewRegistry()
	mets := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		srv := metrics.Serve(cfg.Metrics.Addr, reg, log)
		defer srv.Close()
	}

	loader := func(files []string, shuffle bool) (*parallel.Loader, *ravdess.Dataset, error) {
		ds, err := ravdess.NewDataset(files, cfg.Feature)
		if err != nil {
			return nil, nil, err
		}
		ds.SetObserver(mets)
		l := parallel.NewLoader(ds, cfg.Train.BatchSize, shuffle, cfg.Train.Seed)
		l.SetWorkers(cfg.Train.Workers)
		return l, ds, nil
	}
	train, trainDS, err := loader(m.Train, true)
	if err != nil {
		return err
	}
	valid, _, err := loader(m.Valid, false)
	if err != nil {
		return err
	}
	test, _, err := loader(m.Test, false)
	if err != nil {
		return err
	}

	first, err := trainDS.Get(0)
	if err != nil {
		return err
	}
	net, err := feedforward.NewVanillaCNN(first.Feature.Bins, first.Feature.Frames, ravdess.Classes, cfg.Train.Seed)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"bins":    first.Feature.Bins,
		"frames":  first.Feature.Frames,
		"weights": net.Len(),
	}).Info("network created")
	if err := trainer.Resume(net, cfg.Train.Resume, cfg.Train.DstModel, log); err != nil {
		return err
	}

	lossFunc, err := loss.Choose(cfg.Train.Loss)
	if err != nil {
		return err
	}
	opt, err := optimizer.Choose(cfg.Train.Optimizer, net.Params(), cfg.Train.Options)
	if err != nil {
		return err
	}

	threads := cfg.Train.Threads
	if threads == 0 {
		threads = parallel.Workers()
	}
	observers := trainer.Observers{mets}
	var bar *progress
	if cfg.Train.Progress {
		bar = newProgress(cfg.Train.Epochs, train.Batches())
		observers = append(observers, bar)
	}
	t := &trainer.Trainer{
		Net:       net,
		Loss:      lossFunc,
		Optimizer: opt,
		Epochs:    cfg.Train.Epochs,
		LogEvery:  cfg.Train.LogEvery,
		Threads:   threads,
		Log:       log,
		Observer:  observers,
	}
	err = t.Train(ctx, train, valid)
	if bar != nil {
		bar.Wait()
	}
	if err != nil {
		return err
	}

	if cfg.Train.DstModel != "" {
		if err := net.WriteCompressedWeightsToFile(cfg.Train.DstModel); err != nil {
			return err
		}
		log.WithField("model", cfg.Train.DstModel).Info("model saved")
	}

	if test.Len() == 0 {
		log.Warn("no test files")
		return nil
	}
	r, err := trainer.Evaluate(ctx, net, test, lossFunc, threads)
	if err != nil {
		return errors.Wrap(err, "test")
	}
	mets.ObserveEvaluation("test", r)
	fmt.Printf("Accuracy of the network by test images: %d %%\n", int(r.Accuracy))
	fmt.Printf("loss : %d\n", int(r.Loss))
	log.WithField("fingerprint", r.Fingerprint).Debugf("confusion:\n%s", r.Confusion)
	return nil
}

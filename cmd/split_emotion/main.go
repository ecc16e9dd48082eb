package main

import "os"

import "github.com/sirupsen/logrus"
import "github.com/spf13/cobra"

import "github.com/neurlang/emotion/config"
import "github.com/neurlang/emotion/datasets/ravdess"

func main() {
	var configPath, out string

	cmd := &cobra.Command{
		Use:           "split_emotion",
		Short:         "Split RAVDESS audio files into train, validation and test lists",
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
			d := cfg.Dataset
			m, err := ravdess.SplitDir(d.Root, d.Extension, d.TestSize, d.Seed, d.Weighted)
			if err != nil {
				return err
			}
			if err := m.WriteFile(out); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"train": len(m.Train),
				"valid": len(m.Valid),
				"test":  len(m.Test),
				"out":   out,
			}).Info("split written")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVar(&out, "out", "split.yaml", "manifest destination .yaml file")
	flags.String("root", "../dataset_resample", "dataset root directory")
	flags.String("ext", "wav", "audio file extension")
	flags.Float64("test-size", 0.2, "held out fraction, bisected into validation and test")
	flags.Int64("seed", 42, "split seed")
	flags.Bool("weighted", false, "keep the share of every emotion in each list")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "text", "text or json")

	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("split_emotion failed")
		os.Exit(1)
	}
}

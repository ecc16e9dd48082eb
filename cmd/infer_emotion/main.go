package main

import "fmt"
import "os"

import "github.com/pkg/errors"
import "github.com/sirupsen/logrus"
import "github.com/spf13/cobra"

import "github.com/neurlang/emotion/config"
import "github.com/neurlang/emotion/datasets/ravdess"
import "github.com/neurlang/emotion/feature"
import "github.com/neurlang/emotion/loss"
import "github.com/neurlang/emotion/net/feedforward"

func main() {
	var configPath, model string

	cmd := &cobra.Command{
		Use:           "infer_emotion --model FILE FILE...",
		Short:         "Classify the emotion of audio files",
		Args:          cobra.MinimumNArgs(1),
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
			return infer(cfg, model, args, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVar(&model, "model", "", "model .json.lzw file")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "text", "text or json")
	_ = cmd.MarkFlagRequired("model")

	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("infer_emotion failed")
		os.Exit(1)
	}
}

func infer(cfg *config.Config, model string, files []string, log logrus.FieldLogger) error {
	if cfg.Feature.AudioDuration <= 0 {
		return errors.New("inference needs the fixed audio_duration of training")
	}
	var net *feedforward.FeedforwardNetwork
	for _, name := range files {
		spec, err := feature.ExtractFile(cfg.Feature, name)
		if err != nil {
			return err
		}
		if net == nil {
			net, err = feedforward.NewVanillaCNN(spec.Bins, spec.Frames, ravdess.Classes, 0)
			if err != nil {
				return err
			}
			if err := net.ReadCompressedWeightsFromFile(model); err != nil {
				return errors.Wrapf(err, "load model %s", model)
			}
		}
		if in, _ := net.Sizes(); len(spec.Data) != in {
			return errors.Errorf("%s has %dx%d features, model takes %d values", name, spec.Bins, spec.Frames, in)
		}
		probs := loss.Softmax(net.Infer(spec.Data))
		class := loss.Argmax(probs)
		line := fmt.Sprintf("%s\t%s\t%.3f", name, ravdess.EmotionName(class), probs[class])
		if code, err := ravdess.Emotion(name); err == nil {
			if want, err := ravdess.EmotionClass(code); err == nil {
				line += "\t" + ravdess.EmotionName(want)
			}
		} else {
			log.WithField("file", name).Debug("no emotion in file name")
		}
		fmt.Println(line)
	}
	return nil
}

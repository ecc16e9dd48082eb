// Package config loads the layered configuration of the emotion commands:
// defaults, an optional YAML file, EMOTION_* environment variables and
// command line flags, in increasing precedence.
package config

import "strings"

import "github.com/pkg/errors"
import "github.com/spf13/pflag"
import "github.com/spf13/viper"

import "github.com/neurlang/emotion/feature"
import "github.com/neurlang/emotion/loss"
import "github.com/neurlang/emotion/optimizer"

// Config represents the complete configuration
type Config struct {
	Dataset DatasetConfig  `mapstructure:"dataset" yaml:"dataset"`
	Feature feature.Config `mapstructure:"feature" yaml:"feature"`
	Train   TrainConfig    `mapstructure:"train" yaml:"train"`
	Metrics MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
	Logging LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// DatasetConfig locates the audio files and describes how they are split
type DatasetConfig struct {
	Root      string  `mapstructure:"root" yaml:"root"`
	Extension string  `mapstructure:"ext" yaml:"ext"`
	Manifest  string  `mapstructure:"manifest" yaml:"manifest"`
	TestSize  float64 `mapstructure:"test_size" yaml:"test_size"`
	Seed      int64   `mapstructure:"seed" yaml:"seed"`
	Weighted  bool    `mapstructure:"weighted" yaml:"weighted"`
}

// TrainConfig contains the training loop parameters
type TrainConfig struct {
	Epochs    int    `mapstructure:"epochs" yaml:"epochs"`
	BatchSize int    `mapstructure:"batch_size" yaml:"batch_size"`
	LogEvery  int    `mapstructure:"log_every" yaml:"log_every"`
	Threads   int    `mapstructure:"threads" yaml:"threads"`   // 0 means logical cores
	Workers   int    `mapstructure:"workers" yaml:"workers"`   // 0 means logical cores
	Seed      int64  `mapstructure:"seed" yaml:"seed"`
	Loss      string `mapstructure:"loss" yaml:"loss"`
	Optimizer string `mapstructure:"optimizer" yaml:"optimizer"`
	DstModel  string `mapstructure:"dstmodel" yaml:"dstmodel"`
	Resume    bool   `mapstructure:"resume" yaml:"resume"`
	Progress  bool   `mapstructure:"progress" yaml:"progress"`

	optimizer.Options `mapstructure:",squash" yaml:",inline"`
}

// MetricsConfig contains the Prometheus endpoint configuration
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"` // empty disables the endpoint
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Flags maps command line flag names onto configuration keys. Load binds
// the flags of this table which the command defines.
var Flags = map[string]string{
	"root":         "dataset.root",
	"ext":          "dataset.ext",
	"manifest":     "dataset.manifest",
	"test-size":    "dataset.test_size",
	"seed":         "dataset.seed",
	"weighted":     "dataset.weighted",
	"epochs":       "train.epochs",
	"batch-size":   "train.batch_size",
	"lr":           "train.lr",
	"optimizer":    "train.optimizer",
	"dstmodel":     "train.dstmodel",
	"resume":       "train.resume",
	"progress":     "train.progress",
	"threads":      "train.threads",
	"metrics-addr": "metrics.addr",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.root", "../dataset_resample")
	v.SetDefault("dataset.ext", "wav")
	v.SetDefault("dataset.manifest", "")
	v.SetDefault("dataset.test_size", 0.2)
	v.SetDefault("dataset.seed", 42)
	v.SetDefault("dataset.weighted", false)

	f := feature.NewConfig()
	v.SetDefault("feature.spectrogram_type", f.SpectrogramType)
	v.SetDefault("feature.n_fft", f.NFFT)
	v.SetDefault("feature.window_size", f.WindowSize)
	v.SetDefault("feature.window_stride", f.WindowStride)
	v.SetDefault("feature.n_mels", f.NMels)
	v.SetDefault("feature.mel_fmin", f.MelFmin)
	v.SetDefault("feature.mel_fmax", f.MelFmax)
	v.SetDefault("feature.audio_duration", f.AudioDuration)

	o := optimizer.DefaultOptions()
	v.SetDefault("train.epochs", 40)
	v.SetDefault("train.batch_size", 128)
	v.SetDefault("train.log_every", 20)
	v.SetDefault("train.threads", 0)
	v.SetDefault("train.workers", 0)
	v.SetDefault("train.seed", 1)
	v.SetDefault("train.loss", "CrossEntropyLoss")
	v.SetDefault("train.optimizer", "SGD")
	v.SetDefault("train.dstmodel", "")
	v.SetDefault("train.resume", false)
	v.SetDefault("train.progress", false)
	v.SetDefault("train.lr", o.LearningRate)
	v.SetDefault("train.momentum", o.Momentum)
	v.SetDefault("train.weight_decay", o.WeightDecay)
	v.SetDefault("train.beta1", o.Beta1)
	v.SetDefault("train.beta2", o.Beta2)
	v.SetDefault("train.epsilon", o.Epsilon)

	v.SetDefault("metrics.addr", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Load reads the configuration. Path may be empty, flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("EMOTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	if flags != nil {
		for name, key := range Flags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &c, nil
}

// Validate performs validation of the configuration
func (c *Config) Validate() error {
	if err := c.Dataset.Validate(); err != nil {
		return errors.Wrap(err, "dataset config")
	}
	if err := c.Feature.Validate(); err != nil {
		return errors.Wrap(err, "feature config")
	}
	if err := c.Train.Validate(); err != nil {
		return errors.Wrap(err, "train config")
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "logging config")
	}
	return nil
}

// Validate validates dataset configuration
func (d *DatasetConfig) Validate() error {
	if d.Manifest == "" && d.Root == "" {
		return errors.New("root cannot be empty without a manifest")
	}
	if d.Extension == "" {
		return errors.New("ext cannot be empty")
	}
	if d.TestSize <= 0 || d.TestSize >= 1 {
		return errors.Errorf("test_size must be between 0 and 1 (exclusive), got %v", d.TestSize)
	}
	return nil
}

// Validate validates training configuration
func (t *TrainConfig) Validate() error {
	if t.Epochs < 0 {
		return errors.Errorf("epochs cannot be negative, got %d", t.Epochs)
	}
	if t.BatchSize < 1 {
		return errors.Errorf("batch_size must be at least 1, got %d", t.BatchSize)
	}
	if t.LogEvery < 1 {
		return errors.Errorf("log_every must be at least 1, got %d", t.LogEvery)
	}
	if t.Threads < 0 || t.Workers < 0 {
		return errors.Errorf("threads and workers cannot be negative, got %d and %d", t.Threads, t.Workers)
	}
	if t.Resume && t.DstModel == "" {
		return errors.New("resume needs dstmodel")
	}
	if _, err := loss.Choose(t.Loss); err != nil {
		return err
	}
	if _, err := optimizer.Choose(t.Optimizer, nil, t.Options); err != nil {
		return err
	}
	return nil
}

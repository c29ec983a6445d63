package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"

	"github.com/skillcoder/autoscale-bootstrap/internal/infra/cronparser"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

type Config struct {
	// Workload parameters. Name and Image come from flags only.
	Name      string
	Image     string
	Namespace string `env:"NAMESPACE" envDefault:"default"`
	Replicas  int32  `env:"REPLICAS" envDefault:"2"`
	DryRun    bool   `env:"DRY_RUN"`

	KubeConfig string `env:"KUBECONFIG"`
	KubeMaster string `env:"KUBE_MASTER"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	HelmBinary string `env:"HELM_BINARY" envDefault:"helm"`

	KedaNamespace        string `env:"KEDA_NAMESPACE" envDefault:"keda"`
	KedaRelease          string `env:"KEDA_RELEASE" envDefault:"keda"`
	KedaChart            string `env:"KEDA_CHART" envDefault:"kedacore/keda"`
	KedaRepoName         string `env:"KEDA_REPO_NAME" envDefault:"kedacore"`
	KedaRepoURL          string `env:"KEDA_REPO_URL" envDefault:"https://kedacore.github.io/charts"`
	KedaPodLabelSelector string `env:"KEDA_POD_LABEL_SELECTOR" envDefault:"app.kubernetes.io/instance=keda"`

	PodWaitTimeout  time.Duration `env:"POD_WAIT_TIMEOUT" envDefault:"300s"`
	PodPollInterval time.Duration `env:"POD_POLL_INTERVAL" envDefault:"10s"`

	// HTTPPort enables the status server when set.
	HTTPPort string `env:"HTTP_PORT"`
	// Schedule re-runs the bootstrap on a cron schedule instead of once.
	Schedule   string `env:"SCHEDULE"`
	ScheduleTZ string `env:"SCHEDULE_TZ"`
	// MetricsTextfile is written after each run, for node-exporter textfile collection.
	MetricsTextfile string `env:"METRICS_TEXTFILE"`
}

// Load reads the configuration from the environment. Flags bound with BindFlags
// override the loaded values when parsed afterwards.
func Load() (*Config, error) {
	cfg := &Config{}

	err := env.Parse(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.KubeConfig == "" {
		cfg.KubeConfig = os.Getenv(envKeyKubeConfigFallback)
	}

	if cfg.KubeMaster == "" {
		cfg.KubeMaster = os.Getenv(envKeyKubeMasterFallback)
	}

	return cfg, nil
}

// BindFlags registers the command line flags with the loaded values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Image, "image", c.Image, "container image of the workload (required)")
	fs.StringVar(&c.Name, "name", c.Name, "name of the workload; also prefixes the service and scaled object (required)")
	fs.StringVarP(&c.Namespace, "namespace", "n", c.Namespace, "namespace of the workload")
	fs.Int32Var(&c.Replicas, "replicas", c.Replicas, "initial replica count of the deployment")
	fs.StringVar(&c.KubeConfig, "kubeconfig", c.KubeConfig, "path to the kubeconfig file")
	fs.StringVar(&c.KubeMaster, "master", c.KubeMaster, "kubernetes API server address, overrides the kubeconfig")
	fs.BoolVar(&c.DryRun, "dry-run", c.DryRun, "print the managed objects as YAML and exit without touching the cluster")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json or text")
}

// Validate checks values env parsing cannot. The error wraps bootstrap.ErrInvalidInput.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}

	if strings.TrimSpace(c.Image) == "" {
		errs = append(errs, errors.New("image is required"))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "warning", "error"}, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log level %q: must be debug, info, warn or error", c.LogLevel))
	}

	if !slices.Contains([]string{"json", "text"}, strings.ToLower(c.LogFormat)) {
		errs = append(errs, fmt.Errorf("log format %q: must be json or text", c.LogFormat))
	}

	if c.PodPollInterval < envMinPodPollInterval {
		errs = append(errs, fmt.Errorf("pod poll interval %s: must be at least %s", c.PodPollInterval, envMinPodPollInterval))
	}

	if c.PodWaitTimeout < envMinPodWaitTimeout {
		errs = append(errs, fmt.Errorf("pod wait timeout %s: must be at least %s", c.PodWaitTimeout, envMinPodWaitTimeout))
	}

	if c.HTTPPort != "" {
		port, err := strconv.ParseUint(c.HTTPPort, 10, 16)
		if err != nil || port == 0 {
			errs = append(errs, fmt.Errorf("http port %q: must be in 1..65535", c.HTTPPort))
		}
	}

	if c.Schedule != "" {
		if _, err := cronparser.Parse(c.Schedule, c.ScheduleTZ); err != nil {
			errs = append(errs, fmt.Errorf("schedule: %w", err))
		}
	}

	if c.Schedule == "" && c.ScheduleTZ != "" {
		errs = append(errs, errors.New("schedule tz is set without a schedule"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: config: %w", bootstrap.ErrInvalidInput, errors.Join(errs...))
	}

	return nil
}

// AutoscalerSpec returns the autoscaling controller release described by the config.
func (c *Config) AutoscalerSpec() bootstrap.AutoscalerSpec {
	return bootstrap.AutoscalerSpec{
		Namespace:        c.KedaNamespace,
		Release:          c.KedaRelease,
		Chart:            c.KedaChart,
		RepoName:         c.KedaRepoName,
		RepoURL:          c.KedaRepoURL,
		PodLabelSelector: c.KedaPodLabelSelector,
		WaitTimeout:      c.PodWaitTimeout,
	}
}

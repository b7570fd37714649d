// Package config loads gwcore settings. Defaults are overlaid by an optional
// YAML file, then by GW_* environment variables (including any set from a
// .env file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nodeadmin/geneweaver-core/publication"
)

const (
	DefaultProjectName = "geneweaver-core"
	DefaultVersion     = "0.0.20"
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "text"
	DefaultHTTPTimeout = 30 * time.Second
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "GW_"

var ErrInvalidConfig = errors.New("invalid config")

type ServiceURLs struct {
	PubmedXMLSvcURL string `yaml:"pubmed_xml_svc_url"`
}

type Config struct {
	ProjectName string        `yaml:"project_name"`
	Version     string        `yaml:"version"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	ServiceURLs ServiceURLs   `yaml:"service_urls"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProjectName: DefaultProjectName,
		Version:     DefaultVersion,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		HTTPTimeout: DefaultHTTPTimeout,
		ServiceURLs: ServiceURLs{PubmedXMLSvcURL: publication.DefaultURL},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment. envFiles are read into the process
// environment first without overriding variables that are already set; when
// none are given ".env" is tried. Missing env files are ignored.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: load %s: %w", ErrInvalidConfig, f, err)
		}
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"PROJECT_NAME":       &c.ProjectName,
		"VERSION":            &c.Version,
		"LOG_LEVEL":          &c.LogLevel,
		"LOG_FORMAT":         &c.LogFormat,
		"PUBMED_XML_SVC_URL": &c.ServiceURLs.PubmedXMLSvcURL,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvPrefix + "HTTP_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sHTTP_TIMEOUT=%q: %w", ErrInvalidConfig, EnvPrefix, v, err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

// Validate reports settings that would leave the CLI unusable.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format %q: want text or json", c.LogFormat))
	}
	if c.LogLevel == "" {
		errs = append(errs, errors.New("log_level is empty"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http_timeout %s: must be positive", c.HTTPTimeout))
	}
	if c.ServiceURLs.PubmedXMLSvcURL == "" {
		errs = append(errs, errors.New("service_urls.pubmed_xml_svc_url is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

// Settings is the process-wide configuration, constructed once at startup
// and passed by reference into every call site. It is never mutated after
// Load; per-call overrides take precedence at the call site instead.
type Settings struct {
	App  App  `mapstructure:"app" yaml:"app"`
	Sync Sync `mapstructure:"sync" yaml:"sync"`
}

// App holds generator and presentation defaults.
type App struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`

	// TemplateMap resolves OS identifiers to template file names.
	TemplateMap map[string]string `mapstructure:"template_map" yaml:"template_map"`

	MaxPrefixes MaxPrefixes `mapstructure:"max_prefixes" yaml:"max_prefixes"`
	Cache       Cache       `mapstructure:"cache" yaml:"cache"`

	DefaultOS    string `mapstructure:"default_os" yaml:"default_os"`
	PeerTemplate string `mapstructure:"peer_template" yaml:"peer_template"`
	PeerPolicyV4 string `mapstructure:"peer_policy_v4" yaml:"peer_policy_v4"`
	PeerPolicyV6 string `mapstructure:"peer_policy_v6" yaml:"peer_policy_v6"`
	PeerSession  string `mapstructure:"peer_session" yaml:"peer_session"`
	LockVersion  bool   `mapstructure:"lock_version" yaml:"lock_version"`
	IXTrim       bool   `mapstructure:"ix_trim" yaml:"ix_trim"`
	IXTrimWords  int    `mapstructure:"ix_trim_words" yaml:"ix_trim_words"`
}

// MaxPrefixes holds the defaults for BGP maximum-prefix directives. Config
// is a format string with {threshold}, {action} and {interval}
// placeholders, substituted once at render time.
type MaxPrefixes struct {
	V4        int    `mapstructure:"v4" yaml:"v4"`
	V6        int    `mapstructure:"v6" yaml:"v6"`
	Threshold int    `mapstructure:"threshold" yaml:"threshold"`
	Use       bool   `mapstructure:"use" yaml:"use"`
	Action    string `mapstructure:"action" yaml:"action"`
	Interval  int    `mapstructure:"interval" yaml:"interval"`
	Config    string `mapstructure:"config" yaml:"config"`
}

// Cache selects and configures the lookup cache backend.
type Cache struct {
	// Adapter is one of memory, leveldb, redis.
	Adapter string        `mapstructure:"adapter" yaml:"adapter"`
	Host    string        `mapstructure:"host" yaml:"host"`
	Port    int           `mapstructure:"port" yaml:"port"`
	DB      int           `mapstructure:"db" yaml:"db"`
	Path    string        `mapstructure:"path" yaml:"path"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// Sync holds PeeringDB API access settings.
type Sync struct {
	URL      string        `mapstructure:"url" yaml:"url"`
	User     string        `mapstructure:"user" yaml:"user"`
	Password string        `mapstructure:"password" yaml:"password"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// DefaultConfigFiles is the search list for a config file, first hit wins.
func DefaultConfigFiles() []string {
	files := []string{
		"config.yaml", "config.yml", "ngen.yaml", "ngen.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files,
			filepath.Join(home, ".neighgen", "config.yaml"),
			filepath.Join(home, ".neighgen", "config.yml"),
		)
	}
	return files
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".neighgen-cache"
	}
	return filepath.Join(home, ".neighgen", "cache")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.template_map", map[string]string{
		"ios":  "neigh_ios.tmpl",
		"nxos": "neigh_nxos.tmpl",
	})
	v.SetDefault("app.max_prefixes.v4", 10000)
	v.SetDefault("app.max_prefixes.v6", 10000)
	v.SetDefault("app.max_prefixes.threshold", 90)
	v.SetDefault("app.max_prefixes.use", true)
	v.SetDefault("app.max_prefixes.action", "restart")
	v.SetDefault("app.max_prefixes.interval", 30)
	v.SetDefault("app.max_prefixes.config", "{threshold} {action} {interval}")
	v.SetDefault("app.cache.adapter", "leveldb")
	v.SetDefault("app.cache.host", "")
	v.SetDefault("app.cache.port", 0)
	v.SetDefault("app.cache.db", 0)
	v.SetDefault("app.cache.path", defaultCachePath())
	v.SetDefault("app.cache.ttl", time.Hour)
	v.SetDefault("app.default_os", "nxos")
	v.SetDefault("app.peer_template", "PEER")
	v.SetDefault("app.peer_policy_v4", "PEER-V4")
	v.SetDefault("app.peer_policy_v6", "PEER-V6")
	v.SetDefault("app.peer_session", "EBGP")
	v.SetDefault("app.lock_version", true)
	v.SetDefault("app.ix_trim", false)
	v.SetDefault("app.ix_trim_words", 1)
	v.SetDefault("sync.url", "https://www.peeringdb.com/api")
	v.SetDefault("sync.user", "")
	v.SetDefault("sync.password", "")
	v.SetDefault("sync.timeout", 120*time.Second)
}

// Load builds the effective settings: defaults, overlaid by the first
// existing config file (an explicit path wins over the search list),
// overlaid by NEIGHGEN_* environment variables.
func Load(explicitPath string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NEIGHGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	candidates := DefaultConfigFiles()
	if explicitPath != "" {
		candidates = []string{explicitPath}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if explicitPath != "" {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
			continue
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		break
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &s, nil
}

// Dump renders the effective settings as YAML.
func (s *Settings) Dump() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to dump config: %w", err)
	}
	return string(out), nil
}

package olog

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"

	"github.com/sligara7/phoebus-golog/pkg/types"
)

// DefaultEnvPrefix is the prefix used for environment variable lookup when
// no custom prefix is configured.
const DefaultEnvPrefix = "OLOG_"

// Built-in configuration defaults, the lowest-precedence layer.
const (
	DefaultBaseURL    = "http://localhost:8080"
	DefaultClientInfo = "Go Olog Client"
	DefaultTimeout    = 30
)

// Config is the fully-resolved client configuration. Instances are treated
// as immutable once resolved.
type Config struct {
	BaseURL    string `json:"base_url" mapstructure:"base_url" validate:"required"`
	ClientInfo string `json:"client_info" mapstructure:"client_info"`
	VerifySSL  bool   `json:"verify_ssl" mapstructure:"verify_ssl"`
	Timeout    int    `json:"timeout" mapstructure:"timeout" validate:"gt=0"`
	Username   string `json:"username,omitempty" mapstructure:"username" validate:"required_with=Password"`
	Password   string `json:"password,omitempty" mapstructure:"password" validate:"required_with=Username"`
}

// GetBaseURL returns the service base URL. Implements httpclient.Configurator.
func (c Config) GetBaseURL() string { return c.BaseURL }

// GetClientInfo returns the client identification string.
func (c Config) GetClientInfo() string { return c.ClientInfo }

// GetVerifySSL returns whether TLS certificates are verified.
func (c Config) GetVerifySSL() bool { return c.VerifySSL }

// GetTimeout returns the request timeout as a duration.
func (c Config) GetTimeout() time.Duration { return time.Duration(c.Timeout) * time.Second }

// GetBasicAuth returns the Basic auth credential pair. The pair is
// all-or-nothing: ok is true only when both username and password resolved.
func (c Config) GetBasicAuth() (string, string, bool) {
	return c.Username, c.Password, c.Username != "" && c.Password != ""
}

// Options carries the inputs to configuration resolution. Explicit field
// overrides use nullable types so that an unset field falls through to the
// lower-precedence layers while an explicitly set zero value still wins.
type Options struct {
	BaseURL    types.NullableString
	ClientInfo types.NullableString
	VerifySSL  types.NullableBool
	Timeout    types.NullableInt
	Username   types.NullableString
	Password   types.NullableString

	// ConfigFile is an optional path to a JSON or TOML configuration file.
	// The parser is selected by file extension; unknown extensions are
	// parsed as JSON.
	ConfigFile string

	// EnvPrefix overrides the environment variable prefix. Empty means
	// DefaultEnvPrefix.
	EnvPrefix string

	// DisableEnv skips the environment variable layer entirely.
	DisableEnv bool
}

var validate = validator.New()

// ResolveConfig merges the four configuration sources into one Config.
// Precedence, lowest to highest: built-in defaults, environment variables,
// configuration file, explicit options. Each field is resolved independently.
func ResolveConfig(opts Options) (Config, error) {
	cfg := Config{
		BaseURL:    DefaultBaseURL,
		ClientInfo: DefaultClientInfo,
		VerifySSL:  false,
		Timeout:    DefaultTimeout,
	}

	if !opts.DisableEnv {
		prefix := opts.EnvPrefix
		if prefix == "" {
			prefix = DefaultEnvPrefix
		}
		if err := applyLayer(&cfg, envLayer(prefix)); err != nil {
			return Config{}, ErrConfig.MsgErr("unable to apply environment configuration", err)
		}
	}

	if opts.ConfigFile != "" {
		layer, err := loadConfigFile(opts.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		if err := applyLayer(&cfg, layer); err != nil {
			return Config{}, ErrConfigParse.MsgErr("unable to apply configuration file "+opts.ConfigFile, err)
		}
	}

	if opts.BaseURL.Valid {
		cfg.BaseURL = opts.BaseURL.Value
	}
	if opts.ClientInfo.Valid {
		cfg.ClientInfo = opts.ClientInfo.Value
	}
	if opts.VerifySSL.Valid {
		cfg.VerifySSL = opts.VerifySSL.Value
	}
	if opts.Timeout.Valid {
		cfg.Timeout = opts.Timeout.Value
	}
	if opts.Username.Valid {
		cfg.Username = opts.Username.Value
	}
	if opts.Password.Valid {
		cfg.Password = opts.Password.Value
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := validate.Struct(cfg); err != nil {
		return Config{}, ErrConfigInvalid.MsgErr("resolved configuration failed validation", err)
	}

	return cfg, nil
}

// applyLayer decodes one configuration layer onto cfg. Only keys present in
// the layer override existing values, which is what gives each field its
// independent precedence chain. Decoding is weakly typed so JSON float64 and
// TOML int64 numbers both land in the int Timeout field.
func applyLayer(cfg *Config, layer map[string]any) error {
	if len(layer) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(layer)
}

// envLayer reads the environment variable layer under the given prefix.
// A .env file in the working directory is loaded first, best effort, so local
// development setups behave like exported variables.
func envLayer(prefix string) map[string]any {
	_ = godotenv.Load() // no error if .env doesn't exist

	layer := map[string]any{}
	if v, ok := os.LookupEnv(prefix + "BASE_URL"); ok {
		layer["base_url"] = v
	}
	if v, ok := os.LookupEnv(prefix + "CLIENT_INFO"); ok {
		layer["client_info"] = v
	}
	if v, ok := os.LookupEnv(prefix + "VERIFY_SSL"); ok {
		layer["verify_ssl"] = parseBool(v)
	}
	if v, ok := os.LookupEnv(prefix + "TIMEOUT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			layer["timeout"] = n
		}
		// unparseable timeouts are ignored, not fatal
	}
	return layer
}

// parseBool interprets the service's boolean environment convention:
// true/1/yes/on (any case) are true, everything else is false.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// loadConfigFile reads and parses a JSON or TOML configuration file into a
// layer map. The parser is selected by file extension; unknown extensions
// are parsed as JSON.
func loadConfigFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound.MsgErr("configuration file not found: "+path, err)
		}
		return nil, ErrConfig.MsgErr("unable to read configuration file "+path, err)
	}

	layer := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		if err := toml.Unmarshal(content, &layer); err != nil {
			return nil, ErrConfigParse.MsgErr("unable to parse configuration file "+path, err)
		}
	default:
		if err := json.Unmarshal(content, &layer); err != nil {
			return nil, ErrConfigParse.MsgErr("unable to parse configuration file "+path, err)
		}
	}
	return layer, nil
}

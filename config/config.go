package config

import (
	"berquerant/excel-launcher-go/errorx"
	"errors"
	"io"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Interpreter runs the processing script, e.g. [python] or [py, -3].
	Interpreter []string `mapstructure:"interpreter" yaml:"interpreter" json:"interpreter"`
	// VersionArgs are appended to Interpreter to check that it runs.
	VersionArgs []string `mapstructure:"version_args" yaml:"version_args" json:"version_args"`
	// Installer installs packages given as trailing arguments.
	Installer []string `mapstructure:"installer" yaml:"installer" json:"installer"`
	// Script is the processing script, relative to the launcher directory.
	Script string `mapstructure:"script" yaml:"script" json:"script"`
}

const (
	EnvPrefix   = "EXCEL_LAUNCHER"
	DefaultFile = "launcher.yml"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("interpreter", []string{"python"})
	v.SetDefault("version_args", []string{"--version"})
	v.SetDefault("installer", []string{"pip", "install"})
	v.SetDefault("script", "simple_excel_processor.py")
}

var (
	ErrParse   = errors.New("Parse")
	ErrInvalid = errors.New("Invalid")
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the configuration used when no file is given,
// overlaid by EXCEL_LAUNCHER_* environment variables.
func Default() (*Config, error) {
	return unmarshal(newViper())
}

// Parse reads a yaml configuration from r.
func Parse(r io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return unmarshal(v)
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errorx.Errorf(errors.Join(ErrParse, err), "read %s", path)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch {
	case len(c.Interpreter) == 0 || c.Interpreter[0] == "":
		return errorx.Errorf(ErrInvalid, "empty interpreter")
	case len(c.Installer) == 0 || c.Installer[0] == "":
		return errorx.Errorf(ErrInvalid, "empty installer")
	case c.Script == "":
		return errorx.Errorf(ErrInvalid, "empty script")
	default:
		return nil
	}
}

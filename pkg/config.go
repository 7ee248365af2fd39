package zsplit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is what the command line, ZSPLIT_* environment variables and an
// optional YAML file resolve to.
type Config struct {
	Mode      string  `mapstructure:"mode"`
	Strategy  string  `mapstructure:"strategy"`
	Threshold float64 `mapstructure:"threshold"`
	Format    string  `mapstructure:"format"`
	Output    string  `mapstructure:"output"`
	Title     string  `mapstructure:"title"`
	NoColor   bool    `mapstructure:"no_color"`
}

func setDefaults(v *viper.Viper) {
	o := DefaultOptions()
	v.SetDefault("mode", string(o.Mode))
	v.SetDefault("strategy", string(o.Strategy))
	v.SetDefault("threshold", o.Threshold)
	v.SetDefault("format", string(TableFormat))
	v.SetDefault("output", "")
	v.SetDefault("title", DefaultChartOptions().Title)
	v.SetDefault("no_color", false)
}

// LoadConfig reads configPath when it is set, otherwise looks for an optional
// zsplit.yaml in the working directory. A missing default file is not an
// error.
func LoadConfig(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("zsplit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ZSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if e := v.ReadInConfig(); e != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(e, &notFound) {
			return Config{}, fmt.Errorf("LoadConfig: %w", e)
		}
	}

	var c Config
	if e := v.Unmarshal(&c); e != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", e)
	}
	return c, nil
}

func (c Config) Options() (Options, error) {
	m, e := ParseMode(c.Mode)
	if e != nil {
		return Options{}, e
	}
	s, e := ParseStrategy(c.Strategy)
	if e != nil {
		return Options{}, e
	}
	o := Options{Mode: m, Strategy: s, Threshold: c.Threshold}
	return o, o.Validate()
}

// Package config handles application configuration and setup.
package config

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/retroenv/bdump/internal/isa"
	"github.com/retroenv/bdump/internal/options"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvVarPrefix is the prefix of environment variables that override
// configuration values, for example BDUMP_REVISION.
const EnvVarPrefix = "BDUMP"

var replacer = strings.NewReplacer(".", "_", "-", "_")

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"output":   "output",
	"table":    "table",
	"batch":    "batch",
	"log-file": "log_file",
	"revision": "revision",
	"debug":    "debug",
	"quiet":    "quiet",
	"watch":    "watch",
	"line-num": "line_numbers",
	"colors":   "colors",
	"binary":   "binary",
	"verbose":  "verbosity",
}

// Defaults returns the default program options.
func Defaults() options.Program {
	return options.Program{
		Flags: options.Flags{
			Revision: isa.DefaultRevision,
		},
	}
}

// Load returns the program options, layered from lowest to highest priority:
// defaults, the optional config file, environment variables and the command
// line flags that were explicitly set.
func Load(configFile string, flags *pflag.FlagSet) (options.Program, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// viper only resolves environment variables for keys that it knows,
	// merging the defaults registers all keys.
	b, err := yaml.Marshal(Defaults())
	if err != nil {
		return options.Program{}, fmt.Errorf("marshalling defaults: %w", err)
	}
	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return options.Program{}, fmt.Errorf("merging defaults: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.MergeInConfig(); err != nil {
			return options.Program{}, fmt.Errorf("reading config file '%s': %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return options.Program{}, err
		}
	}

	var opts options.Program
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.DecodeHookFuncType(revisionHook),
	))
	if err := v.Unmarshal(&opts, hook); err != nil {
		return options.Program{}, fmt.Errorf("decoding configuration: %w", err)
	}
	opts.Config = configFile
	return opts, nil
}

// bindFlags binds all known flags of the set. viper only uses the value of
// a bound flag that was changed on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(flag *pflag.Flag) {
		key, ok := flagKeys[flag.Name]
		if !ok || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, flag); bindErr != nil {
			err = fmt.Errorf("binding flag '%s': %w", flag.Name, bindErr)
		}
	})
	return err
}

var programType = reflect.TypeOf(options.Program{})

// revisionHook normalizes the configured ISA revision and rejects unknown names.
func revisionHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != programType || from.Kind() != reflect.Map {
		return data, nil
	}
	values, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}

	revision, ok := values["revision"]
	if !ok {
		return data, nil
	}
	name := strings.ToLower(strings.TrimSpace(fmt.Sprint(revision)))
	if _, err := isa.Revision(name); err != nil {
		return nil, err
	}
	values["revision"] = name
	return values, nil
}

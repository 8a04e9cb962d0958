package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type config struct {
	Database string
	Images   string
	LogFile  string
	LogLevel string
}

// Flags, then DIARY_* environment variables, then the config file, then defaults
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("database", "diary.db")
	v.SetDefault("images", "images")
	v.SetDefault("log_file", "debug.log")
	v.SetDefault("log_level", "INFO")

	v.SetConfigName("terminaldiary")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/terminaldiary")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// LOG_LEVEL=DEBUG keeps working as well
	err := v.BindEnv("log_level", "DIARY_LOG_LEVEL", "LOG_LEVEL")
	if err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{
		"database":  "database",
		"images":    "images",
		"log_file":  "log-file",
		"log_level": "log-level",
	} {
		err := v.BindPFlag(key, cmd.Flags().Lookup(flag))
		if err != nil {
			return nil, fmt.Errorf("couldn't bind flag %q: %w", flag, err)
		}
	}

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("couldn't read config file: %w", err)
	}

	return v, nil
}

func loadConfig(cmd *cobra.Command) (config, error) {
	v, err := newViper(cmd)
	if err != nil {
		return config{}, err
	}

	return config{
		Database: v.GetString("database"),
		Images:   v.GetString("images"),
		LogFile:  v.GetString("log_file"),
		LogLevel: strings.ToUpper(v.GetString("log_level")),
	}, nil
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("database", "", "path to the sqlite database")
	cmd.PersistentFlags().String("images", "", "directory attached images get stored in")
	cmd.PersistentFlags().String("log-file", "", "file to write logs to")
	cmd.PersistentFlags().String("log-level", "", "DEBUG, INFO, WARN or ERROR")
}

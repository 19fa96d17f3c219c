/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/grimoire/internal/persistence"
	"github.com/suderio/grimoire/internal/session"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "A storyteller's companion for social deduction games",
	Long: `grimoire keeps the hidden state of a social deduction game: the active
script, the character bag, and the grimoire of players with their roles,
reminders and life state. Every change is persisted so a session survives
restarts.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.grimoire.yaml)")
	rootCmd.PersistentFlags().String("state-file", "", "path of the session snapshot file")
	rootCmd.PersistentFlags().String("redis-addr", "", "redis address; when set, snapshots go to redis instead of a file")

	_ = viper.BindPFlag("state_file", rootCmd.PersistentFlags().Lookup("state-file"))
	_ = viper.BindPFlag("redis_addr", rootCmd.PersistentFlags().Lookup("redis-addr"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".grimoire")
	}

	viper.SetEnvPrefix("GRIMOIRE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the console logger shared by every subcommand.
func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// defaultStatePath is where snapshots land when nothing is configured.
func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "grimoire-session.json"
	}
	return filepath.Join(home, ".grimoire", "session.json")
}

// openStore picks the persistence adapter from config and loads the session.
// A configured redis address wins over the snapshot file.
func openStore(log zerolog.Logger) (*session.Store, error) {
	var adapter persistence.Adapter

	if addr := viper.GetString("redis_addr"); addr != "" {
		adapter = persistence.NewRedisStore(addr, viper.GetString("redis_password"), viper.GetInt("redis_db"))
	} else {
		path := viper.GetString("state_file")
		if path == "" {
			path = defaultStatePath()
		}
		fs, err := persistence.NewFileStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot file: %w", err)
		}
		adapter = fs
	}

	return session.NewStore(adapter, log)
}

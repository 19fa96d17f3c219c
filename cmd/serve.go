package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/grimoire/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session over HTTP",
	Long: `Exposes the persisted session for companion tools:
	GET  /api/session  current snapshot
	POST /api/intents  apply an intent envelope`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		store, err := openStore(log)
		if err != nil {
			fmt.Printf("Failed to open the session store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		addr := viper.GetString("listen_addr")
		if addr == "" {
			addr = ":8787"
		}

		handler := server.NewHandler(store, log)
		log.Info().Str("addr", addr).Msg("listening")
		if err := http.ListenAndServe(addr, handler); err != nil {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen-addr", "", "address to listen on (default :8787)")
	_ = viper.BindPFlag("listen_addr", serveCmd.Flags().Lookup("listen-addr"))
}

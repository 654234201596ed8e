package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version é sobrescrito no build via -ldflags "-X main.version=..."
var version = "dev"

// flags da linha de comando e a chave de configuração correspondente
var flagKeys = map[string]string{
	"access-token": "NEWSBREAK_ACCESS_TOKEN",
	"transport":    "MCP_TRANSPORT",
	"host":         "HOST",
	"port":         "PORT",
	"log-level":    "LOG_LEVEL",
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "newsbreak-mcp",
		Short: "MCP server for the NewsBreak Business API (analytics and reporting).",
		Long: "Exposes NewsBreak ad accounts, campaigns, ad sets, ads, tracking events and " +
			"performance reports as MCP tools and resources over stdio or streamable HTTP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd.Flags())
		},
		RunE: runServe,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("access-token", "", "NewsBreak access token (overrides NEWSBREAK_ACCESS_TOKEN)")
	flags.String("transport", "", "transport: stdio or http (overrides MCP_TRANSPORT)")
	flags.String("host", "", "HTTP transport host (overrides HOST)")
	flags.String("port", "", "HTTP transport port (overrides PORT)")
	flags.String("log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(newTokenCmd())

	return rootCmd
}

// bindFlags liga as flags ao viper. Flags informadas têm precedência sobre
// variáveis de ambiente, .env e valores padrão.
func bindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("erro ao vincular flag --%s: %w", name, err)
		}
	}
	return nil
}

// Package main é a CLI de diagnóstico do dashboard.
//
// Verifica as credenciais do GA4, a saúde do servidor e os widgets do dashboard:
//
//	ga4check connection
//	ga4check server --port 3001
//	ga4check dashboard --start 2025-03-01 --end 2025-03-20 --watch 30s
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	if err := buildRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// buildRootCmd registra os subcomandos
func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ga4check",
		Short:         "Diagnostics for the GA4 analytics dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		buildConnectionCmd(),
		buildServerCmd(),
		buildDashboardCmd(),
	)

	return rootCmd
}

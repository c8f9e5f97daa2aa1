package main

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultServerPort    = "3001"
	defaultServerTimeout = 2 * time.Second
)

// buildConnectionCmd testa as credenciais com um relatório de totalUsers dos últimos 7 dias
func buildConnectionCmd() *cobra.Command {
	var (
		days int
		raw  bool
	)

	cmd := &cobra.Command{
		Use:   "connection",
		Short: "Check GA4 credentials and run a totalUsers report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runConnection(cmd, cfg, days, raw)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days covered by the test report")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw runReport response")

	return cmd
}

// buildServerCmd consulta o /healthcheck do servidor
func buildServerCmd() *cobra.Command {
	var (
		host    string
		port    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Check that the API server answers /healthcheck",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, host, port, timeout)
		},
	}

	cmd.Flags().StringVar(&host, "host", "localhost", "Server host")
	cmd.Flags().StringVarP(&port, "port", "p", defaultServerPort, "Server port")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultServerTimeout, "Request timeout")

	return cmd
}

// buildDashboardCmd carrega os widgets contra o backend e imprime o estado de cada um
func buildDashboardCmd() *cobra.Command {
	var (
		apiURL    string
		startDate string
		endDate   string
		watch     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Load every dashboard widget and print its state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, dashboardOptions{
				APIURL:    apiURL,
				StartDate: startDate,
				EndDate:   endDate,
				Watch:     watch,
			})
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "Backend base URL (default: DASHBOARD_API_URL or localhost:PORT)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().DurationVar(&watch, "watch", 0, "Reload every interval until interrupted (e.g. 30s)")

	return cmd
}

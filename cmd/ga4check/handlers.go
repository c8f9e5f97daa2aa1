package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gaclient"
	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
	"github.com/vfg2006/analytics-dashboard-api/internal/config"
	"github.com/vfg2006/analytics-dashboard-api/internal/dashboard"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
	"github.com/vfg2006/analytics-dashboard-api/pkg/utils"
)

// Substituídos nos testes
var (
	loadConfig   = config.NewConfig
	newGA4Client = gaclient.NewClient
)

// runConnection imprime o estado das credenciais e roda um relatório simples
func runConnection(cmd *cobra.Command, cfg *config.Config, days int, raw bool) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "GA4 credentials:")
	fmt.Fprintf(out, "  GA4_PROPERTY_ID:  %s\n", presence(cfg.GA4.PropertyID))
	fmt.Fprintf(out, "  GA4_CLIENT_EMAIL: %s\n", presence(cfg.GA4.ClientEmail))
	fmt.Fprintf(out, "  GA4_PRIVATE_KEY:  %s\n", presence(cfg.GA4.PrivateKey))

	if cfg.GA4.PrivateKey != "" {
		if err := gaclient.ValidatePrivateKeyFormat(cfg.GA4.NormalizedPrivateKey()); err != nil {
			fmt.Fprintf(out, "  private key format: invalid (%v)\n", err)
		} else {
			fmt.Fprintln(out, "  private key format: ok")
		}
	}

	client, err := newGA4Client(cfg)
	if err != nil {
		return fmt.Errorf("failed to build GA4 client: %w", err)
	}

	if days <= 0 {
		days = 7
	}

	request := &gadomain.RunReportRequest{
		DateRanges: []gadomain.DateRange{{
			StartDate: fmt.Sprintf("%ddaysAgo", days),
			EndDate:   "today",
		}},
		Metrics: []gadomain.Metric{{Name: ga4.MetricTotalUsers}},
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GA4.RequestTimeout+5*time.Second)
	defer cancel()

	resp, err := client.RunReport(ctx, request)
	if err != nil {
		return fmt.Errorf("runReport failed for property %s: %w", client.PropertyID(), err)
	}

	if raw {
		pretty, err := utils.PrettyJson(resp)
		if err != nil {
			return fmt.Errorf("failed to format response: %w", err)
		}
		fmt.Fprintln(out, pretty)
	}

	index := resp.MetricIndex()
	totalUsers := "0"
	if len(resp.Rows) > 0 {
		totalUsers = resp.Rows[0].MetricValue(index, ga4.MetricTotalUsers)
	}

	fmt.Fprintf(out, "Connection ok: property %s, %d row(s), totalUsers (last %d days) = %s\n",
		client.PropertyID(), len(resp.Rows), days, totalUsers)
	return nil
}

// runServer consulta o /healthcheck e imprime a resposta
func runServer(cmd *cobra.Command, host, port string, timeout time.Duration) error {
	out := cmd.OutOrStdout()
	baseURL := "http://" + net.JoinHostPort(host, port)

	client := dashboardclient.New(baseURL, timeout, nil)
	body, err := client.Healthcheck(cmd.Context())
	if err != nil {
		return fmt.Errorf("server at %s is not healthy: %w", baseURL, err)
	}

	fmt.Fprintf(out, "Server at %s is up (%s)\n", baseURL, strings.TrimSpace(body))
	return nil
}

type dashboardOptions struct {
	APIURL    string
	StartDate string
	EndDate   string
	Watch     time.Duration
}

// runDashboard carrega o dashboard uma vez ou a cada intervalo de --watch
func runDashboard(cmd *cobra.Command, opts dashboardOptions) error {
	out := cmd.OutOrStdout()

	lookbackDays := reporting.DefaultLookbackDays
	timeout := dashboardclient.DefaultTimeout
	if opts.APIURL == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts.APIURL = cfg.Dashboard.APIURL
		if opts.APIURL == "" {
			opts.APIURL = "http://" + net.JoinHostPort("localhost", cfg.Server.Port)
		}
		lookbackDays = cfg.Dashboard.LookbackDays
		timeout = cfg.Dashboard.WidgetTimeout
	}

	normalizer := reporting.NewNormalizer(lookbackDays)
	shell := dashboard.NewShell(dashboardclient.New(opts.APIURL, timeout, nil), normalizer)

	if opts.StartDate != "" || opts.EndDate != "" {
		if err := shell.SetRange(opts.StartDate, opts.EndDate); err != nil {
			return fmt.Errorf("invalid date range: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := loadAndPrint(ctx, out, shell); err != nil || opts.Watch <= 0 {
		return err
	}

	ticker := time.NewTicker(opts.Watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			shell.Refresh()
			if err := loadAndPrint(ctx, out, shell); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}

func loadAndPrint(ctx context.Context, out io.Writer, shell *dashboard.Shell) error {
	state, err := shell.Load(ctx)
	if err != nil && !errors.Is(err, dashboard.ErrSuperseded) {
		return err
	}

	printState(out, state)
	return nil
}

func printState(out io.Writer, state dashboard.State) {
	fmt.Fprintf(out, "Dashboard %s to %s (refresh %d)\n",
		state.Range.StartDate(), state.Range.EndDate(), state.Token)

	if state.Err != nil {
		fmt.Fprintf(out, "Error: %v\n", state.Err)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WIDGET\tSTATUS\tSAMPLE\tDETAIL")

	summary := state.Summary
	fmt.Fprintf(tw, "summary\t%s\t%s\tusers=%d newUsers=%d sessions=%d pageViews=%d bounceRate=%.1f%%\n",
		summary.Status, yesNo(summary.IsMockData), summary.Data.Users, summary.Data.NewUsers,
		summary.Data.Sessions, summary.Data.PageViews, summary.Data.BounceRate)

	views := state.PageViews
	fmt.Fprintf(tw, "page views\t%s\t%s\t%d day(s)\n", views.Status, yesNo(views.IsMockData), len(views.Data))

	breakdowns := []struct {
		name   string
		widget dashboard.Widget[[]domain.BreakdownEntry]
	}{
		{"traffic sources", state.TrafficSources},
		{"device usage", state.DeviceUsage},
		{"visits by country", state.VisitsByCountry},
	}
	for _, b := range breakdowns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.name, b.widget.Status, yesNo(b.widget.IsMockData), topEntry(b.widget.Data))
	}

	pages := state.TopPages
	detail := fmt.Sprintf("%d page(s)", len(pages.Data))
	if len(pages.Data) > 0 {
		detail += fmt.Sprintf(", top %s (%d views)", pages.Data[0].PagePath, pages.Data[0].PageViews)
	}
	fmt.Fprintf(tw, "top pages\t%s\t%s\t%s\n", pages.Status, yesNo(pages.IsMockData), detail)

	_ = tw.Flush()
}

func topEntry(entries []domain.BreakdownEntry) string {
	if len(entries) == 0 {
		return "no entries"
	}
	return fmt.Sprintf("%d entries, top %s %.1f%%", len(entries), entries[0].Label, entries[0].Percentage)
}

func presence(value string) string {
	if value == "" {
		return "missing"
	}
	return "set"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

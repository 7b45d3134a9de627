package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

// Audit reloads the paginated audit view and prints the current page.
func (a *App) Audit(ctx context.Context) error {
	a.pager.Reload(ctx)
	a.printAuditPage()
	return nil
}

// AuditPage jumps to a specific page. Out-of-range pages are ignored by
// the pager, so the command simply reprints whatever page is current.
func (a *App) AuditPage(ctx context.Context, arg string) error {
	page, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: page <n>")
		return nil
	}
	a.pager.GoToPage(ctx, page)
	a.printAuditPage()
	return nil
}

func (a *App) printAuditPage() {
	if msg := a.pager.Err(); msg != "" {
		printlnFn("Could not load audit logs:", msg)
		return
	}
	printAuditLogs(a.pager.Logs())
	printlnFn(fmt.Sprintf("Page %d/%d (%d events)", a.pager.Page(), a.pager.TotalPages(), a.pager.TotalCount()))
}

// AuditMore appends the next page to the running feed. Repeated calls
// while a load is in flight are ignored.
func (a *App) AuditMore(ctx context.Context) error {
	a.feed.LoadMore(ctx)
	if msg := a.feed.Err(); msg != "" {
		printlnFn("Could not load audit logs:", msg)
		return nil
	}

	printAuditLogs(a.feed.Logs())
	if a.feed.HasMore() {
		printlnFn(fmt.Sprintf("%d of %d events loaded. Type 'more' for the rest.", len(a.feed.Logs()), a.feed.TotalCount()))
	} else {
		printlnFn("All events loaded.")
	}
	return nil
}

// AuditMetrics prints the 30-day activity summary. A failed load is
// reported once and leaves the rest of the audit view usable.
func (a *App) AuditMetrics(ctx context.Context) error {
	a.metrics.Load(ctx)
	m := a.metrics.Values()
	if m == nil {
		printlnFn("Metrics are unavailable right now.")
		return nil
	}
	printlnFn("Events (30 days):", m.TotalEventsLast30Days)
	printlnFn("Events (24 hours):", m.EventsCountLast24Hours)
	printlnFn("Vault events (30 days):", m.VaultEventsLast30Days)
	printlnFn("API key events (30 days):", m.APIKeyEventsLast30Days)
	return nil
}

func printAuditLogs(logs []api.AuditLog) {
	for _, l := range logs {
		line := fmt.Sprintf("%s  %-16s", l.CreatedAt.Format("2006-01-02 15:04:05"), l.Action)
		if l.Vault != nil {
			line += "  vault=" + l.Vault.Name
		}
		if l.APIKey != nil {
			line += "  key=" + l.APIKey.Name
		}
		if l.IPAddress != "" {
			line += "  from " + l.IPAddress
		}
		printlnFn(line)
	}
}

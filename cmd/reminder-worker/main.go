// Command reminder-worker periodically fetches the reminder feed from a
// running api-server and logs it. It is display-side tooling only: the feed
// itself is always recomputed by the server on each request.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthbuddy/health-tracker-core/internal/config"
	"github.com/healthbuddy/health-tracker-core/internal/reminder"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("reminder-worker starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running reminder worker env=%s interval=%s base_url=%s", cfg.Env, cfg.WorkerInterval, cfg.APIBaseURL)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: 10 * time.Second}

	// Run once at startup
	runOnce(rootCtx, client, cfg.APIBaseURL)

	ticker := time.NewTicker(cfg.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rootCtx.Done():
			log.Println("shutdown signal received, stopping reminder worker")
			return
		case <-ticker.C:
			runOnce(rootCtx, client, cfg.APIBaseURL)
		}
	}
}

type remindersResponse struct {
	Reminders []reminder.Reminder `json:"reminders"`
	Unread    int                 `json:"unreadMessages"`
	Total     int                 `json:"total"`
	Badge     string              `json:"badge"`
}

func runOnce(ctx context.Context, client *http.Client, baseURL string) {
	runCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	start := time.Now()
	feed, err := fetchReminders(runCtx, client, baseURL)
	if err != nil {
		log.Printf("reminder poll error: %v", err)
		return
	}

	for _, item := range feed.Reminders {
		log.Printf("reminder type=%s time=%q title=%q body=%q", item.Kind, item.TimeLabel, item.Title, item.Body)
	}
	log.Printf("reminder poll complete in %s reminders=%d unread=%d badge=%s",
		time.Since(start), len(feed.Reminders), feed.Unread, feed.Badge)
}

func fetchReminders(ctx context.Context, client *http.Client, baseURL string) (*remindersResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/reminders", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch reminders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from reminders endpoint", resp.StatusCode)
	}

	var feed remindersResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}
	return &feed, nil
}

// Command simulate drives a running api-server with a mixed workload of
// record mutations and read queries, then prints latency stats per
// operation.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/healthbuddy/health-tracker-core/internal/config"
)

type SimConfig struct {
	APIBaseURL  string
	Duration    time.Duration
	Workers     int
	CreateRatio float64
	EditRatio   float64
	DeleteRatio float64
}

func loadSimConfig() SimConfig {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	sim := SimConfig{
		APIBaseURL:  cfg.APIBaseURL,
		Duration:    30 * time.Second,
		Workers:     4,
		CreateRatio: 0.2,
		EditRatio:   0.1,
		DeleteRatio: 0.05,
	}
	if v := os.Getenv("SIM_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			sim.Duration = d
		}
	}
	if v := os.Getenv("SIM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sim.Workers = n
		}
	}
	return sim
}

// MedicationPool tracks ids created during the run so edits and deletes
// target real records.
type MedicationPool struct {
	mu  sync.RWMutex
	ids []string
}

func (p *MedicationPool) Add(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, id)
}

func (p *MedicationPool) Random() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.ids) == 0 {
		return "", false
	}
	return p.ids[rand.Intn(len(p.ids))], true
}

func (p *MedicationPool) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, v := range p.ids {
		if v == id {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return
		}
	}
}

type OperationMetrics struct {
	mu        sync.Mutex
	Total     int64
	Success   int64
	Error     int64
	Latencies []time.Duration
}

func (om *OperationMetrics) Record(latency time.Duration, success bool) {
	om.mu.Lock()
	defer om.mu.Unlock()
	om.Total++
	if success {
		om.Success++
	} else {
		om.Error++
	}
	om.Latencies = append(om.Latencies, latency)
}

func (om *OperationMetrics) Stats() (avg, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.Latencies) == 0 {
		return 0, 0, 0
	}

	sorted := make([]time.Duration, len(om.Latencies))
	copy(sorted, om.Latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}
	avg = sum / time.Duration(len(sorted))
	p50 = sorted[len(sorted)/2]
	p95 = sorted[len(sorted)*95/100]
	return avg, p50, p95
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	sim := loadSimConfig()
	log.Printf("simulate starting base_url=%s duration=%s workers=%d", sim.APIBaseURL, sim.Duration, sim.Workers)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runCtx, cancel := context.WithTimeout(rootCtx, sim.Duration)
	defer cancel()

	client := &http.Client{Timeout: 10 * time.Second}
	pool := &MedicationPool{}
	metrics := map[string]*OperationMetrics{
		"create":    {},
		"edit":      {},
		"delete":    {},
		"reminders": {},
		"calendar":  {},
		"navigate":  {},
	}

	var wg sync.WaitGroup
	for i := 0; i < sim.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			runWorker(runCtx, client, sim, pool, metrics)
		}(i)
	}
	wg.Wait()

	for name, om := range metrics {
		avg, p50, p95 := om.Stats()
		log.Printf("op=%s total=%d success=%d error=%d avg=%s p50=%s p95=%s",
			name, om.Total, om.Success, om.Error, avg, p50, p95)
	}
}

func runWorker(ctx context.Context, client *http.Client, sim SimConfig, pool *MedicationPool, metrics map[string]*OperationMetrics) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		roll := rand.Float64()
		switch {
		case roll < sim.CreateRatio:
			doCreate(ctx, client, sim.APIBaseURL, pool, metrics["create"])
		case roll < sim.CreateRatio+sim.EditRatio:
			doEdit(ctx, client, sim.APIBaseURL, pool, metrics["edit"])
		case roll < sim.CreateRatio+sim.EditRatio+sim.DeleteRatio:
			doDelete(ctx, client, sim.APIBaseURL, pool, metrics["delete"])
		case roll < 0.6:
			doGet(ctx, client, sim.APIBaseURL+"/reminders", metrics["reminders"])
		case roll < 0.85:
			now := time.Now()
			url := fmt.Sprintf("%s/calendar/%d/%d", sim.APIBaseURL, now.Year(), int(now.Month()))
			doGet(ctx, client, url, metrics["calendar"])
		default:
			doNavigate(ctx, client, sim.APIBaseURL, metrics["navigate"])
		}

		time.Sleep(time.Duration(rand.Intn(50)) * time.Millisecond)
	}
}

func doCreate(ctx context.Context, client *http.Client, baseURL string, pool *MedicationPool, om *OperationMetrics) {
	body := map[string]string{
		"name":      fmt.Sprintf("Sim Medication %d", rand.Intn(10000)),
		"dose":      "1 tablet (10mg)",
		"time":      fmt.Sprintf("%02d:00", 7+rand.Intn(14)),
		"frequency": "Daily",
	}

	start := time.Now()
	resp, err := postJSON(ctx, client, baseURL+"/medications", body)
	latency := time.Since(start)
	if err != nil {
		om.Record(latency, false)
		return
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusCreated {
		om.Record(latency, false)
		return
	}

	var detail struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil && detail.ID != "" {
		pool.Add(detail.ID)
	}
	om.Record(latency, true)
}

func doEdit(ctx context.Context, client *http.Client, baseURL string, pool *MedicationPool, om *OperationMetrics) {
	id, ok := pool.Random()
	if !ok {
		return
	}

	form := map[string]string{
		"eventName":           fmt.Sprintf("Edited Medication %d", rand.Intn(10000)),
		"medicationDose":      "2 tablets (5mg)",
		"medicationTime":      fmt.Sprintf("%02d:30", 7+rand.Intn(14)),
		"medicationFrequency": "Daily",
		"notes":               "Edited by simulator.",
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, baseURL+"/events/"+id, jsonBody(form))
	if err != nil {
		om.Record(time.Since(start), false)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		om.Record(latency, false)
		return
	}
	defer drain(resp)
	om.Record(latency, resp.StatusCode == http.StatusOK)
}

func doDelete(ctx context.Context, client *http.Client, baseURL string, pool *MedicationPool, om *OperationMetrics) {
	id, ok := pool.Random()
	if !ok {
		return
	}
	pool.Remove(id)

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, baseURL+"/events/"+id, nil)
	if err != nil {
		om.Record(time.Since(start), false)
		return
	}

	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		om.Record(latency, false)
		return
	}
	defer drain(resp)
	om.Record(latency, resp.StatusCode == http.StatusNoContent)
}

func doNavigate(ctx context.Context, client *http.Client, baseURL string, om *OperationMetrics) {
	screens := []string{"calendar", "search", "notifications", "home", "account"}
	body := map[string]string{"screen": screens[rand.Intn(len(screens))]}

	start := time.Now()
	resp, err := postJSON(ctx, client, baseURL+"/navigation/goto", body)
	latency := time.Since(start)
	if err != nil {
		om.Record(latency, false)
		return
	}
	defer drain(resp)
	om.Record(latency, resp.StatusCode == http.StatusOK)
}

func doGet(ctx context.Context, client *http.Client, url string, om *OperationMetrics) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		om.Record(time.Since(start), false)
		return
	}

	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		om.Record(latency, false)
		return
	}
	defer drain(resp)
	om.Record(latency, resp.StatusCode == http.StatusOK)
}

func postJSON(ctx context.Context, client *http.Client, url string, body any) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, jsonBody(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return client.Do(req)
}

func jsonBody(v any) io.Reader {
	data, _ := json.Marshal(v)
	return bytes.NewReader(data)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

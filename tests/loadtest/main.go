package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:8080"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numProfiles  = 200
	numDays      = 90
)

var granularities = []string{"daily", "weekly", "monthly", "quarterly", "yearly"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// profileID mirrors the server-side derivation so readers can target
// the profiles the writers create.
func profileID(n int) string {
	birth := fmt.Sprintf("19%02d-06-01", 70+n%30)
	create := fmt.Sprintf("2022-%02d-01", n%12+1)
	sum := sha256.Sum256([]byte(birth + "-" + create))
	return hex.EncodeToString(sum[:])
}

func main() {
	fmt.Println("=== Swiped Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Profiles: %d | Usage days per export: up to %d\n\n", numProfiles, numDays)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Seed profiles with imports
	fmt.Println("\n--- Phase 1: Seeding profiles (POST /import/tinder) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doImport(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (40% POST, 60% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.40:
			return doImport(rng)
		case r < 0.70:
			return doGetStats(rng)
		case r < 0.85:
			return doGetComparison(rng)
		case r < 0.95:
			return doGetProfiles()
		default:
			return doGetHealth()
		}
	})

	// Phase 3: Read-heavy load
	fmt.Println("\n--- Phase 3: Read-heavy load (5% POST, 95% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doImport(rng)
		case r < 0.55:
			return doGetStats(rng)
		case r < 0.80:
			return doGetComparison(rng)
		case r < 0.95:
			return doGetProfiles()
		default:
			return doGetHealth()
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 92))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 92))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

// doImport builds a synthetic Tinder export for one of numProfiles stable
// identities. Re-imports of the same identity exercise the additive merge.
func doImport(rng *rand.Rand) result {
	n := rng.Intn(numProfiles)
	birth := fmt.Sprintf("19%02d-06-01", 70+n%30)
	create := fmt.Sprintf("2022-%02d-01", n%12+1)

	appOpens := make(map[string]int)
	likes := make(map[string]int)
	passes := make(map[string]int)
	matches := make(map[string]int)
	sent := make(map[string]int)
	received := make(map[string]int)

	nDays := rng.Intn(numDays) + 1
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < nDays; i++ {
		day := base.AddDate(0, 0, rng.Intn(365)).Format("2006-01-02")
		appOpens[day] = rng.Intn(20) + 1
		likes[day] = rng.Intn(50)
		passes[day] = rng.Intn(50)
		matches[day] = rng.Intn(5)
		sent[day] = rng.Intn(30)
		received[day] = rng.Intn(30)
	}

	body := map[string]interface{}{
		"Usage": map[string]interface{}{
			"app_opens":         appOpens,
			"swipes_likes":      likes,
			"swipes_passes":     passes,
			"matches":           matches,
			"messages_sent":     sent,
			"messages_received": received,
		},
		"Messages": []interface{}{},
		"User": map[string]interface{}{
			"birth_date":  birth,
			"create_date": create,
			"email":       fmt.Sprintf("user%d@example.com", n),
		},
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/import/tinder", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /import/tinder", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /import/tinder", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doGetStats(rng *rand.Rand) result {
	id := profileID(rng.Intn(numProfiles))
	g := granularities[rng.Intn(len(granularities))]
	url := fmt.Sprintf("%s/stats?p=%s&g=%s", baseURL, id, g)
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /stats", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	// 404 is expected for identities not yet seeded
	ok := resp.StatusCode == 200 || resp.StatusCode == 404
	return result{"GET /stats", resp.StatusCode, lat, !ok}
}

func doGetComparison(rng *rand.Rand) result {
	id := profileID(rng.Intn(numProfiles))
	g := granularities[rng.Intn(len(granularities))]
	url := fmt.Sprintf("%s/stats/compare?p=%s&g=%s&from=2024-03-01&to=2024-05-31", baseURL, id, g)
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /stats/compare", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	ok := resp.StatusCode == 200 || resp.StatusCode == 404
	return result{"GET /stats/compare", resp.StatusCode, lat, !ok}
}

func doGetProfiles() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/profiles")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /profiles", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /profiles", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetHealth() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/health")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /health", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /health", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

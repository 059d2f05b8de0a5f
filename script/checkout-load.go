package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// loanRequest is the body of POST /checkout and POST /return
type loanRequest struct {
	StudentID uint64 `json:"student_id,omitempty"`
	Barcode   string `json:"barcode"`
}

// errorBody is the error envelope returned by the API
type errorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// activeLoan is one element of GET /student-loans/:id
type activeLoan struct {
	Title   string `json:"title"`
	Barcode string `json:"barcode"`
}

// result is the outcome of a single request
type result struct {
	operation    string
	statusCode   int
	errorCode    int
	responseTime time.Duration
	err          error
}

// stats aggregates results per operation and outcome
type stats struct {
	mu            sync.Mutex
	total         int
	outcomes      map[string]int
	responseTimes []time.Duration
}

func (s *stats) add(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.responseTimes = append(s.responseTimes, r.responseTime)

	key := fmt.Sprintf("%-8s %d", r.operation, r.statusCode)
	switch {
	case r.err != nil:
		key = fmt.Sprintf("%-8s transport error", r.operation)
	case r.errorCode != 0:
		key = fmt.Sprintf("%s code=%d", key, r.errorCode)
	}
	s.outcomes[key]++
}

func main() {
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	studentsFlag := flag.String("students", "1,2,3,4", "Comma-separated student IDs")
	barcodesFlag := flag.String("barcodes", "BK001,BK002", "Comma-separated barcodes; fewer barcodes than students forces contention")
	baseURL := flag.String("url", "http://localhost:5000", "Base URL for the API")
	returnRatio := flag.Float64("returns", 0.4, "Share of requests that are returns")
	flag.Parse()

	students := parseIDs(*studentsFlag)
	barcodes := strings.Split(*barcodesFlag, ",")
	if len(students) == 0 || len(barcodes) == 0 {
		fmt.Println("need at least one student and one barcode")
		os.Exit(2)
	}

	fmt.Printf("Hammering %s with %d requests over %d workers\n", *baseURL, *totalRequests, *concurrency)
	fmt.Printf("Students: %v  Barcodes: %v\n", students, barcodes)

	client := &http.Client{Timeout: 10 * time.Second}
	s := &stats{outcomes: make(map[string]int)}

	jobs := make(chan struct{}, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				barcode := barcodes[rand.Intn(len(barcodes))]
				if rand.Float64() < *returnRatio {
					s.add(post(client, *baseURL+"/return", "return", loanRequest{Barcode: barcode}))
					continue
				}
				student := students[rand.Intn(len(students))]
				s.add(post(client, *baseURL+"/checkout", "checkout", loanRequest{StudentID: student, Barcode: barcode}))
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	printResults(s, elapsed)

	if !verifyInvariant(client, *baseURL, students) {
		os.Exit(1)
	}
}

func post(client *http.Client, url, operation string, body loanRequest) result {
	data, err := json.Marshal(body)
	if err != nil {
		return result{operation: operation, err: err}
	}

	start := time.Now()
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	r := result{operation: operation, responseTime: time.Since(start), err: err}
	if err != nil {
		return r
	}
	defer resp.Body.Close()

	r.statusCode = resp.StatusCode
	if resp.StatusCode >= 300 {
		var e errorBody
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			r.errorCode = e.Code
		}
	}
	return r
}

// verifyInvariant checks that no student ended up holding more than one book
// and no barcode is held by more than one student.
func verifyInvariant(client *http.Client, baseURL string, students []uint64) bool {
	holders := make(map[string][]uint64)
	ok := true

	for _, id := range students {
		resp, err := client.Get(fmt.Sprintf("%s/student-loans/%d", baseURL, id))
		if err != nil {
			fmt.Printf("student %d: %v\n", id, err)
			return false
		}

		var loans []activeLoan
		err = json.NewDecoder(resp.Body).Decode(&loans)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("student %d: %v\n", id, err)
			return false
		}

		if len(loans) > 1 {
			fmt.Printf("VIOLATION: student %d holds %d books\n", id, len(loans))
			ok = false
		}
		for _, l := range loans {
			holders[l.Barcode] = append(holders[l.Barcode], id)
		}
	}

	for barcode, ids := range holders {
		if len(ids) > 1 {
			fmt.Printf("VIOLATION: book %s is held by students %v\n", barcode, ids)
			ok = false
		}
	}

	if ok {
		fmt.Println("Invariant holds: at most one open loan per student and per book")
	}
	return ok
}

func printResults(s *stats, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := slices.Clone(s.responseTimes)
	slices.Sort(times)
	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:   %d in %.2fs (%.1f req/s)\n", s.total, elapsed.Seconds(), float64(s.total)/elapsed.Seconds())
	fmt.Printf("P50 / P90 / P99: %v / %v / %v\n", percentile(50), percentile(90), percentile(99))

	fmt.Println("\n----------------- OUTCOMES -----------------")
	keys := make([]string, 0, len(s.outcomes))
	for k := range s.outcomes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("%-32s %d\n", k, s.outcomes[k])
	}
}

func parseIDs(raw string) []uint64 {
	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &id); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

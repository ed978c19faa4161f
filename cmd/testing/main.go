package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

var URL, _ = os.LookupEnv("API_URL")
var PORT, _ = os.LookupEnv("API_PORT")
var encounterTypesURL = fmt.Sprintf("http://%s:%s/api/v1/encounter-types", URL, PORT)

const (
	workers  = 10
	duration = 30 * time.Second
)

// a small pool so concurrent workers collide on names
var names = []string{"Admission", "Discharge", "Transfer", "Outpatient", "Emergency", "Follow up"}

type EncounterType struct {
	UUID        string  `json:"uuid,omitempty"`
	Name        *string `json:"name"`
	Description string  `json:"description,omitempty"`
}

type stats struct {
	mu       sync.Mutex
	statuses map[int]int
	failures int
}

func (s *stats) record(status int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failures++
		return
	}
	s.statuses[status]++
}

func (s *stats) print() {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]int, 0, len(s.statuses))
	for code := range s.statuses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("status %d: %d\n", code, s.statuses[code])
	}
	fmt.Printf("transport failures: %d\n", s.failures)
}

func main() {
	st := &stats{statuses: map[int]int{}}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			start := time.Now()
			for time.Since(start) < duration {
				status, err := sendEncounterType()
				if err != nil {
					fmt.Println("Error sending encounter type:", err)
				}
				st.record(status, err)

				time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				st.print()
			}
		}
	}()

	wg.Wait()
	close(done)
	st.print()
	printConflicts()
}

func sendEncounterType() (int, error) {
	data, err := json.Marshal(createEncounterType())
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, encounterTypesURL, bytes.NewBuffer(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var body interface{}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, fmt.Errorf("error decoding response: %w", err)
	}
	fmt.Printf("Encounter type sent. Status code: %d, Message: %v\n", resp.StatusCode, body)
	return resp.StatusCode, nil
}

// createEncounterType mostly reuses pooled names; a few requests are blank or carry a broken uuid.
func createEncounterType() EncounterType {
	name := names[rand.Intn(len(names))]
	if rand.Float64() < 0.3 {
		name = fmt.Sprintf("%s %d", name, rand.Intn(1000))
	}
	if rand.Float64() < 0.05 {
		name = "   "
	}

	et := EncounterType{UUID: uuid.New().String(), Name: &name}
	if rand.Float64() < 0.05 {
		et.UUID = et.UUID[:10]
	}
	return et
}

// printConflicts lists the active encounter types; a name seen twice means validation was bypassed.
func printConflicts() {
	resp, err := http.Get(encounterTypesURL)
	if err != nil {
		fmt.Println("Error listing encounter types:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("Wrong status code:", resp.StatusCode)
		return
	}

	var listResponse struct {
		Results []EncounterType `json:"results"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		fmt.Println("Error decoding encounter types:", err)
		return
	}

	seen := map[string]int{}
	for _, et := range listResponse.Results {
		if et.Name != nil {
			seen[*et.Name]++
		}
	}
	duplicates := 0
	for name, count := range seen {
		if count > 1 {
			duplicates++
			fmt.Printf("Duplicate active name %q: %d records\n", name, count)
		}
	}
	fmt.Printf("Active encounter types: %d, duplicated names: %d\n", len(listResponse.Results), duplicates)
}

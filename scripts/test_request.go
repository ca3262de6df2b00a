//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Smoke-тест эндпойнтов: ищет POI вдоль борта и запрашивает детали
func main() {
	apiAddr := flag.String("api", "http://localhost:8080", "API base URL")
	icao24 := flag.String("icao24", "3c6444", "aircraft ICAO24 identifier")
	flag.Parse()

	body, _ := json.Marshal(map[string]interface{}{
		"distance": 400,
		"overpass_filters": []map[string]interface{}{
			{"key": "place", "operator": "=", "value": "city"},
			{"key": "place", "operator": "=", "value": "village"},
			{"key": "natural", "operator": "=", "value": "water"},
		},
	})

	url := fmt.Sprintf("%s/poi/flight/%s/pois", *apiAddr, *icao24)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("POI search request failed: %v", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("POI search: %d\n%s\n", resp.StatusCode, data)

	detailsBody, _ := json.Marshal(map[string]interface{}{
		"poi_ids": []int64{240109189},
	})

	resp2, err := http.Post(*apiAddr+"/poi/pois/details", "application/json", bytes.NewReader(detailsBody))
	if err != nil {
		log.Fatalf("POI details request failed: %v", err)
	}
	defer resp2.Body.Close()

	data2, _ := io.ReadAll(resp2.Body)
	fmt.Printf("POI details: %d\n%s\n", resp2.StatusCode, data2)
}

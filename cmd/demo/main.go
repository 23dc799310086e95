// Command demo drives a running wayfarer server through one full
// planning session: generate an itinerary, switch to the map view,
// save the trip and list the saved collection. Useful for smoke-testing
// a deployment with a real API key.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wayfarer/internal/models"
)

func post(base, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(base+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s: status %d: %s", path, resp.StatusCode, data)
	}
	return data, nil
}

func main() {
	base := flag.String("server", "http://localhost:8080", "wayfarer server base URL")
	destination := flag.String("destination", "Tokyo", "where to go")
	flag.Parse()

	start := time.Now().AddDate(0, 1, 0)
	req := models.TripRequest{
		Destination: *destination,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 0, 4).Format("2006-01-02"),
		Budget:      1500,
		Style:       models.StyleAdventure,
	}

	log.WithFields(log.Fields{
		"destination": req.Destination,
		"start":       req.StartDate,
		"end":         req.EndDate,
	}).Info("requesting itinerary")

	data, err := post(*base, "/api/plan", req)
	if err != nil {
		log.WithError(err).Fatal("plan request failed")
	}

	var it models.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		log.WithError(err).Fatal("unexpected plan response")
	}
	log.WithFields(log.Fields{
		"id":    it.ID,
		"days":  len(it.DailyPlans),
		"total": it.TotalEstimatedCost,
	}).Info("itinerary generated")

	if _, err := post(*base, "/api/plan/view", map[string]string{"mode": "map"}); err != nil {
		log.WithError(err).Fatal("view switch failed")
	}

	resp, err := http.Get(*base + "/api/plan/map")
	if err != nil {
		log.WithError(err).Fatal("map fetch failed")
	}
	geo, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	log.WithField("bytes", len(geo)).Info("map layer fetched")

	if _, err := post(*base, "/api/plan/save", nil); err != nil {
		log.WithError(err).Fatal("save failed")
	}

	resp, err = http.Get(*base + "/api/trips")
	if err != nil {
		log.WithError(err).Fatal("listing trips failed")
	}
	defer resp.Body.Close()
	var trips []models.Itinerary
	if err := json.NewDecoder(resp.Body).Decode(&trips); err != nil {
		log.WithError(err).Fatal("unexpected trips response")
	}
	log.WithField("saved", len(trips)).Info("demo complete")
}

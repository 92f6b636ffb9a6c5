package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Publish a burst of sensor updates per device to the device-updates topic
// 2. Wait for the ingest worker to apply them
// 3. Check that the current state of each device is its last update
// 4. Check that the burst was debounced into a single history snapshot

type deviceData struct {
	Device struct {
		DeviceID string         `json:"device_id"`
		Payload  map[string]any `json:"payload"`
	} `json:"device"`
}

type deviceHistory struct {
	History []json.RawMessage `json:"history"`
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated Kafka brokers")
	topic := flag.String("topic", "device-updates", "device updates topic")
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	wait := flag.Duration("wait", 10*time.Second, "time to let the consumer catch up")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	run := time.Now().UnixNano()
	deviceIDs := []string{
		fmt.Sprintf("e2e-%d-a", run),
		fmt.Sprintf("e2e-%d-b", run),
	}
	const updates = 5

	var messages []kafka.Message
	for _, id := range deviceIDs {
		for i := 0; i < updates; i++ {
			value, _ := json.Marshal(map[string]any{
				"device_id": id,
				"payload":   map[string]any{"temperature": 20 + i},
			})
			messages = append(messages, kafka.Message{Key: []byte(id), Value: value})
		}
	}
	if err := writer.WriteMessages(context.Background(), messages...); err != nil {
		fmt.Printf("failed to write messages: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Published %d updates to Kafka topic '%s'\n", len(messages), *topic)

	time.Sleep(*wait)

	failed := false
	for _, id := range deviceIDs {
		var current deviceData
		if err := getJSON(*baseURL+"/device-data/"+id, &current); err != nil {
			fmt.Printf("Error fetching %s: %v\n", id, err)
			failed = true
			continue
		}
		if got := current.Device.Payload["temperature"]; got != float64(20+updates-1) {
			fmt.Printf("Device %s: expected temperature %d, got %v\n", id, 20+updates-1, got)
			failed = true
		}

		var history deviceHistory
		if err := getJSON(*baseURL+"/device-data/"+id+"/history", &history); err != nil {
			fmt.Printf("Error fetching history for %s: %v\n", id, err)
			failed = true
			continue
		}
		if len(history.History) != 1 {
			fmt.Printf("Device %s: expected 1 snapshot, got %d\n", id, len(history.History))
			failed = true
		}
	}

	if failed {
		fmt.Println("E2E test failed")
		os.Exit(1)
	}
	fmt.Println("E2E test completed")
}

func getJSON(url string, v any) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

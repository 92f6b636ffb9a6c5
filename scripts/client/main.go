package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	flag.Parse()

	// 1. POST /device-data for a sensor and an actuator
	post(*baseURL+"/device-data", map[string]any{
		"device_id":   "thermo-1",
		"name":        "Living room",
		"device_type": "sensor",
		"payload":     map[string]any{"temperature": 21.5, "humidity": 40},
	})
	post(*baseURL+"/device-data", map[string]any{
		"device_id":   "lamp-1",
		"name":        "Porch lamp",
		"device_type": "actuator",
		"payload":     map[string]any{"on": false, "brightness": 80},
	})

	// 2. PUT /device-data/{id} to switch the lamp on, keeping brightness
	body, _ := json.Marshal(map[string]any{
		"device_id":   "lamp-1",
		"device_type": "actuator",
		"payload":     map[string]any{"on": true},
	})
	req, err := http.NewRequest(http.MethodPut, *baseURL+"/device-data/lamp-1", bytes.NewReader(body))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	printResponse("PUT /device-data/lamp-1", resp)

	// 3. Read everything back
	for _, path := range []string{
		"/device-data/thermo-1",
		"/device-data/thermo-1/history?limit=10",
		"/device-data/lamp-1/history",
		"/actuators",
		"/actuators/lamp-1/status",
	} {
		resp, err := http.Get(*baseURL + path)
		if err != nil {
			panic(err)
		}
		printResponse("GET "+path, resp)
	}
}

func post(url string, v any) {
	payload, _ := json.Marshal(v)
	fmt.Println("Payload:", string(payload))
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	printResponse("POST /device-data", resp)
}

func printResponse(label string, resp *http.Response) {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s status: %s\n%s\n", label, resp.Status, string(body))
}

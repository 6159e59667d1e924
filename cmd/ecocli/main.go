// Command ecocli is a small smoke client for a running ecowise instance:
// it logs in, generates a wallet, requests an airdrop and prints the
// resulting balance and token counter.
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

func main() {
	base := flag.String("base", "http://localhost:8888", "ecowise server base URL")
	email := flag.String("email", "demo@ecowise.app", "login email")
	password := flag.String("password", "demo-pass", "login password")
	airdrop := flag.Float64("airdrop", 1, "airdrop amount in SOL")
	flag.Parse()

	post(*base+"/api/auth/login", map[string]any{
		"email":    *email,
		"password": *password,
	})
	post(*base+"/api/wallet/init", nil)
	post(*base+"/api/wallet/airdrop", map[string]any{"amount": *airdrop})
	get(*base + "/api/wallet")
}

func post(url string, payload map[string]any) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	do(req)
}

func get(url string) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	do(req)
}

func do(req *http.Request) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	fmt.Printf("%s %s -> %d\n%s\n\n", req.Method, req.URL.Path, resp.StatusCode, data)
}

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetContractCreator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("chainid") != "10143" {
			t.Errorf("chainid = %q, want 10143", q.Get("chainid"))
		}
		if q.Get("module") != "contract" || q.Get("action") != "getcontractcreation" {
			t.Errorf("unexpected module/action: %v", q)
		}
		if q.Get("contractaddresses") != "0xtoken" {
			t.Errorf("contractaddresses = %q, want 0xtoken", q.Get("contractaddresses"))
		}
		if q.Get("apikey") != "test-key" {
			t.Errorf("apikey = %q, want test-key", q.Get("apikey"))
		}
		w.Write([]byte(`{
			"status": "1",
			"message": "OK",
			"result": [
				{"contractAddress": "0xtoken", "contractCreator": "0xcreator", "txHash": "0xdeadbeef"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewEtherscanClient(srv.URL, "test-key", 10143, 5*time.Second, zap.NewNop())
	creator, err := c.GetContractCreator(context.Background(), "0xtoken")
	if err != nil {
		t.Fatalf("GetContractCreator: %v", err)
	}
	if creator != "0xcreator" {
		t.Errorf("creator = %q, want 0xcreator", creator)
	}
}

func TestGetContractCreatorErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "0", "message": "No data found", "result": []}`))
	}))
	defer srv.Close()

	c := NewEtherscanClient(srv.URL, "", 10143, 5*time.Second, zap.NewNop())
	if _, err := c.GetContractCreator(context.Background(), "0xtoken"); err == nil {
		t.Fatal("expected error for status 0 response")
	}
}

func TestGetContractCreatorEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "1", "message": "OK", "result": []}`))
	}))
	defer srv.Close()

	c := NewEtherscanClient(srv.URL, "", 10143, 5*time.Second, zap.NewNop())
	if _, err := c.GetContractCreator(context.Background(), "0xtoken"); err == nil {
		t.Fatal("expected error for empty result")
	}
}

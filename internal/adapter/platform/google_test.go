package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adrecon/internal/auth"
	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

func googleCreds() domain.PlatformCredentials {
	return domain.PlatformCredentials{
		GoogleAccessToken:    "google-token",
		GoogleTokenExpiresAt: time.Now().Add(time.Hour),
		GoogleDeveloperToken: "dev-token",
		GoogleManagerID:      "1112223333",
	}
}

func TestGoogleFetchAccountActivity(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if r.URL.Path != "/customers/777/googleAds:search" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer google-token" {
			t.Errorf("authorization: got %q", got)
		}
		if got := r.Header.Get("developer-token"); got != "dev-token" {
			t.Errorf("developer-token: got %q", got)
		}
		if got := r.Header.Get("login-customer-id"); got != "1112223333" {
			t.Errorf("login-customer-id: got %q", got)
		}

		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotQuery = req.Query

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"campaign": {"id":"101","name":"Search Brand","status":"ENABLED"},
					"campaignBudget": {"amountMicros":"50000000"},
					"metrics": {"costMicros":"12340000","impressions":"10"}
				},
				{
					"campaign": {"id":"102","name":"Display","status":"ENABLED"},
					"campaignBudget": {"amountMicros":"0"},
					"metrics": {"costMicros":"5000000","impressions":"20"}
				}
			]
		}`))
	}))
	defer srv.Close()

	tokens := auth.NewGoogleTokenManager(nil, discardLogger())
	c := NewGoogleAdsClient(srv.URL, tokens, discardLogger())

	window := port.DateWindow{
		Since: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	activity, err := c.FetchAccountActivity(context.Background(), "777", googleCreds(), window)
	if err != nil {
		t.Fatalf("FetchAccountActivity error: %v", err)
	}

	// Segment dates carry no separators.
	if !strings.Contains(gotQuery, "segments.date = '20260228'") {
		t.Fatalf("query date: got %q", gotQuery)
	}
	if strings.Contains(gotQuery, "2026-02-28") {
		t.Fatalf("query must not use a dashed date: %q", gotQuery)
	}

	if activity.ActiveCampaignCount != 2 {
		t.Fatalf("active campaigns: got %d, want 2", activity.ActiveCampaignCount)
	}
	// 12,340,000 + 5,000,000 micros is 1234 + 500 minor units.
	if activity.TotalCostMinorUnits != 1734 {
		t.Fatalf("cost: got %d, want 1734", activity.TotalCostMinorUnits)
	}
	if activity.TotalImpressions != 30 {
		t.Fatalf("impressions: got %d, want 30", activity.TotalImpressions)
	}
	if activity.Campaigns[0].DailyBudget != 5000 {
		t.Fatalf("campaign budget: got %d, want 5000", activity.Campaigns[0].DailyBudget)
	}
	if !activity.Campaigns[0].Eligible(time.Now()) {
		t.Fatalf("enabled campaign must map to the eligible shape: %+v", activity.Campaigns[0])
	}
}

func TestGoogleManagerHeaderOptional(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Login-Customer-Id"]; ok {
			t.Error("login-customer-id must be absent without a manager account")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	tokens := auth.NewGoogleTokenManager(nil, discardLogger())
	c := NewGoogleAdsClient(srv.URL, tokens, discardLogger())

	creds := googleCreds()
	creds.GoogleManagerID = ""
	if _, err := c.FetchAccountActivity(context.Background(), "777", creds, testWindow()); err != nil {
		t.Fatalf("FetchAccountActivity error: %v", err)
	}
}

func TestGoogleServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"status":"PERMISSION_DENIED"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	tokens := auth.NewGoogleTokenManager(nil, discardLogger())
	c := NewGoogleAdsClient(srv.URL, tokens, discardLogger())

	if _, err := c.FetchAccountActivity(context.Background(), "777", googleCreds(), testWindow()); err == nil {
		t.Fatal("expected error on 403 response")
	}
}

func TestGoogleAdSetsNoop(t *testing.T) {
	c := NewGoogleAdsClient("http://unused.test", auth.NewGoogleTokenManager(nil, discardLogger()), discardLogger())
	adSets, err := c.AdSets(context.Background(), "101", googleCreds())
	if err != nil || adSets != nil {
		t.Fatalf("AdSets: got (%v, %v), want (nil, nil)", adSets, err)
	}
}

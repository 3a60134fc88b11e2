package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// MetaClient fetches campaign and insight data from the Meta-style graph
// API. Authentication is a bearer token passed as a query parameter.
type MetaClient struct {
	baseURL    string
	pageSize   int
	maxPages   int
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewMetaClient returns a client for the graph API at baseURL (including the
// API version segment). pageSize caps campaigns per page and maxPages bounds
// pagination per account; exceeding the page cap is logged, not fatal.
func NewMetaClient(baseURL string, pageSize, maxPages int, logger *slog.Logger) *MetaClient {
	return &MetaClient{
		baseURL:    baseURL,
		pageSize:   pageSize,
		maxPages:   maxPages,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		now:        time.Now,
	}
}

type metaCampaignsResponse struct {
	Data []struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Status          string `json:"status"`
		EffectiveStatus string `json:"effective_status"`
		DailyBudget     string `json:"daily_budget"`
		EndTime         string `json:"stop_time"`
	} `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type metaAdSetsResponse struct {
	Data []struct {
		ID              string `json:"id"`
		CampaignID      string `json:"campaign_id"`
		Name            string `json:"name"`
		Status          string `json:"status"`
		EffectiveStatus string `json:"effective_status"`
		DailyBudget     string `json:"daily_budget"`
	} `json:"data"`
}

type metaInsightsResponse struct {
	Data []struct {
		AccountName string `json:"account_name"`
		Spend       string `json:"spend"`
		Impressions string `json:"impressions"`
	} `json:"data"`
}

// FetchAccountActivity pages through the account's campaigns, filters them to
// eligible ones and issues a single account-level insights call for spend and
// impressions over the window.
func (c *MetaClient) FetchAccountActivity(ctx context.Context, accountID string, creds domain.PlatformCredentials, window port.DateWindow) (*port.AccountActivity, error) {
	campaigns, err := c.fetchCampaigns(ctx, accountID, creds.MetaAccessToken)
	if err != nil {
		return nil, err
	}

	now := c.now()
	eligible := make([]domain.Campaign, 0, len(campaigns))
	for _, cmp := range campaigns {
		if cmp.Eligible(now) {
			eligible = append(eligible, cmp)
		}
	}

	activity := &port.AccountActivity{
		ActiveCampaignCount: len(eligible),
		Campaigns:           eligible,
	}

	if err = c.fetchInsights(ctx, accountID, creds.MetaAccessToken, window, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (c *MetaClient) fetchCampaigns(ctx context.Context, accountID, token string) ([]domain.Campaign, error) {
	q := url.Values{}
	q.Set("fields", "id,name,status,effective_status,daily_budget,stop_time")
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("access_token", token)
	next := fmt.Sprintf("%s/act_%s/campaigns?%s", c.baseURL, accountID, q.Encode())

	var campaigns []domain.Campaign
	for page := 0; next != ""; page++ {
		if page >= c.maxPages {
			c.logger.Warn("campaign pagination cap reached",
				slog.String("account_id", accountID),
				slog.Int("pages", page),
			)
			break
		}

		var resp metaCampaignsResponse
		if err := c.get(ctx, next, &resp); err != nil {
			return nil, fmt.Errorf("meta campaigns page %d: %w", page+1, err)
		}
		for _, raw := range resp.Data {
			campaigns = append(campaigns, domain.Campaign{
				ID:              raw.ID,
				Name:            raw.Name,
				Status:          raw.Status,
				EffectiveStatus: raw.EffectiveStatus,
				DailyBudget:     parseMinorUnits(raw.DailyBudget),
				EndTime:         parseGraphTime(raw.EndTime),
			})
		}
		next = resp.Paging.Next
	}
	return campaigns, nil
}

func (c *MetaClient) fetchInsights(ctx context.Context, accountID, token string, window port.DateWindow, activity *port.AccountActivity) error {
	timeRange, err := json.Marshal(map[string]string{
		"since": window.Since.Format("2006-01-02"),
		"until": window.Until.Format("2006-01-02"),
	})
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("fields", "account_name,spend,impressions")
	q.Set("time_range", string(timeRange))
	q.Set("access_token", token)
	endpoint := fmt.Sprintf("%s/act_%s/insights?%s", c.baseURL, accountID, q.Encode())

	var resp metaInsightsResponse
	if err = c.get(ctx, endpoint, &resp); err != nil {
		return fmt.Errorf("meta insights: %w", err)
	}
	for _, row := range resp.Data {
		activity.AccountName = row.AccountName
		activity.TotalCostMinorUnits += parseSpendMinorUnits(row.Spend)
		if v, err := strconv.ParseInt(row.Impressions, 10, 64); err == nil {
			activity.TotalImpressions += v
		}
	}
	return nil
}

// AdSets returns the campaign's ad sets for the budget fallback.
func (c *MetaClient) AdSets(ctx context.Context, campaignID string, creds domain.PlatformCredentials) ([]domain.AdSet, error) {
	q := url.Values{}
	q.Set("fields", "id,campaign_id,name,status,effective_status,daily_budget")
	q.Set("access_token", creds.MetaAccessToken)
	endpoint := fmt.Sprintf("%s/%s/adsets?%s", c.baseURL, campaignID, q.Encode())

	var resp metaAdSetsResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("meta adsets: %w", err)
	}

	adSets := make([]domain.AdSet, 0, len(resp.Data))
	for _, raw := range resp.Data {
		adSets = append(adSets, domain.AdSet{
			ID:              raw.ID,
			CampaignID:      raw.CampaignID,
			Name:            raw.Name,
			Status:          raw.Status,
			EffectiveStatus: raw.EffectiveStatus,
			DailyBudget:     parseMinorUnits(raw.DailyBudget),
		})
	}
	return adSets, nil
}

func (c *MetaClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("graph api returned %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseMinorUnits parses a graph-API budget string, already denominated in
// minor units. Absent or malformed values count as no budget.
func parseMinorUnits(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseSpendMinorUnits parses an insights spend string, denominated in whole
// currency units with a decimal fraction, into minor units.
func parseSpendMinorUnits(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(v*100 + 0.5)
}

func parseGraphTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04:05-0700", s)
	if err != nil {
		return nil
	}
	return &t
}

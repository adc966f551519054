package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-resto-backoffice/internal/report"
	"go-resto-backoffice/internal/store"
)

// Fixed user-facing strings for the insight boundary. External-service
// failures are always converted to one of these; they never propagate.
const (
	insightMissingKey  = "AI Service Unavailable: Missing API Key."
	insightEmptyReply  = "Could not generate insights at this time."
	insightServiceDown = "Error connecting to AI service. Please check your internet or API key."
)

const defaultInsightEndpoint = "https://generativelanguage.googleapis.com"

type InsightService interface {
	GenerateInsight(ctx context.Context) string
}

// insightService asks a text-generation API for an executive summary of one
// aggregate snapshot. Only the pre-summarized numbers leave the boundary.
type insightService struct {
	store    *store.Store
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewInsightService(st *store.Store, apiKey, model string) InsightService {
	return &insightService{
		store:    st,
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultInsightEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateInsight always returns a prose string; any failure degrades to a
// fixed fallback message.
func (s *insightService) GenerateInsight(ctx context.Context) string {
	if s.apiKey == "" {
		return insightMissingKey
	}

	snapshot := report.BuildSnapshot(s.store.Sales(), s.store.Expenses(), s.store.Inventory())
	prompt := buildInsightPrompt(snapshot)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return insightServiceDown
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.endpoint, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return insightServiceDown
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return insightServiceDown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return insightServiceDown
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return insightServiceDown
	}

	var generated struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &generated); err != nil {
		return insightServiceDown
	}

	if len(generated.Candidates) == 0 || len(generated.Candidates[0].Content.Parts) == 0 {
		return insightEmptyReply
	}

	text := generated.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return insightEmptyReply
	}
	return text
}

// buildInsightPrompt embeds the aggregate snapshot into the consultant prompt.
func buildInsightPrompt(snapshot report.Snapshot) string {
	topItems := make([]string, 0, len(snapshot.TopItems))
	for _, item := range snapshot.TopItems {
		topItems = append(topItems, fmt.Sprintf("%s (%d)", item.Name, item.Quantity))
	}
	topLine := strings.Join(topItems, ", ")
	if topLine == "" {
		topLine = "No sales data yet"
	}

	lowStockLine := strings.Join(snapshot.LowStock, ", ")
	if lowStockLine == "" {
		lowStockLine = "None"
	}

	return fmt.Sprintf(`Act as a senior restaurant consultant. Analyze the following data snapshot for a small family restaurant:

- Total Revenue (All time): $%.2f
- Total Expenses (All time): $%.2f
- Net Profit: $%.2f
- Top Selling Items: %s
- Low Stock Warnings: %s

Provide a concise, 3-bullet point executive summary.
1. Highlight a positive trend or achievement.
2. Identify a critical risk (especially regarding inventory or profit margins).
3. Give one actionable specific recommendation to improve sales or cut costs next week.

Keep the tone encouraging but professional. Use Markdown formatting.`,
		snapshot.TotalRevenue, snapshot.TotalExpenses, snapshot.NetProfit, topLine, lowStockLine)
}

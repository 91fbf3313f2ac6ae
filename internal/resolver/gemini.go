package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"PriceProphet/internal/collector"
)

// ErrNotFound means no listed NSE/BSE ticker could be resolved for the
// company name.
var ErrNotFound = errors.New("no valid ticker found")

// defaultBaseURL is the Gemini generateContent endpoint root.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// tickerPattern matches Yahoo Finance symbols for Indian exchanges,
// e.g. RELIANCE.NS or TATAMOTORS.BO.
var tickerPattern = regexp.MustCompile(`[A-Z0-9&\-]+\.(?:NS|BO)`)

// GeminiResolver maps a free-text company name to a validated exchange
// ticker by asking the Gemini API for candidates and checking each one
// against the market-data provider.
type GeminiResolver struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
	Fetcher collector.Fetcher
}

// NewGeminiResolver creates a resolver with optional proxy support.
func NewGeminiResolver(apiKey, model, proxyURL string, fetcher collector.Fetcher) *GeminiResolver {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GeminiResolver{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Fetcher: fetcher,
	}
}

// Resolve returns the first candidate ticker that both matches the expected
// symbol format and has data on the market-data provider. Input that already
// looks like a ticker skips the LLM query and goes straight to validation.
func (r *GeminiResolver) Resolve(company string) (string, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", fmt.Errorf("%w: empty company name", ErrNotFound)
	}

	var candidates []string
	if ticker := tickerPattern.FindString(strings.ToUpper(company)); ticker == strings.ToUpper(company) && ticker != "" {
		candidates = []string{ticker}
	} else {
		var err error
		candidates, err = r.queryCandidates(company)
		if err != nil {
			return "", err
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w for %q", ErrNotFound, company)
	}

	for _, ticker := range candidates {
		if r.validate(ticker) {
			return ticker, nil
		}
	}
	return "", fmt.Errorf("%w for %q: no candidate in %v validated", ErrNotFound, company, candidates)
}

// geminiRequest / geminiResponse model the generateContent wire format.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (r *GeminiResolver) queryCandidates(company string) ([]string, error) {
	prompt := fmt.Sprintf(`You are a financial expert specializing in Indian stock markets.

Task: Find the Yahoo Finance ticker symbol for a company listed on NSE or BSE.

Company Name/Input: %q

Instructions:
- Match fuzzily: partial names, brand names, abbreviations and typos all count.
- If the input is an unlisted subsidiary or brand, return the listed PARENT company's ticker.
- Ticker format: NSE preferred with .NS suffix, BSE alternative with .BO suffix. If listed on both, return both, NSE first.
- If no match exists, respond with exactly NOT_FOUND.
- Return ONLY ticker symbols, one per line. No explanations.

Now find the ticker for: %q`, company, company)

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.BaseURL, url.PathEscape(r.Model), url.QueryEscape(r.APIKey))
	resp, err := r.Client.Post(apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("query gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if gr.Error != nil {
		return nil, fmt.Errorf("gemini API error: %s", gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, nil
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	if strings.Contains(strings.ToUpper(text), "NOT_FOUND") {
		return nil, nil
	}
	return ParseCandidates(text), nil
}

// ParseCandidates extracts deduplicated ticker symbols from an LLM reply.
func ParseCandidates(text string) []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, match := range tickerPattern.FindAllString(strings.ToUpper(text), -1) {
		if !seen[match] {
			seen[match] = true
			tickers = append(tickers, match)
		}
	}
	return tickers
}

// validate checks that a candidate ticker has recent price data.
func (r *GeminiResolver) validate(ticker string) bool {
	points, err := r.Fetcher.FetchDailyCloses(ticker, 5)
	if err != nil {
		log.Printf("[WARN] ticker %s failed validation: %v", ticker, err)
		return false
	}
	if len(points) == 0 {
		log.Printf("[WARN] ticker %s has no price data", ticker)
		return false
	}
	return true
}

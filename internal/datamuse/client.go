// Package datamuse provides a client for the Datamuse word-finding API.
// It builds rhyme and similar-meaning queries and decodes the word lists
// the API returns.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the public Datamuse words endpoint.
const DefaultBaseURL = "https://api.datamuse.com/words"

// Word is a single result returned by the API.
type Word struct {
	Word         string   `json:"word"`
	Score        *int     `json:"score,omitempty"`
	NumSyllables *int     `json:"numSyllables,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Attribute returns the named field of w. Optional fields that the API
// left out are reported as absent.
func (w Word) Attribute(name string) (any, bool) {
	switch name {
	case "word":
		return w.Word, true
	case "numSyllables":
		if w.NumSyllables == nil {
			return nil, false
		}
		return *w.NumSyllables, true
	case "score":
		if w.Score == nil {
			return nil, false
		}
		return *w.Score, true
	}
	return nil, false
}

// Relation is the kind of word relation being queried.
type Relation int

const (
	RelationRhymes Relation = iota
	RelationSimilar
)

// String returns a human-readable name for the relation.
func (r Relation) String() string {
	switch r {
	case RelationRhymes:
		return "rhymes"
	case RelationSimilar:
		return "similar"
	default:
		return "unknown"
	}
}

// param returns the query parameter name the API uses for the relation.
func (r Relation) param() string {
	if r == RelationSimilar {
		return "ml"
	}
	return "rel_rhy"
}

// Client talks to a Datamuse-compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// BaseURL returns the endpoint the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL builds the request URL for a relation query on word.
func (c *Client) URL(rel Relation, word string) string {
	q := url.Values{}
	q.Set(rel.param(), word)
	return c.baseURL + "?" + q.Encode()
}

// RhymesURL builds the request URL for words rhyming with word.
func (c *Client) RhymesURL(word string) string {
	return c.URL(RelationRhymes, word)
}

// SimilarURL builds the request URL for words with a meaning similar to word.
func (c *Client) SimilarURL(word string) string {
	return c.URL(RelationSimilar, word)
}

// Fetch requests reqURL and decodes the response as a list of words.
func (c *Client) Fetch(ctx context.Context, reqURL string) ([]Word, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var words []Word
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return words, nil
}

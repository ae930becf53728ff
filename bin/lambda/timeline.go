package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	twitterAPIBase  = "https://api.twitter.com"
	appAuthTokenURL = twitterAPIBase + "/oauth2/token"
	timelinePath    = "/1.1/statuses/user_timeline.json"

	// The v1.1 default page size; matching went over the most recent
	// 20 tweets from the start and the cadence keeps that sufficient.
	timelineFetchCount = 20
)

// Tweet is the slice of the v1.1 status object the listener cares about.
type Tweet struct {
	ID       string `json:"id_str"`
	FullText string `json:"full_text"`
	Text     string `json:"text"`
}

// Body returns the tweet text regardless of whether the API answered in
// extended mode.
func (t Tweet) Body() string {
	if t.FullText != "" {
		return t.FullText
	}
	return t.Text
}

type timelineClient struct {
	httpClient *http.Client
	baseURL    string
}

// newTimelineClient builds an authorized API client: OAuth1 user-context
// signing when the access token pair is present, app-only OAuth2 bearer
// otherwise.
func newTimelineClient(ctx context.Context, creds Credentials) *timelineClient {
	var httpClient *http.Client
	if creds.userContext() {
		cfg := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
		httpClient = cfg.Client(ctx, oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret))
	} else {
		cfg := clientcredentials.Config{
			ClientID:     creds.ConsumerKey,
			ClientSecret: creds.ConsumerSecret,
			TokenURL:     appAuthTokenURL,
		}
		httpClient = cfg.Client(ctx)
	}

	return &timelineClient{httpClient: httpClient, baseURL: twitterAPIBase}
}

// RecentTweets fetches the most recent tweets in the user's timeline.
func (c *timelineClient) RecentTweets(ctx context.Context, screenName string) ([]Tweet, error) {
	query := url.Values{
		"screen_name": {screenName},
		"count":       {strconv.Itoa(timelineFetchCount)},
		"tweet_mode":  {"extended"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+timelinePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build timeline request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timeline request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("timeline request returned %s: %s", resp.Status, body)
	}

	var tweets []Tweet
	if err := json.NewDecoder(resp.Body).Decode(&tweets); err != nil {
		return nil, fmt.Errorf("failed to decode timeline response: %w", err)
	}

	return tweets, nil
}

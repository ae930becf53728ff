package model

import "fmt"

// WatchRequest is the static payload the schedule rule delivers to the
// listener on every tick. Field names are the wire contract shared with
// the deployed rule input, so changes here require a redeploy.
type WatchRequest struct {
	Subject           string   `json:"subject"`
	ConsumerKey       string   `json:"consumer_key"`
	ConsumerSecret    string   `json:"consumer_secret"`
	AccessToken       string   `json:"access_token"`
	AccessTokenSecret string   `json:"access_token_secret"`
	ScreenName        string   `json:"screen_name"`
	SearchTerms       []string `json:"search_terms"`
	SpecialUnicode    []int    `json:"special_unicode"`
}

// Validate rejects payloads that are missing required inputs. The
// credential fields may be empty; the listener falls back to Secrets
// Manager for those. The filter lists must be present but may be empty,
// in which case every tweet matches.
func (r WatchRequest) Validate() error {
	if r.Subject == "" {
		return missingInput("subject")
	}
	if r.ScreenName == "" {
		return missingInput("screen_name")
	}
	if r.SearchTerms == nil {
		return missingInput("search_terms")
	}
	if r.SpecialUnicode == nil {
		return missingInput("special_unicode")
	}
	return nil
}

func missingInput(field string) error {
	return fmt.Errorf("event payload is missing required input: %s", field)
}

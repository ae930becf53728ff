package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() WatchRequest {
	return WatchRequest{
		Subject:        "Restock alert",
		ScreenName:     "shopbot",
		SearchTerms:    []string{"restock"},
		SpecialUnicode: []int{128293},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestValidateEmptyFiltersAllowed(t *testing.T) {
	req := validRequest()
	req.SearchTerms = []string{}
	req.SpecialUnicode = []int{}

	require.NoError(t, req.Validate())
}

func TestValidateEmptyCredentialsAllowed(t *testing.T) {
	req := validRequest()
	req.ConsumerKey = ""
	req.ConsumerSecret = ""
	req.AccessToken = ""
	req.AccessTokenSecret = ""

	require.NoError(t, req.Validate())
}

func TestValidateMissingInputs(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*WatchRequest)
	}{
		{"subject", func(r *WatchRequest) { r.Subject = "" }},
		{"screen_name", func(r *WatchRequest) { r.ScreenName = "" }},
		{"search_terms", func(r *WatchRequest) { r.SearchTerms = nil }},
		{"special_unicode", func(r *WatchRequest) { r.SpecialUnicode = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

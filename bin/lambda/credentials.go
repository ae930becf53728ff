package main

import (
	"context"
	"encoding/json"
	"fmt"

	"restock-listener/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Credentials holds the Twitter API key material for one invocation. The
// JSON tags double as the schema of the Secrets Manager secret.
type Credentials struct {
	ConsumerKey       string `json:"consumer_key"`
	ConsumerSecret    string `json:"consumer_secret"`
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret"`
}

func (c Credentials) empty() bool {
	return c.ConsumerKey == "" && c.ConsumerSecret == "" &&
		c.AccessToken == "" && c.AccessTokenSecret == ""
}

// userContext reports whether the access token pair is present, which
// selects OAuth1 user-context signing over app-only auth.
func (c Credentials) userContext() bool {
	return c.AccessToken != "" && c.AccessTokenSecret != ""
}

// resolveCredentials prefers payload-supplied credentials and falls back
// to the Secrets Manager secret when the payload ships the usual empty
// placeholders.
func (l *Listener) resolveCredentials(ctx context.Context, req model.WatchRequest) (Credentials, error) {
	creds := Credentials{
		ConsumerKey:       req.ConsumerKey,
		ConsumerSecret:    req.ConsumerSecret,
		AccessToken:       req.AccessToken,
		AccessTokenSecret: req.AccessTokenSecret,
	}
	if !creds.empty() {
		return creds, nil
	}

	if l.secretARN == "" {
		return Credentials{}, fmt.Errorf("payload has no credentials and TWITTER_CREDENTIALS_SECRET_ARN environment variable not set")
	}

	result, err := l.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(l.secretARN),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to get secret value: %w", err)
	}

	if err := json.Unmarshal([]byte(aws.ToString(result.SecretString)), &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to decode credentials secret: %w", err)
	}
	if creds.ConsumerKey == "" || creds.ConsumerSecret == "" {
		return Credentials{}, fmt.Errorf("credentials secret is missing the consumer key pair")
	}

	return creds, nil
}

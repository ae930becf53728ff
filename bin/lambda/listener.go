package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"restock-listener/model"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/lmittmann/tint"
)

// Global AWS clients
var (
	snsClient            *sns.Client
	secretsManagerClient *secretsmanager.Client
)

// This init() function will run once Lambda starts
func init() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic(fmt.Sprintf("failed to load AWS config: %v", err))
	}

	// Here, we initialize AWS clients once
	snsClient = sns.NewFromConfig(cfg)
	secretsManagerClient = secretsmanager.NewFromConfig(cfg)
}

type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type secretReader interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type timelineFetcher interface {
	RecentTweets(ctx context.Context, screenName string) ([]Tweet, error)
}

// Result reports what an invocation did: how many tweets matched and,
// when an alert went out, the SNS message ID.
type Result struct {
	Matched   int    `json:"matched"`
	MessageID string `json:"message_id,omitempty"`
}

type Listener struct {
	publisher   snsPublisher
	secrets     secretReader
	newTimeline func(ctx context.Context, creds Credentials) timelineFetcher
	topicARN    string
	secretARN   string
}

func (l *Listener) Handle(ctx context.Context, req model.WatchRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	creds, err := l.resolveCredentials(ctx, req)
	if err != nil {
		return nil, err
	}

	timeline := l.newTimeline(ctx, creds)
	tweets, err := timeline.RecentTweets(ctx, req.ScreenName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline for %s: %w", req.ScreenName, err)
	}

	matches := matchTweets(tweets, req.SearchTerms, req.SpecialUnicode)
	slog.Info("timeline scanned",
		slog.String("screen_name", req.ScreenName),
		slog.Int("tweets", len(tweets)),
		slog.Int("matches", len(matches)))

	// Only send a message if there are any matching tweets
	if len(matches) == 0 {
		return &Result{}, nil
	}

	messageID, err := l.publishAlert(ctx, req.Subject, strings.Join(matches, "\n\n"))
	if err != nil {
		return nil, err
	}

	return &Result{Matched: len(matches), MessageID: messageID}, nil
}

func (l *Listener) publishAlert(ctx context.Context, subject, message string) (string, error) {
	if l.topicARN == "" {
		return "", fmt.Errorf("sns_topic_arn environment variable not set")
	}

	resp, err := l.publisher.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(l.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish alert: %w", err)
	}

	slog.Info("alert published", slog.String("message_id", aws.ToString(resp.MessageId)))
	return aws.ToString(resp.MessageId), nil
}

func newListener() *Listener {
	return &Listener{
		publisher: snsClient,
		secrets:   secretsManagerClient,
		newTimeline: func(ctx context.Context, creds Credentials) timelineFetcher {
			return newTimelineClient(ctx, creds)
		},
		topicARN:  os.Getenv("sns_topic_arn"),
		secretARN: os.Getenv("TWITTER_CREDENTIALS_SECRET_ARN"),
	}
}

// The Handle method is called here
func main() {
	lambda.Start(newListener().Handle)
}

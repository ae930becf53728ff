package main

import (
	"context"
	"errors"
	"testing"

	"restock-listener/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	input *sns.PublishInput
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeSecrets struct {
	secret string
	err    error
	calls  int
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.secret)}, nil
}

type fakeTimeline struct {
	tweets []Tweet
	err    error
	creds  Credentials
}

func (f *fakeTimeline) RecentTweets(context.Context, string) ([]Tweet, error) {
	return f.tweets, f.err
}

func newTestListener(publisher *fakePublisher, secrets *fakeSecrets, timeline *fakeTimeline) *Listener {
	return &Listener{
		publisher: publisher,
		secrets:   secrets,
		newTimeline: func(_ context.Context, creds Credentials) timelineFetcher {
			timeline.creds = creds
			return timeline
		},
		topicARN:  "arn:aws:sns:us-east-1:123456789012:restock-alerts",
		secretARN: "arn:aws:secretsmanager:us-east-1:123456789012:secret:restock-listener/twitter",
	}
}

func watchRequest() model.WatchRequest {
	return model.WatchRequest{
		Subject:        "Restock alert",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		ScreenName:     "shopbot",
		SearchTerms:    []string{"restock"},
		SpecialUnicode: []int{},
	}
}

func TestHandlePublishesMatches(t *testing.T) {
	publisher := &fakePublisher{}
	timeline := &fakeTimeline{tweets: []Tweet{
		{ID: "1", FullText: "Restock is live"},
		{ID: "2", FullText: "nothing here"},
		{ID: "3", FullText: "Another restock drop"},
	}}
	listener := newTestListener(publisher, &fakeSecrets{}, timeline)

	result, err := listener.Handle(context.Background(), watchRequest())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, "msg-1", result.MessageID)
	require.NotNil(t, publisher.input)
	assert.Equal(t, "Restock alert", aws.ToString(publisher.input.Subject))
	assert.Equal(t, "Restock is live\n\nAnother restock drop", aws.ToString(publisher.input.Message))
	assert.Equal(t, listener.topicARN, aws.ToString(publisher.input.TopicArn))
}

func TestHandleNoMatchesNoPublish(t *testing.T) {
	publisher := &fakePublisher{}
	timeline := &fakeTimeline{tweets: []Tweet{{ID: "1", FullText: "nothing here"}}}
	listener := newTestListener(publisher, &fakeSecrets{}, timeline)

	result, err := listener.Handle(context.Background(), watchRequest())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Matched)
	assert.Empty(t, result.MessageID)
	assert.Nil(t, publisher.input)
}

func TestHandleRejectsInvalidPayload(t *testing.T) {
	listener := newTestListener(&fakePublisher{}, &fakeSecrets{}, &fakeTimeline{})

	req := watchRequest()
	req.ScreenName = ""
	_, err := listener.Handle(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen_name")
}

func TestHandleTimelineErrorFailsInvocation(t *testing.T) {
	timeline := &fakeTimeline{err: errors.New("rate limited")}
	listener := newTestListener(&fakePublisher{}, &fakeSecrets{}, timeline)

	_, err := listener.Handle(context.Background(), watchRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shopbot")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestHandlePublishErrorFailsInvocation(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("topic gone")}
	timeline := &fakeTimeline{tweets: []Tweet{{ID: "1", FullText: "restock"}}}
	listener := newTestListener(publisher, &fakeSecrets{}, timeline)

	_, err := listener.Handle(context.Background(), watchRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic gone")
}

func TestHandleMissingTopicARN(t *testing.T) {
	timeline := &fakeTimeline{tweets: []Tweet{{ID: "1", FullText: "restock"}}}
	listener := newTestListener(&fakePublisher{}, &fakeSecrets{}, timeline)
	listener.topicARN = ""

	_, err := listener.Handle(context.Background(), watchRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sns_topic_arn")
}

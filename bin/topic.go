package main

import (
	"restock-listener/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/jsii-runtime-go"
)

// Notification resources
func createAlertTopic(stack awscdk.Stack) awssns.ITopic {
	topic := awssns.NewTopic(stack, jsii.String("RestockAlertTopic"), &awssns.TopicProps{
		TopicName:   jsii.String("restock-alerts"),
		DisplayName: jsii.String("Restock Alerts"),
	})

	// Single static email subscriber; changing the address is a redeploy
	topic.AddSubscription(awssnssubscriptions.NewEmailSubscription(
		jsii.String(config.MustEnv("ALERT_EMAIL")),
		&awssnssubscriptions.EmailSubscriptionProps{}))

	return topic
}

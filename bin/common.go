package main

import (
	"restock-listener/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssecretsmanager"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type RestockListenerProps struct {
	awscdk.StackProps
}

func initializeStack(scope constructs.Construct, id string, props *RestockListenerProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}

	return awscdk.NewStack(scope, &id, &sprops)
}

// The Twitter API credentials live in an existing Secrets Manager secret;
// the stack references it by name and only grants the listener read access.
func createCredentialsSecret(stack awscdk.Stack) awssecretsmanager.ISecret {
	return awssecretsmanager.Secret_FromSecretNameV2(stack,
		jsii.String("TwitterCredentialsSecret"),
		jsii.String(config.EnvOrDefault("TWITTER_CREDENTIALS_SECRET_NAME", "restock-listener/twitter")))
}

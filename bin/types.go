package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssecretsmanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
)

type ListenerResources struct {
	stack             awscdk.Stack
	alertTopic        awssns.ITopic
	credentialsSecret awssecretsmanager.ISecret
}

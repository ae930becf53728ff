package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3assets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/jsii-runtime-go"
)

// Listener related resources
func createListenerFunction(resources *ListenerResources) (awslambda.Function, awsiam.Role) {
	// Create DLQ for invocations that fail past the platform retries
	deadLetterQueue := createDeadLetterQueue(resources.stack)

	// Create the listener IAM role with topic-scoped publish rights
	listenerRole := createListenerRole(resources)

	// Create the listener Lambda function
	listenerFunction := createLambdaFunction(resources, listenerRole, deadLetterQueue)

	// Grant CloudWatch Logs access scoped to the function's log group
	configureListenerLogging(resources.stack, listenerRole, listenerFunction)

	return listenerFunction, listenerRole
}

func createDeadLetterQueue(stack awscdk.Stack) awssqs.IQueue {
	return awssqs.NewQueue(stack, jsii.String("ListenerDLQ"), &awssqs.QueueProps{
		QueueName:       jsii.String("restock-listener-dlq"),
		RetentionPeriod: awscdk.Duration_Days(jsii.Number(7)),
	})
}

func createLambdaFunction(resources *ListenerResources, role awsiam.Role, dlq awssqs.IQueue) awslambda.Function {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("Could not get file name")
	}
	lambdaDir := filepath.Join(filepath.Dir(filename), "lambda")

	return awslambda.NewFunction(resources.stack, jsii.String("restockListener"), &awslambda.FunctionProps{
		Runtime:         awslambda.Runtime_PROVIDED_AL2(),
		Handler:         jsii.String("bootstrap"),
		Role:            role,
		RetryAttempts:   jsii.Number(2),
		MemorySize:      jsii.Number(128),
		Timeout:         awscdk.Duration_Seconds(jsii.Number(30)),
		Architecture:    awslambda.Architecture_X86_64(),
		DeadLetterQueue: dlq,
		Code:            awslambda.Code_FromAsset(jsii.String(lambdaDir), &awss3assets.AssetOptions{}),
		Environment: &map[string]*string{
			"sns_topic_arn":                  resources.alertTopic.TopicArn(),
			"TWITTER_CREDENTIALS_SECRET_ARN": resources.credentialsSecret.SecretArn(),
		},
	})
}

func createListenerRole(resources *ListenerResources) awsiam.Role {
	listenerRole := awsiam.NewRole(resources.stack, jsii.String("ListenerRoleV1"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("lambda.amazonaws.com"), nil),
	})

	// Publish rights are scoped to the alert topic, not sns:* on *
	listenerRole.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:    awsiam.Effect_ALLOW,
		Actions:   jsii.Strings("sns:Publish"),
		Resources: jsii.Strings(*resources.alertTopic.TopicArn()),
	}))

	// Grant permissions for the Twitter credentials secret
	listenerRole.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:    awsiam.Effect_ALLOW,
		Actions:   jsii.Strings("secretsmanager:GetSecretValue"),
		Resources: jsii.Strings(*resources.credentialsSecret.SecretArn()),
	}))

	return listenerRole
}

func configureListenerLogging(stack awscdk.Stack, role awsiam.Role, listenerFunction awslambda.Function) {
	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect: awsiam.Effect_ALLOW,
		Actions: jsii.Strings(
			"logs:CreateLogGroup",
			"logs:CreateLogStream",
			"logs:PutLogEvents",
		),
		Resources: jsii.Strings(
			fmt.Sprintf("arn:aws:logs:%s:%s:log-group:/aws/lambda/%s:*",
				*stack.Region(), *stack.Account(), *listenerFunction.FunctionName()),
		),
	}))
}

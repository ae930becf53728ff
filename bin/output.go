package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/jsii-runtime-go"
)

func createStackOutputs(stack awscdk.Stack, listenerFunction awslambda.Function,
	listenerRole awsiam.Role, alertTopic awssns.ITopic) {
	awscdk.NewCfnOutput(stack, jsii.String("ListenerFunctionNameOutput"), &awscdk.CfnOutputProps{
		Value: listenerFunction.FunctionName(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("ListenerFunctionArnOutput"), &awscdk.CfnOutputProps{
		Value: listenerFunction.FunctionArn(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("ListenerRoleArnOutput"), &awscdk.CfnOutputProps{
		Value: listenerRole.RoleArn(),
	})

	awscdk.NewCfnOutput(stack, jsii.String("AlertTopicArnOutput"), &awscdk.CfnOutputProps{
		Value: alertTopic.TopicArn(),
	})
}

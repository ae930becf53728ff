package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatchactions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/jsii-runtime-go"
)

func createListenerErrorAlarm(stack awscdk.Stack, listenerFunction awslambda.Function) awscloudwatch.Alarm {
	return awscloudwatch.NewAlarm(stack, jsii.String("ListenerErrorsAlarm"), &awscloudwatch.AlarmProps{
		AlarmDescription: jsii.String("Alarm for restock listener errors"),
		AlarmName:        jsii.String("ListenerErrorsAlarm"),
		Metric: awscloudwatch.NewMetric(&awscloudwatch.MetricProps{
			Namespace:  jsii.String("AWS/Lambda"),
			MetricName: jsii.String("Errors"),
			Statistic:  jsii.String("Sum"),
			Period:     awscdk.Duration_Minutes(jsii.Number(15)),
			DimensionsMap: &map[string]*string{
				"FunctionName": listenerFunction.FunctionName(),
			},
		}),
		EvaluationPeriods:  jsii.Number(1),
		Threshold:          jsii.Number(1),
		ComparisonOperator: awscloudwatch.ComparisonOperator_GREATER_THAN_OR_EQUAL_TO_THRESHOLD,
		TreatMissingData:   awscloudwatch.TreatMissingData_NOT_BREACHING,
	})
}

func wireAlarmNotifications(alarm awscloudwatch.Alarm, topic awssns.ITopic) {
	alarm.AddAlarmAction(awscloudwatchactions.NewSnsAction(topic))
}

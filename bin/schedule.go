package main

import (
	"log"

	"restock-listener/config"
	"restock-listener/model"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"
)

// Schedule related resources
func createScheduleRule(stack awscdk.Stack, listenerFunction awslambda.Function, payload *model.WatchRequest) awsevents.Rule {
	rule := awsevents.NewRule(stack, jsii.String("RestockPollSchedule"), &awsevents.RuleProps{
		RuleName:    jsii.String("restock-poll-schedule"),
		Description: jsii.String("Invokes the restock listener every 15 minutes"),
		Schedule:    awsevents.Schedule_Rate(awscdk.Duration_Minutes(jsii.Number(15))),
	})

	// The rule delivers the same static payload on every tick; the target
	// wiring also grants the events principal its invoke permission.
	rule.AddTarget(awseventstargets.NewLambdaFunction(listenerFunction, &awseventstargets.LambdaFunctionProps{
		Event: awsevents.RuleTargetInput_FromObject(scheduleInput(payload)),
	}))

	return rule
}

// RuleTargetInput_FromObject serializes plain maps, so the payload struct
// is flattened here with its wire field names.
func scheduleInput(payload *model.WatchRequest) *map[string]interface{} {
	return &map[string]interface{}{
		"subject":             payload.Subject,
		"consumer_key":        payload.ConsumerKey,
		"consumer_secret":     payload.ConsumerSecret,
		"access_token":        payload.AccessToken,
		"access_token_secret": payload.AccessTokenSecret,
		"screen_name":         payload.ScreenName,
		"search_terms":        payload.SearchTerms,
		"special_unicode":     payload.SpecialUnicode,
	}
}

// loadWatchRequest assembles the static invocation payload from the synth
// environment. Credential fields stay empty on purpose; the listener
// resolves them from Secrets Manager at runtime.
func loadWatchRequest() *model.WatchRequest {
	codePoints, err := config.ParseCodePoints(config.EnvOrDefault("SPECIAL_UNICODE", ""))
	if err != nil {
		log.Fatalf("WARNING: invalid SPECIAL_UNICODE value: %v", err)
	}

	return &model.WatchRequest{
		Subject:        config.EnvOrDefault("ALERT_SUBJECT", "Restock alert"),
		ScreenName:     config.MustEnv("SCREEN_NAME"),
		SearchTerms:    config.SplitList(config.EnvOrDefault("SEARCH_TERMS", "")),
		SpecialUnicode: codePoints,
	}
}

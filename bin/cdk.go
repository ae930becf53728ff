package main

import (
	"log"
	"os"

	"restock-listener/config"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/joho/godotenv"
)

func NewRestockListenerStack(scope constructs.Construct, id string, props *RestockListenerProps) awscdk.Stack {
	stack := initializeStack(scope, id, props)

	resources := &ListenerResources{
		stack:             stack,
		alertTopic:        createAlertTopic(stack),
		credentialsSecret: createCredentialsSecret(stack),
	}

	// The listener function and its scoped IAM role
	listenerFunction, listenerRole := createListenerFunction(resources)

	// The 15-minute poll schedule with its static payload
	createScheduleRule(stack, listenerFunction, loadWatchRequest())

	// Alert on listener failures through the same topic
	errorAlarm := createListenerErrorAlarm(stack, listenerFunction)
	wireAlarmNotifications(errorAlarm, resources.alertTopic)

	createStackOutputs(stack, listenerFunction, listenerRole, resources.alertTopic)

	return stack
}

func main() {
	defer jsii.Close()

	// Load .env variables one time
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using process environment")
	}

	app := awscdk.NewApp(nil)
	NewRestockListenerStack(app, "RestockListenerStack", &RestockListenerProps{
		awscdk.StackProps{
			Env: env(),
		},
	})

	app.Synth(nil)
}

func env() *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(os.Getenv("ACCOUNT_ID")),
		Region:  jsii.String(config.EnvOrDefault("ACCOUNT_REGION", "us-east-1")),
	}
}

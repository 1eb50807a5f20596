package bridge_test

import (
	"context"
	"fmt"

	"github.com/aalemi-dev/tracebridge/bridge"
	"github.com/aalemi-dev/tracebridge/event"
	"github.com/aalemi-dev/tracebridge/tracer"
)

func ExampleNewBridge() {
	tracerClient, err := tracer.NewClient(tracer.Config{
		ServiceName: "webapp-analytics",
		AppEnv:      "development",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	b := bridge.NewBridge(tracerClient)

	err = b.Capture(context.Background(), event.Event{
		Action:  "click",
		Subject: "log-button",
	})
	fmt.Println(err)
	// Output: <nil>
}

func ExampleBridgeClient_Capture() {
	tracerClient, err := tracer.NewClient(tracer.Config{
		ServiceName: "webapp-analytics",
		AppEnv:      "development",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	b := bridge.NewBridge(tracerClient)

	err = b.Capture(context.Background(), event.Event{
		Action: "login",
		Attributes: map[string]interface{}{
			"userId": 42,
			"sso":    true,
		},
	})
	fmt.Println(err)
	// Output: <nil>
}

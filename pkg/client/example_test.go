package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/moverhub/backend/pkg/client"
)

// Example demonstrates basic usage of the MoverHub client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.moverhub.io",
	})

	ctx := context.Background()

	signup, err := c.Accounts().Create(ctx, client.CreateAccountRequest{
		Email:        "mover@example.com",
		Password:     "correct horse battery staple",
		BusinessName: "Swift Moves",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Complete checkout at: %s\n", signup.CheckoutURL)
}

// ExampleMoverService_Get demonstrates fetching a mover profile
func ExampleMoverService_Get() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.moverhub.io",
		Token:   "access-token",
	})

	detail, err := c.Movers().Get(context.Background(), "mover@example.com")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%d%% complete)\n", detail.Mover.Name, detail.Mover.ProfileCompletion)
}

// ExampleMoverService_Update demonstrates a partial profile edit
func ExampleMoverService_Update() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.moverhub.io",
		Token:   "access-token",
	})

	city := "Dallas"
	mover, err := c.Movers().Update(context.Background(), "mover@example.com", client.UpdateMoverRequest{
		City: &city,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Now serving %s, %s\n", mover.City, mover.State)
}

// ExampleBillingService_Cancel demonstrates scheduling a cancellation
func ExampleBillingService_Cancel() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.moverhub.io",
		Token:   "access-token",
	})

	if err := c.Billing().Cancel(context.Background(), "mover@example.com"); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Cancellation scheduled")
}

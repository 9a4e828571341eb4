package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newBillingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Manage subscriptions",
	}

	cmd.AddCommand(newBillingCheckoutCmd())
	cmd.AddCommand(newBillingPortalCmd())
	cmd.AddCommand(newBillingCancelCmd())

	return cmd
}

func newBillingCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <email>",
		Short: "Create a checkout session for the profile's plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := apiClient.Billing().Checkout(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(session.URL)
			return nil
		},
	}
}

func newBillingPortalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portal <email>",
		Short: "Open a billing portal session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := apiClient.Billing().Portal(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(session.URL)
			return nil
		},
	}
}

func newBillingCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <email>",
		Short: "Schedule cancellation at the end of the billing period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Billing().Cancel(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Cancellation scheduled for the end of the billing period")
			return nil
		},
	}
}

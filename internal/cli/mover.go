package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moverhub/backend/pkg/client"
)

func newMoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mover",
		Short: "Inspect and edit mover profiles",
	}

	cmd.AddCommand(newMoverGetCmd())
	cmd.AddCommand(newMoverUpdateCmd())
	cmd.AddCommand(newMoverLogoCmd())

	return cmd
}

func newMoverGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <email>",
		Short: "Show a mover profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := apiClient.Movers().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(detail)
			}

			m := detail.Mover
			price := "-"
			if m.StartingPrice != nil {
				price = strconv.FormatFloat(*m.StartingPrice, 'f', 2, 64)
			}

			t := NewTable("FIELD", "VALUE")
			t.AddRow("Name", m.Name)
			t.AddRow("Email", m.Email)
			t.AddRow("Phone", m.Phone)
			t.AddRow("City", m.City)
			t.AddRow("State", m.State)
			t.AddRow("Starting price", price)
			t.AddRow("Completion", fmt.Sprintf("%d%%", m.ProfileCompletion))
			t.AddRow("Plan", detail.Plan)
			t.AddRow("Status", formatStatus(detail.Status))
			t.AddRow("Member since", detail.MemberSince)
			t.AddRow("Renews on", detail.RenewsOn)
			t.Render()
			return nil
		},
	}
}

func newMoverUpdateCmd() *cobra.Command {
	var (
		fullName      string
		businessName  string
		phone         string
		city          string
		state         string
		startingPrice float64
	)

	cmd := &cobra.Command{
		Use:   "update <email>",
		Short: "Edit a mover profile (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.UpdateMoverRequest{}
			if cmd.Flags().Changed("full-name") {
				req.FullName = &fullName
			}
			if cmd.Flags().Changed("business-name") {
				req.BusinessName = &businessName
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("city") {
				req.City = &city
			}
			if cmd.Flags().Changed("state") {
				req.State = &state
			}
			if cmd.Flags().Changed("starting-price") {
				req.StartingPrice = &startingPrice
			}

			mover, err := apiClient.Movers().Update(context.Background(), args[0], req)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(mover)
			}

			fmt.Printf("Updated %s (%d%% complete)\n", mover.Email, mover.ProfileCompletion)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "contact full name")
	cmd.Flags().StringVar(&businessName, "business-name", "", "business name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&city, "city", "", "home city")
	cmd.Flags().StringVar(&state, "state", "", "home state")
	cmd.Flags().Float64Var(&startingPrice, "starting-price", 0, "starting price in dollars")

	return cmd
}

func newMoverLogoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logo <email> <file>",
		Short: "Upload a logo image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read logo file: %w", err)
			}

			contentType := "image/png"
			if ext := filepath.Ext(args[1]); ext == ".jpg" || ext == ".jpeg" {
				contentType = "image/jpeg"
			}

			mover, err := apiClient.Movers().UploadLogo(context.Background(), args[0], filepath.Base(args[1]), contentType, data)
			if err != nil {
				return err
			}

			fmt.Printf("Logo uploaded: %s\n", mover.Logo)
			return nil
		},
	}
}

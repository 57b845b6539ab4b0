package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [reference]",
		Short: "Open a loan application for review",
		Long: `Open the review page for a loan application.

The reference is the application reference from the review link sent to
the approving officer. Without a reference the page shows an access
denied screen, matching what the officer would see from a broken link.

Examples:
  approver review 2025000004
  approver review 2025000004 --base-url https://lms.mutualtrustbank.dev`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReview,
	}

	// Flags
	cmd.Flags().String("base-url", "", "loan service base URL")
	cmd.Flags().String("theme", "default", "visual theme (default, catppuccin-mocha)")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("gateway.base_url", cmd.Flags().Lookup("base-url"))
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	refID := ""
	if len(args) > 0 {
		refID = args[0]
	}

	baseURL := viper.GetString("gateway.base_url")
	if baseURL == "" {
		return fmt.Errorf("%w: set gateway.base_url or pass --base-url", common.ErrMissingConfig)
	}

	common.LogInfo("Opening review page", common.Fields{"ref": refID, "base_url": baseURL})

	decision, err := tui.Run(ctx,
		tui.WithGateway(gateway.NewClient(baseURL)),
		tui.WithRef(refID),
		tui.WithTheme(themes.GetTheme(viper.GetString("ui.theme"))),
	)
	if err != nil {
		common.LogError(err, "Review page failed", common.Fields{"ref": refID})
		return fmt.Errorf("review failed: %w", err)
	}

	if decision.Status == model.DecisionPending {
		common.LogInfo("Review closed without a decision", common.Fields{"ref": refID})
		return nil
	}
	common.LogInfo("Decision recorded", common.Fields{
		"ref":    refID,
		"status": string(decision.Status),
		"by":     decision.DecidedBy,
		"at":     decision.DecidedAt,
	})
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/spf13/cobra"
)

func newGateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Configure and evaluate milestone readiness gates",
	}

	cmd.AddCommand(
		newGateAddCmd(app),
		newGateStatusCmd(app),
		newGateOverrideCmd(app),
	)

	return cmd
}

func newGateAddCmd(app *App) *cobra.Command {
	var milestoneTemplateID, domainID, dimensionID, label string
	var minScore float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Attach a readiness gate to a milestone template",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.MilestoneGate{
				MilestoneTemplateID: milestoneTemplateID,
				MinScore:            minScore,
				Label:               label,
			}
			if domainID != "" {
				g.DomainID = &domainID
			}
			if dimensionID != "" {
				g.DimensionID = &dimensionID
			}

			if err := app.Gates.CreateGate(context.Background(), g); err != nil {
				return err
			}

			fmt.Printf("Added gate %q to milestone template %s\n", g.Label, milestoneTemplateID)
			return nil
		},
	}

	cmd.Flags().StringVar(&milestoneTemplateID, "milestone-template", "", "Milestone template ID the gate attaches to")
	cmd.Flags().StringVar(&domainID, "domain", "", "Assessment domain ID the gate checks")
	cmd.Flags().StringVar(&dimensionID, "dimension", "", "Dimension ID the gate checks")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum required score")
	cmd.Flags().StringVar(&label, "label", "", "Gate label (auto-generated when omitted)")
	_ = cmd.MarkFlagRequired("milestone-template")
	_ = cmd.MarkFlagRequired("min")

	return cmd
}

func newGateStatusCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "status MILESTONE_ID",
		Short: "Evaluate every gate on a milestone for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evals, err := app.Gates.EvaluateMilestone(context.Background(), userID, args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatGateEvaluations(evals))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User whose capability scores are evaluated")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newGateOverrideCmd(app *App) *cobra.Command {
	var milestoneID, gateID, overriddenBy, reason string

	cmd := &cobra.Command{
		Use:   "override",
		Short: "Record a staff override for a gate on a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := &domain.GateOverride{
				MilestoneID:  milestoneID,
				GateID:       gateID,
				OverriddenBy: overriddenBy,
				Reason:       reason,
			}

			if err := app.Gates.RecordOverride(context.Background(), o); err != nil {
				return err
			}

			fmt.Printf("Recorded override for gate %s on milestone %s\n", gateID, milestoneID)
			return nil
		},
	}

	cmd.Flags().StringVar(&milestoneID, "milestone", "", "Concrete milestone ID")
	cmd.Flags().StringVar(&gateID, "gate", "", "Gate ID being overridden")
	cmd.Flags().StringVar(&overriddenBy, "by", "", "Staff member recording the override")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the gate is waived")
	_ = cmd.MarkFlagRequired("milestone")
	_ = cmd.MarkFlagRequired("gate")
	_ = cmd.MarkFlagRequired("by")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

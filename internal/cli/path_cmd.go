package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/pacing"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/spf13/cobra"
)

func newPathCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Start and inspect guided development plans",
	}

	cmd.AddCommand(
		newPathStartCmd(app),
		newPathEstimateCmd(app),
		newPathListCmd(app),
		newPathShowCmd(app),
	)

	return cmd
}

func newPathStartCmd(app *App) *cobra.Command {
	var userID, templateID, start, paceStr, surveyID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Instantiate a path template into a dated personal plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Fill in missing inputs interactively when on a terminal.
			if templateID == "" && app.interactive() {
				if form := wizardSelectTemplate(ctx, app, &templateID); form != nil {
					if err := form.Run(); err != nil {
						return err
					}
				}
			}
			if templateID == "" {
				return fmt.Errorf("template is required (use --template or run interactively)")
			}

			if start == "" && app.interactive() {
				if err := wizardInputStartDate(&start).Run(); err != nil {
					return err
				}
			}
			startDate, err := pacing.ParseRequiredDate(start, "start")
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("pace") && app.interactive() {
				if err := wizardSelectPace(&paceStr).Run(); err != nil {
					return err
				}
			}
			pace, err := pacing.ParsePace(paceStr)
			if err != nil {
				return err
			}

			req := service.InstantiateRequest{
				UserID:     userID,
				TemplateID: templateID,
				StartDate:  startDate,
				Pace:       pace,
			}
			if surveyID != "" {
				req.SurveyResponseID = &surveyID
			}

			result, err := app.Paths.Instantiate(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("Started plan %s — %d goals, %d milestones, %d tasks\n",
				result.InstantiationID[:8],
				result.GoalsCreated, result.MilestonesCreated, result.TasksCreated)
			fmt.Printf("Estimated completion: %s\n", formatter.Bold(result.EstimatedCompletion.Format("Jan 2, 2006")))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID the plan belongs to")
	cmd.Flags().StringVar(&templateID, "template", "", "Path template ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&paceStr, "pace", "standard", "Pace (intensive|standard|part_time)")
	cmd.Flags().StringVar(&surveyID, "survey", "", "Survey response ID that motivated this plan")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newPathEstimateCmd(app *App) *cobra.Command {
	var templateID, start, paceStr string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Preview the completion date without creating a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := pacing.ParseRequiredDate(start, "start")
			if err != nil {
				return err
			}
			pace, err := pacing.ParsePace(paceStr)
			if err != nil {
				return err
			}

			estimate, err := app.Paths.Estimate(context.Background(), templateID, startDate, pace)
			if err != nil {
				return err
			}

			fmt.Printf("Estimated completion: %s\n", formatter.Bold(estimate.Format("Jan 2, 2006")))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "Path template ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&paceStr, "pace", "standard", "Pace (intensive|standard|part_time)")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newPathListCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.ListByUser(context.Background(), userID)
			if err != nil {
				return err
			}

			if len(plans) == 0 {
				fmt.Println("No plans found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newPathShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a plan with its goals, milestones and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			inst, err := app.Plans.Get(ctx, args[0])
			if err != nil {
				return err
			}

			goals, err := app.Plans.Goals(ctx, inst.ID)
			if err != nil {
				return err
			}

			milestones := make(map[string][]*domain.Milestone, len(goals))
			tasks := make(map[string][]*domain.Task, len(goals))
			for _, g := range goals {
				ms, err := app.Plans.Milestones(ctx, g.ID)
				if err != nil {
					return err
				}
				milestones[g.ID] = ms

				ts, err := app.Plans.Tasks(ctx, g.ID)
				if err != nil {
					return err
				}
				tasks[g.ID] = ts
			}

			data := formatter.PlanInspectData{
				Instantiation: inst,
				Goals:         goals,
				Milestones:    milestones,
				Tasks:         tasks,
			}

			fmt.Printf("%s\n", formatter.FormatPlanInspect(data))
			return nil
		},
	}
}

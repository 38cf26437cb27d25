package hr

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BerryBytes/hrctl/internal/app"
	"github.com/BerryBytes/hrctl/models"

	"github.com/spf13/cobra"
)

func NewPerformanceCmd(a *app.App) *cobra.Command {
	performanceCmd := &cobra.Command{
		Use:     "performance",
		Aliases: []string{"perf"},
		Short:   "Performance reviews, scores and goals",
	}

	performanceCmd.AddCommand(criteriaCmd(a))
	performanceCmd.AddCommand(listReviewsCmd(a))
	performanceCmd.AddCommand(myReviewsCmd(a))
	performanceCmd.AddCommand(showReviewCmd(a))
	performanceCmd.AddCommand(submitReviewCmd(a))
	performanceCmd.AddCommand(averageScoresCmd(a))
	performanceCmd.AddCommand(goalsCmd(a))

	return performanceCmd
}

func criteriaCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List performance criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := a.HR.ListPerformanceCriteria(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "CATEGORY", "WEIGHT", "ACTIVE")
			for _, c := range criteria {
				row(tw, c.ID, c.Name, c.Category, fmt.Sprintf("%d%%", c.Weight), c.IsActive)
			}
			return tw.Flush()
		},
	}
}

func printReviews(cmd *cobra.Command, reviews []models.PerformanceReview) error {
	tw := newTable(cmd.OutOrStdout(), "ID", "EMPLOYEE", "TYPE", "FROM", "TO", "STATUS", "SCORE")
	for _, r := range reviews {
		row(tw, r.ID, employeeName(r.EmployeeDetails, r.Employee), r.ReviewType, r.ReviewPeriodStart, r.ReviewPeriodEnd, r.Status, r.OverallScore)
	}
	return tw.Flush()
}

func listReviewsCmd(a *app.App) *cobra.Command {
	var (
		lf       listFlags
		employee string
		reviewer string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List performance reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(url.Values{"employee": {employee}, "reviewer": {reviewer}, "status": {status}})
			if err != nil {
				return err
			}

			reviews, err := a.HR.ListReviews(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), reviews)
			}
			return printReviews(cmd, reviews)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&employee, "employee", "", "Employee id")
	cmd.Flags().StringVar(&reviewer, "reviewer", "", "Reviewer employee id")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (draft, in_review, completed, acknowledged)")

	return cmd
}

func myReviewsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "my-reviews",
		Short: "List your own performance reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := a.HR.MyReviews(cmd.Context())
			if err != nil {
				return err
			}
			return printReviews(cmd, reviews)
		},
	}
}

func showReviewCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "review ID",
		Short: "Show a performance review with its scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			review, err := a.HR.GetReview(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Review %d: %s, %s to %s (%s)\n", review.ID,
				employeeName(review.EmployeeDetails, review.Employee),
				review.ReviewPeriodStart, review.ReviewPeriodEnd, review.Status)
			if review.Summary != "" {
				fmt.Fprintf(out, "Summary: %s\n", review.Summary)
			}
			if len(review.Scores) == 0 {
				return nil
			}
			tw := newTable(out, "CRITERIA", "SCORE", "WEIGHTED", "COMMENTS")
			for _, s := range review.Scores {
				row(tw, s.CriteriaName, s.Score, s.WeightedScore, s.Comments)
			}
			return tw.Flush()
		},
	}
}

func submitReviewCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit ID",
		Short: "Submit a draft performance review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			result, err := a.HR.SubmitReview(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review %d: %s\n", id, result.Status)
			return nil
		},
	}
}

func averageScoresCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "scores EMPLOYEE_ID",
		Short: "Show average scores per criteria for an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			scores, err := a.HR.AverageScores(cmd.Context(), id)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "CRITERIA", "AVERAGE")
			for _, s := range scores {
				row(tw, s.CriteriaName, s.AverageScore)
			}
			return tw.Flush()
		},
	}
}

func goalsCmd(a *app.App) *cobra.Command {
	goalsCmd := &cobra.Command{
		Use:   "goals",
		Short: "List and update goals",
	}

	goalsCmd.AddCommand(listGoalsCmd(a))
	goalsCmd.AddCommand(myGoalsCmd(a))
	goalsCmd.AddCommand(updateGoalCmd(a))

	return goalsCmd
}

func printGoals(cmd *cobra.Command, goals []models.Goal) error {
	tw := newTable(cmd.OutOrStdout(), "ID", "EMPLOYEE", "TITLE", "DUE", "PRIORITY", "STATUS", "PROGRESS")
	for _, g := range goals {
		row(tw, g.ID, employeeName(g.EmployeeDetails, g.Employee), g.Title, g.DueDate, g.Priority, g.Status, fmt.Sprintf("%d%%", g.Progress))
	}
	return tw.Flush()
}

func listGoalsCmd(a *app.App) *cobra.Command {
	var (
		lf       listFlags
		employee string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := lf.json()
			if err != nil {
				return err
			}
			opts, err := lf.options(url.Values{"employee": {employee}, "status": {status}})
			if err != nil {
				return err
			}

			goals, err := a.HR.ListGoals(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), goals)
			}
			return printGoals(cmd, goals)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&employee, "employee", "", "Employee id")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (not_started, in_progress, completed, cancelled)")

	return cmd
}

func myGoalsCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := a.HR.MyGoals(cmd.Context())
			if err != nil {
				return err
			}
			return printGoals(cmd, goals)
		},
	}
}

func updateGoalCmd(a *app.App) *cobra.Command {
	var (
		status   string
		progress int
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update the status or progress of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var in models.GoalUpdate
			if status != "" {
				in.Status = models.GoalStatus(status)
			}
			if cmd.Flags().Changed("progress") {
				in.Progress = &progress
			}
			if in.Status == "" && in.Progress == nil {
				return errors.New("nothing to update: set --status or --progress")
			}

			goal, err := a.HR.UpdateGoal(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %d: %s, %d%%\n", goal.ID, goal.Status, goal.Progress)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (not_started, in_progress, completed, cancelled)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress in percent, 0 to 100")

	return cmd
}

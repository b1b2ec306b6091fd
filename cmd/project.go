package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/domain/project"
)

func newProjectCmd() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect and manage workspace projects",
	}

	projectCmd.AddCommand(
		newProjectListCmd(),
		newProjectCreateCmd(),
		newProjectShowCmd(),
		newProjectDeleteCmd(),
	)
	return projectCmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects, most recently updated first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			summaries := app.projects.List(cmd.Context())
			if len(summaries) == 0 {
				fmt.Println("no projects")
				return nil
			}
			for _, s := range summaries {
				fmt.Printf("%-30s %-14s sessions=%-3d files=%-4d updated=%s\n",
					s.Name, s.Slug, s.SessionCount, s.FileCount, formatMillis(s.UpdatedAt))
			}
			return nil
		},
	}
}

func newProjectCreateCmd() *cobra.Command {
	var description, guidelines string

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			cfg, err := app.projects.Create(cmd.Context(), project.CreateRequest{
				Name:        args[0],
				Description: description,
				Guidelines:  guidelines,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", cfg.Slug, cfg.ID)
			return nil
		},
	}

	createCmd.Flags().StringVar(&description, "description", "", "project description")
	createCmd.Flags().StringVar(&guidelines, "guidelines", "", "project guidelines (mirrored to guidelines.md)")
	return createCmd
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a project's config and counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			summary := app.projects.GetSummary(cmd.Context(), args[0])
			if summary == nil {
				return fmt.Errorf("%w: %q", project.ErrProjectNotFound, args[0])
			}
			cfg := app.projects.Load(cmd.Context(), args[0])

			fmt.Printf("name:        %s\n", summary.Name)
			fmt.Printf("slug:        %s\n", summary.Slug)
			fmt.Printf("id:          %s\n", summary.ID)
			if summary.Description != "" {
				fmt.Printf("description: %s\n", summary.Description)
			}
			if cfg != nil && cfg.Guidelines != "" {
				fmt.Printf("guidelines:  %s\n", cfg.Guidelines)
			}
			if cfg != nil && len(cfg.EnabledSourceSlugs) > 0 {
				fmt.Printf("sources:     %v\n", cfg.EnabledSourceSlugs)
			}
			fmt.Printf("sessions:    %d\n", summary.SessionCount)
			fmt.Printf("files:       %d\n", summary.FileCount)
			fmt.Printf("created:     %s\n", formatMillis(summary.CreatedAt))
			fmt.Printf("updated:     %s\n", formatMillis(summary.UpdatedAt))
			return nil
		},
	}
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a project folder recursively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.projects.Delete(cmd.Context(), args[0]) {
				return fmt.Errorf("%w: %q", project.ErrProjectNotFound, args[0])
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format(time.RFC3339)
}

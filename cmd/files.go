package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/watch"
)

func newFilesCmd() *cobra.Command {
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Work with a project's user file tree",
	}

	filesCmd.AddCommand(
		newFilesTreeCmd(),
		newFilesReadCmd(),
		newFilesWriteCmd(),
		newFilesRmCmd(),
		newFilesMvCmd(),
		newFilesWatchCmd(),
	)
	return filesCmd
}

func newFilesTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <slug> [path]",
		Short: "Print the visible file tree of a project",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			subPath := ""
			if len(args) > 1 {
				subPath = args[1]
			}
			files := app.projects.ListFiles(cmd.Context(), args[0], subPath)
			if len(files) == 0 {
				fmt.Println("empty")
				return nil
			}
			printTree(files, 0)
			return nil
		},
	}
}

func printTree(files []project.File, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range files {
		if f.Type == project.FileTypeDirectory {
			fmt.Printf("%s%s/\n", indent, f.Name)
			printTree(f.Children, depth+1)
		} else {
			fmt.Printf("%s%s (%d bytes)\n", indent, f.Name, f.Size)
		}
	}
}

func newFilesReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <slug> <path>",
		Short: "Print a project file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			content, ok := app.projects.ReadFile(cmd.Context(), args[0], args[1])
			if !ok {
				return fmt.Errorf("file %q not found in project %q", args[1], args[0])
			}
			fmt.Print(content)
			return nil
		},
	}
}

func newFilesWriteCmd() *cobra.Command {
	var fromFile string

	writeCmd := &cobra.Command{
		Use:   "write <slug> <path> [content]",
		Short: "Write a project file, creating parents as needed",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			var content string
			switch {
			case fromFile != "":
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return err
				}
				content = string(data)
			case len(args) > 2:
				content = args[2]
			}

			if err := app.projects.WriteFile(cmd.Context(), args[0], args[1], content); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[1])
			return nil
		},
	}

	writeCmd.Flags().StringVar(&fromFile, "from", "", "read content from a local file")
	return writeCmd
}

func newFilesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <slug> <path>",
		Short: "Delete a project file or directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.projects.DeleteFile(cmd.Context(), args[0], args[1]) {
				return fmt.Errorf("file %q not found in project %q", args[1], args[0])
			}
			fmt.Printf("removed %s\n", args[1])
			return nil
		},
	}
}

func newFilesWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <slug>",
		Short: "Print file changes under a project's files tree until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if app.projects.Load(cmd.Context(), args[0]) == nil {
				return fmt.Errorf("project %q not found", args[0])
			}

			w, err := watch.New(app.ws, args[0], app.logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := w.Start(ctx); err != nil {
				return err
			}
			for event := range w.Events() {
				fmt.Printf("%s %s %s\n", event.Timestamp.Format(time.RFC3339), event.Op, event.Path)
			}
			return nil
		},
	}
}

func newFilesMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <slug> <old> <new>",
		Short: "Rename or move a project file (never overwrites)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.projects.RenameFile(cmd.Context(), args[0], args[1], args[2]) {
				return fmt.Errorf("cannot rename %q to %q", args[1], args[2])
			}
			fmt.Printf("renamed %s -> %s\n", args[1], args[2])
			return nil
		},
	}
}

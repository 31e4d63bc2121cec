package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/internal/ui"
	"github.com/schemakit/ddlplan/internal/watch"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand(cfg *config.Config) *cobra.Command {
	var scriptPath string
	var showDrop bool
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the dependency-ordered plan",
		Long:  "Compute and display the creation order (or drop order) for the objects in a DDL script",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchMode {
				return runPlanWatch(cfg, scriptPath, showDrop)
			}
			return runPlan(scriptPath, showDrop)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", cfg.ScriptPath, "Path to DDL script")
	cmd.Flags().BoolVar(&showDrop, "drop", false, "Show the drop order instead of the creation order")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Recompute the plan whenever the script changes")

	return cmd
}

func runPlan(scriptPath string, showDrop bool) error {
	model, file, err := loadModel(scriptPath)
	if err != nil {
		return err
	}

	plan, err := planModel(model, file)
	if plan == nil {
		return err
	}

	order := plan.CreateOrder
	title := "Creation order"
	if showDrop {
		order = plan.DropOrder
		title = "Drop order"
	}

	ui.PrintSection(title)
	rows := make([][]string, len(order))
	for i, obj := range order {
		rows[i] = []string{obj.ObjectKind().String(), obj.ObjectName().String()}
	}
	ui.PrintTable([]string{"Kind", "Object"}, rows)

	if !plan.Complete() {
		blocked := model.Len() - len(plan.CreateOrder)
		ui.PrintWarning("%d object(s) could not be ordered", blocked)
		return err
	}
	return nil
}

func runPlanWatch(cfg *config.Config, scriptPath string, showDrop bool) error {
	watcher, err := watch.New(scriptPath, cfg.WatchDebounce, func() error {
		if err := runPlan(scriptPath, showDrop); err != nil {
			// Keep watching; problems were already reported.
			ui.PrintError("Plan failed: %v", err)
		}
		ui.PrintInfo("Watching %s for changes...", scriptPath)
		return nil
	})
	if err != nil {
		return err
	}
	if err := watcher.Run(); err != nil {
		return err
	}
	defer watcher.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schemakit/ddlplan/internal/config"
	"github.com/schemakit/ddlplan/internal/ui"
)

const starterScript = `-- Starter schema. Objects can be declared in any order;
-- ddlplan computes a dependency-safe creation order.

create schema app;

create type app.email from varchar(320) not null;

create table app.users (
	id int primary key,
	email app.email
);

create table app.posts (
	id int primary key,
	author_id int not null,
	foreign key (author_id) references users (id)
);

create index ix_posts_author on app.posts (author_id);
`

// NewInitCommand creates the init command.
func NewInitCommand(cfg *config.Config) *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ddlplan project",
		Long:  "Create a starter DDL script and configuration file in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cfg, scriptPath)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", cfg.ScriptPath, "Path for the starter DDL script")

	return cmd
}

func runInit(cfg *config.Config, scriptPath string) error {
	ui.PrintHeader("ddlplan", "Dependency-ordered DDL planning")

	if exists, _ := afero.Exists(config.AppFs, scriptPath); exists {
		return fmt.Errorf("%s already exists", scriptPath)
	}

	if err := afero.WriteFile(config.AppFs, scriptPath, []byte(starterScript), 0644); err != nil {
		return fmt.Errorf("failed to write starter script: %w", err)
	}
	ui.PrintSuccess("Created %s", scriptPath)

	cfg.ScriptPath = scriptPath
	if err := config.SaveConfig(cfg); err != nil {
		ui.PrintWarning("Could not save configuration: %v", err)
	}

	ui.PrintInfo("Next steps:")
	ui.PrintList([]string{
		fmt.Sprintf("ddlplan validate --script %s", scriptPath),
		fmt.Sprintf("ddlplan plan --script %s", scriptPath),
		fmt.Sprintf("ddlplan script --script %s", scriptPath),
	})
	return nil
}

package main

import (
	"fmt"

	"github.com/sporadisk/timesheet/mapping"
	"github.com/sporadisk/timesheet/task"
	"github.com/spf13/cobra"
)

func mappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Manage the task mapping database used by the lookup strategy",
	}

	cmd.PersistentFlags().String("db", "", "Path to the mapping database (default: resolver database from config)")

	setCmd := &cobra.Command{
		Use:   "set <description> <task>",
		Short: "Map a description (optionally within a project) to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			return withStore(cmd, func(s *mapping.Store) error {
				return s.Set(task.Mapping{Description: args[0], Project: project, Task: args[1]})
			})
		},
	}
	setCmd.Flags().String("project", "", "Only apply the mapping to this project")

	deleteCmd := &cobra.Command{
		Use:   "delete <description>",
		Short: "Remove a mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			return withStore(cmd, func(s *mapping.Store) error {
				return s.Delete(args[0], project)
			})
		},
	}
	deleteCmd.Flags().String("project", "", "Project of the mapping to remove")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(s *mapping.Store) error {
				mappings, err := s.List()
				if err != nil {
					return err
				}
				for _, m := range mappings {
					project := m.Project
					if project == "" {
						project = "*"
					}
					fmt.Printf(" - %s [%s] -> %s\n", m.Description, project, m.Task)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(setCmd, deleteCmd, listCmd)
	return cmd
}

func withStore(cmd *cobra.Command, fn func(s *mapping.Store) error) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if conf.Resolver != nil {
			dbPath = conf.Resolver.Params["database"]
		}
	}

	if dbPath == "" {
		return fmt.Errorf("no mapping database: pass --db or set resolver.params.database in the config")
	}

	store, err := mapping.New(dbPath)
	if err != nil {
		return fmt.Errorf("mapping.New: %w", err)
	}
	defer store.Close()

	return fn(store)
}

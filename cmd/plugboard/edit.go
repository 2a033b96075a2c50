package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/internal/boardui"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [board.toml]",
		Short: "Open a board in the interactive editor",
		Long:  "Open a board file in the terminal editor. Without an argument a demo patch is opened; [w] writes it to board.toml in the current directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				f    *board.File
				path string
				err  error
			)
			if len(args) == 1 {
				path = args[0]
				f, err = board.Load(path)
				if err != nil {
					return err
				}
			} else {
				path = "board.toml"
				f = board.Demo()
			}

			m, err := boardui.NewModel(loadConfig(), f, path)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write the demo board to a new file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "board.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := board.Demo().Save(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}

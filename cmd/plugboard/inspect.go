package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nor-os/plugboard/internal/board"
)

var (
	headStyle = color.New(color.FgCyan, color.Bold)
	nodeStyle = color.New(color.FgGreen, color.Bold)
	dimStyle  = color.New(color.FgHiBlack)
	wireStyle = color.New(color.FgYellow)
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <board.toml>",
		Short: "Print a board's nodes and wiring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := board.Load(args[0])
			if err != nil {
				return err
			}
			ed, positions, err := f.Build()
			if err != nil {
				return err
			}

			if f.Title != "" {
				headStyle.Println(f.Title)
			}
			headStyle.Printf("%d nodes, %d connections\n\n", len(ed.Nodes()), len(ed.Connections()))

			for _, n := range ed.Nodes() {
				p := positions[n.ID]
				nodeStyle.Printf("%s", n.ID)
				dimStyle.Printf("  %q at (%.0f,%.0f)\n", n.Label, p.X, p.Y)
				for _, port := range n.Inputs() {
					flag := ""
					if port.Multiple {
						flag = " (multi)"
					}
					fmt.Printf("  ◂ %s%s: %d wire(s)\n", port.Key, flag, len(ed.ConnectionsTo(n.ID, port.Key)))
				}
				for _, port := range n.Outputs() {
					fmt.Printf("  ▸ %s: %d wire(s)\n", port.Key, len(ed.ConnectionsFrom(n.ID, port.Key)))
				}
			}

			if len(ed.Connections()) > 0 {
				fmt.Println()
				headStyle.Println("wires")
				for _, c := range ed.Connections() {
					wireStyle.Printf("  %s.%s → %s.%s\n", c.Source, c.SourceOutput, c.Target, c.TargetInput)
				}
			}
			return nil
		},
	}
}

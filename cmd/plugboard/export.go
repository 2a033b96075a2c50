package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export <board.toml>",
		Short: "Render a board to text or PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := board.Load(args[0])
			if err != nil {
				return err
			}
			ed, positions, err := f.Build()
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "text":
				w := os.Stdout
				if out != "" {
					file, err := os.Create(out)
					if err != nil {
						return err
					}
					defer file.Close()
					w = file
				}
				return export.Text(w, ed, positions)

			case "png":
				if out == "" {
					return fmt.Errorf("png export needs --out")
				}
				if err := export.PNG(out, ed, positions); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
				return nil

			default:
				return fmt.Errorf("unknown format %q (text, png)", format)
			}
		},
	}
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or png")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout for text)")
	return cmd
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/milk9111/middlechamber/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check [level]",
	Short: "Validate a level file and print a summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagLevel
		if len(args) == 1 {
			path = args[0]
		}
		lvl, src, err := levels.Load(path)
		if err != nil {
			return err
		}
		bank, err := levels.LoadBank("")
		if err != nil {
			return err
		}
		missing := checkLevel(cmd.OutOrStdout(), lvl, src, bank)
		if missing > 0 {
			return fmt.Errorf("check: %d question references do not resolve", missing)
		}
		return nil
	},
}

// checkLevel prints a summary of lvl and returns how many question ids it
// references that the bank does not contain. Such gates still work, they
// just skip their quiz.
func checkLevel(out io.Writer, lvl *levels.Level, src levels.Source, bank *levels.Bank) int {
	fmt.Fprintf(out, "%s (%s, %016x)\n", lvl.Name, src.Path, src.Fingerprint)
	fmt.Fprintf(out, "  world        %.0f x %.0f, ground %.0f\n", lvl.World.Width, lvl.World.Height, lvl.GroundY)
	fmt.Fprintf(out, "  platforms    %d\n", len(lvl.Platforms))
	fmt.Fprintf(out, "  pickups      %d\n", len(lvl.Pickups))
	fmt.Fprintf(out, "  virtues      %d\n", len(lvl.Virtues))
	fmt.Fprintf(out, "  checkpoints  %d\n", len(lvl.Checkpoints))
	fmt.Fprintf(out, "  staircase    %d questions\n", len(lvl.Staircase))

	missing := 0
	for _, p := range lvl.Pickups {
		if p.Question == 0 {
			continue
		}
		if _, ok := bank.Lookup(p.Question); !ok {
			fmt.Fprintf(out, "  warning: pickup %d asks unknown question %d\n", p.ID, p.Question)
			missing++
		}
	}
	for i, id := range lvl.Staircase {
		if _, ok := bank.Lookup(id); !ok {
			fmt.Fprintf(out, "  warning: staircase step %d asks unknown question %d\n", i+1, id)
			missing++
		}
	}
	return missing
}

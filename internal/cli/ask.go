package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newAskCmd() *cobra.Command {
	var showSteps bool
	cmd := &cobra.Command{
		Use:   "ask <request>",
		Short: "Answer a single request and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.agent.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showSteps {
				for i, step := range res.Steps {
					fmt.Fprintf(out, "Step %d: %s %s\n", i+1, step.Action.Tool, step.Action.Input)
					fmt.Fprintf(out, "Observation: %s\n", step.Observation)
				}
			}
			fmt.Fprintln(out, res.Output)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print intermediate tool calls")
	return cmd
}

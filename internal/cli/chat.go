package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Task agent with email, study plan, Q&A and action item tools. Type 'exit' to quit.")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "You> ")
				if !scanner.Scan() {
					break
				}
				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				if text == "exit" || text == "quit" {
					break
				}
				reply, err := s.agent.Invoke(cmd.Context(), text)
				if err != nil {
					s.log.Error().Err(err).Msg("agent error")
					fmt.Fprintf(out, "Agent error: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "Agent> %s\n", reply)
			}
			return scanner.Err()
		},
	}
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
)

type batchResult struct {
	output string
	err    error
}

func (a *app) newBatchCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Answer one request per line of a file, concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args[0])
			if err != nil {
				return err
			}
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			pool, err := ants.NewPool(workers)
			if err != nil {
				return fmt.Errorf("create worker pool: %w", err)
			}
			defer pool.Release()

			results := make([]batchResult, len(inputs))
			var wg sync.WaitGroup
			for i, input := range inputs {
				wg.Add(1)
				if err := pool.Submit(func() {
					defer wg.Done()
					out, err := s.agent.Invoke(cmd.Context(), input)
					results[i] = batchResult{output: out, err: err}
				}); err != nil {
					wg.Done()
					results[i] = batchResult{err: fmt.Errorf("submit: %w", err)}
				}
			}
			wg.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for i, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(out, "[%d] error: %v\n", i+1, r.err)
					continue
				}
				fmt.Fprintf(out, "[%d] %s\n", i+1, r.output)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d requests failed", failed, len(inputs))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent agent sessions")
	return cmd
}

func readInputs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}

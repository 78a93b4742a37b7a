package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thermitegod/mcomix-lite/pkg/pages"
)

// sortCommand creates the sort command for natural file name ordering.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		foldCase bool
		by       string
		reverse  bool
	)

	cmd := &cobra.Command{
		Use:   "sort [NAME...]",
		Short: "Order file names the way pages are listed",
		Long: `Print file names in the order pages are shown.

Numbers inside names compare by value, so page2 comes before page10, and
extensions only break ties. --sort-by size or modified reads each file;
literal compares names byte by byte. Names are read from the arguments, or
one per line from standard input when there are none.`,
		Example: `  ls | mcomix-layout sort
  mcomix-layout sort --fold-case=false b10.png B2.png a.jpg
  mcomix-layout sort --sort-by modified --reverse *.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applySortFlags(cmd, cfg, foldCase, by, reverse)
			if err := cfg.Validate(); err != nil {
				return err
			}

			names := append([]string{}, args...)
			if len(names) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
						names = append(names, line)
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read names: %w", err)
				}
			}

			if err := pages.SortPaths(names, cfg.FileOrder()); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}

	registerSortFlags(cmd, &foldCase, &by, &reverse)

	return cmd
}

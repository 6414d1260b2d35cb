package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check MODEL",
		Short: "Validate a model and print its order and phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d contexts, %d groups\n", len(m.Contexts), len(m.Groups))
			for _, g := range m.Groups {
				fmt.Fprintf(w, "%s (%s, %s): %v\n", g.ID, g.Prev, g.Next, g.Members)
			}
			fmt.Fprintf(w, "order: %v\n", m.Order)

			return nil
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/fixtures"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
)

func newListCmd() *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Print the records of a resource as JSON",
		Long:  "Print the records the data provider returns for users, chatRooms or reports.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := models.ParseResource(args[0])
			if !ok {
				names := make([]string, len(models.Resources))
				for i, known := range models.Resources {
					names[i] = known.String()
				}
				return fmt.Errorf("unknown resource %q (expected one of %s)", args[0], strings.Join(names, ", "))
			}

			set, err := fixtures.Load(fixturesPath)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(services.NewMockDataProvider(set).GetList(r.String()))
		},
	}
	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "path to a fixtures JSON file (defaults to the built-in set)")
	return cmd
}

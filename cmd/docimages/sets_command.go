package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docimages/internal/imagesets"
	"docimages/internal/textutil"
)

func newSetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "sets",
		Short:       "List image sets in run order",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := imagesets.All()
			rows := make([][]string, 0, len(sets))
			for i, set := range sets {
				rows = append(rows, []string{strconv.Itoa(i + 1), set.Name, textutil.Title(set.Name), set.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Name", "Title", "Description"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/csim/datarecording"
)

type summaryRow struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

var reportCmd = &cobra.Command{
	Use:   "report <database>",
	Short: "Print the summary stored in a recording database.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(_ *cobra.Command, args []string) error {
	reader := datarecording.NewReader(args[0])
	defer reader.Close()

	reader.MapTable("simulation_summary", summaryRow{})

	results, count, err := reader.Query(context.Background(),
		"simulation_summary", datarecording.QueryParams{})
	if err != nil {
		return err
	}

	if count == 0 {
		return fmt.Errorf("%s holds no simulation summary", args[0])
	}

	for _, result := range results {
		row := result.(*summaryRow)
		fmt.Printf("hits:%d misses:%d evictions:%d\n",
			row.Hits, row.Misses, row.Evictions)
	}

	return nil
}

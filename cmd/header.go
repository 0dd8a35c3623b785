package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnanno/internal/ioread"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/spf13/cobra"
)

var headerCmd = &cobra.Command{
	Use:   "header <file.gaf>",
	Short: "Prints the header block of a GAF file",
	Long: `Reads only the header block of a GAF file and prints it. No data
lines are parsed.

Examples:
  gnanno header goa_human.gaf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Update([]config.Option{config.OptGafHeaderOnly(true)})

		rd := ioread.New(cfg)
		res, err := rd.Read(args[0])
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		fmt.Println(res.Header.Text())
		return nil
	},
}

package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gnanno/internal/ioread"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.gaf>",
	Short: "Parses a GAF file and validates its annotations",
	Long: `Parses a GAF file in one pass and runs structural validation over the
parsed annotations.

Malformed lines (wrong column count, bad aspect code, bad date, bad
taxon) are ignored and collected; annotations violating cardinality
rules are flagged. If any problems are found, a detailed error log is
written and a summary printed. A clean file produces no output.

Examples:
  gnanno check goa_human.gaf
  gnanno check --allow-missing-symbol --err-log bad.log goa_human.gaf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Update(gafFlagOpts(cmd))
		path := args[0]

		rd := ioread.New(cfg)
		res, err := rd.Read(path)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		res.Validate()
		if res.HasProblems() {
			if _, err = rd.ReportProblems(res, path); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
		}

		return nil
	},
}

// gafFlagOpts converts reader flags shared by check and export into
// config options.
func gafFlagOpts(cmd *cobra.Command) []config.Option {
	var opts []config.Option
	if b, _ := cmd.Flags().GetBool("allow-missing-symbol"); b {
		opts = append(opts, config.OptGafAllowMissingSymbol(true))
	}
	if b, _ := cmd.Flags().GetBool("progress"); b {
		opts = append(opts, config.OptGafProgress(true))
	}
	if s, _ := cmd.Flags().GetString("err-log"); s != "" {
		opts = append(opts, config.OptGafErrLog(s))
	}
	return opts
}

func init() {
	checkCmd.Flags().Bool("allow-missing-symbol", false,
		"do not flag annotations with an empty DB_Symbol column")
	checkCmd.Flags().Bool("progress", false,
		"show a progress bar while reading")
	checkCmd.Flags().String("err-log", "",
		"error log path (default: <file>.log next to the input)")
}

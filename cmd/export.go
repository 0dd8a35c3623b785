package cmd

import (
	"context"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnanno/internal/ioexport"
	"github.com/gnames/gnanno/internal/ioread"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/gnames/gnanno/pkg/gnanno"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.gaf>",
	Short: "Exports parsed annotations to SQLite or JSON Lines",
	Long: `Parses a GAF file and writes the annotation records to a new file.

Formats:
  sqlite: an 'annotations' table with one row per record
  jsonl:  one JSON document per record

Examples:
  gnanno export goa_human.gaf -o goa_human.sqlite
  gnanno export --format jsonl goa_human.gaf -o goa_human.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := gafFlagOpts(cmd)
		if s, _ := cmd.Flags().GetString("format"); s != "" {
			opts = append(opts, config.OptExportFormat(s))
		}
		if i, _ := cmd.Flags().GetInt("batch-size"); i > 0 {
			opts = append(opts, config.OptExportBatchSize(i))
		}
		cfg.Update(opts)

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = defaultOutput(args[0], cfg.Export.Format)
		}
		cfg.Update([]config.Option{config.OptExportOutput(out)})

		rd := ioread.New(cfg)
		res, err := rd.Read(args[0])
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		res.Validate()
		if res.HasProblems() {
			if _, err = rd.ReportProblems(res, args[0]); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
		}

		var exp gnanno.Exporter
		switch cfg.Export.Format {
		case "jsonl":
			exp = ioexport.NewJSONL(cfg)
		default:
			exp = ioexport.NewSqlite(cfg)
		}

		if err = exp.Export(context.Background(), res); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		return nil
	},
}

// defaultOutput derives the export target from the input path when no
// --output flag is given.
func defaultOutput(input, format string) string {
	base := strings.TrimSuffix(input, ".gaf")
	if format == "jsonl" {
		return base + ".jsonl"
	}
	return base + ".sqlite"
}

func init() {
	exportCmd.Flags().StringP("output", "o", "",
		"export target path (default: input with .sqlite/.jsonl extension)")
	exportCmd.Flags().String("format", "",
		"export format: sqlite or jsonl")
	exportCmd.Flags().Int("batch-size", 0,
		"records per insert transaction for the sqlite format")
	exportCmd.Flags().Bool("allow-missing-symbol", false,
		"do not flag annotations with an empty DB_Symbol column")
	exportCmd.Flags().Bool("progress", false,
		"show a progress bar while reading")
	exportCmd.Flags().String("err-log", "",
		"error log path (default: <file>.log next to the input)")
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxlab/scour/internal/ingest"
	"github.com/voxlab/scour/internal/logger"
	"github.com/voxlab/scour/internal/output"
	"github.com/voxlab/scour/pkg/cleaner"
	"github.com/voxlab/scour/pkg/htmlreduce"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file...]",
	Short: "Clean, fingerprint, and deduplicate a batch of payloads",
	Long: `Clean reads payloads from files (or stdin when no files are given),
runs the normalization pipeline over each one, and writes the partitioned
result.

Input files may be JSON arrays, JSONL, or YAML sequences of items with
"id", "text", and "metadata" fields; any other file is treated as one raw
text payload. Dedup scope is the whole invocation: all files form a single
batch.

Examples:
  scour clean reviews.jsonl
  scour clean day1.jsonl day2.jsonl --partition records --format jsonl
  scour clean pages.json --reduce-html --min-chars 80
  cat page.html | scour clean --input-format text --reduce-html`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Input
	flags.String("input-format", "", "force input format: json, jsonl, yaml, text (default: by extension)")
	flags.Bool("reduce-html", false, "strip page boilerplate with an HTML reducer before cleaning")

	// Cleaning options
	flags.Bool("no-dedup", false, "disable duplicate suppression")
	flags.Int("min-chars", 40, "discard records whose cleaned text is shorter than this")
	flags.Bool("lowercase", false, "lowercase cleaned text")
	flags.Bool("keep-urls", false, "keep http(s) URLs in cleaned text")
	flags.Bool("strip-hashtags", false, "remove #hashtag tokens")
	flags.Bool("keep-markdown", false, "keep markdown syntax in cleaned text")
	flags.Bool("no-collapse", false, "do not collapse whitespace runs")

	// Output
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
	flags.String("partition", "all", "which partition to write: records, duplicates, discarded, all")
	flags.Bool("stats", false, "print batch stats to stderr")

	_ = viper.BindPFlag("min_chars", flags.Lookup("min-chars"))
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	flags := cmd.Flags()

	c, err := cleaner.New(cleaningOptions(cmd))
	if err != nil {
		return err
	}

	inputFormat, err := flagInputFormat(cmd)
	if err != nil {
		return err
	}

	payloads, err := collectPayloads(args, inputFormat)
	if err != nil {
		return err
	}
	logger.Debug("payloads loaded", "count", len(payloads), "files", len(args))

	if reduceHTML, _ := flags.GetBool("reduce-html"); reduceHTML {
		reducePayloads(payloads)
	}

	summary := c.CleanBatch(payloads)
	logger.LogDiscards(summary)

	if err := writeResult(cmd, summary); err != nil {
		return err
	}

	if showStats, _ := flags.GetBool("stats"); showStats {
		fmt.Fprint(os.Stderr, summary.Stats.String())
	}
	return nil
}

// cleaningOptions translates flags into cleaner options. Flags are phrased
// as deviations from the defaults, so the zero flag set reproduces
// DefaultOptions.
func cleaningOptions(cmd *cobra.Command) *cleaner.Options {
	flags := cmd.Flags()
	opts := cleaner.DefaultOptions()

	if noDedup, _ := flags.GetBool("no-dedup"); noDedup {
		opts.Deduplicate = false
	}
	if keepURLs, _ := flags.GetBool("keep-urls"); keepURLs {
		opts.RemoveURLs = false
	}
	if keepMarkdown, _ := flags.GetBool("keep-markdown"); keepMarkdown {
		opts.RemoveMarkdown = false
	}
	if noCollapse, _ := flags.GetBool("no-collapse"); noCollapse {
		opts.CollapseWhitespace = false
	}
	opts.Lowercase, _ = flags.GetBool("lowercase")
	opts.RemoveHashtags, _ = flags.GetBool("strip-hashtags")
	opts.MinCharacters = viper.GetInt("min_chars")

	return opts
}

func flagInputFormat(cmd *cobra.Command) (ingest.Format, error) {
	raw, _ := cmd.Flags().GetString("input-format")
	return ingest.ParseFormat(raw)
}

// collectPayloads reads every input file, or stdin when none are given, into
// a single batch.
func collectPayloads(files []string, format ingest.Format) ([]cleaner.Payload, error) {
	if len(files) == 0 {
		if format == "" {
			format = ingest.FormatJSONL
		}
		return ingest.Load(os.Stdin, format, "stdin")
	}

	var payloads []cleaner.Payload
	for _, file := range files {
		loaded, err := ingest.LoadFile(file, format)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, loaded...)
	}
	return payloads, nil
}

// reducePayloads rewrites each payload text through the HTML reducer. A
// parse failure falls back to the raw text.
func reducePayloads(payloads []cleaner.Payload) {
	reducer := htmlreduce.New(nil)
	for i := range payloads {
		reduced, err := reducer.Reduce(payloads[i].Text)
		if err != nil {
			logger.Warn("html reduction failed, using raw text",
				"identifier", payloads[i].Identifier, "error", err)
			continue
		}
		payloads[i].Text = reduced
	}
}

func writeResult(cmd *cobra.Command, summary *cleaner.Summary) error {
	flags := cmd.Flags()

	formatFlag, _ := flags.GetString("format")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	dest := os.Stdout
	if path, _ := flags.GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		dest = f
	}

	w, err := output.NewWriter(dest, format)
	if err != nil {
		return err
	}

	partition, _ := flags.GetString("partition")
	switch partition {
	case "all":
		err = w.WriteSummary(summary)
	case "records":
		err = w.WriteRecords(summary.Records)
	case "duplicates":
		err = w.WriteRecords(summary.Duplicates)
	case "discarded":
		err = w.WriteRecords(summary.Discarded)
	default:
		return fmt.Errorf("unknown partition %q (expected records, duplicates, discarded, or all)", partition)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

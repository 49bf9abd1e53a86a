// Package main provides the entry point for the day-one-to-md CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MarvNC/day-one-to-md/internal/convert"
	"github.com/MarvNC/day-one-to-md/internal/export"
	"github.com/MarvNC/day-one-to-md/internal/output"
)

// newRootCmd creates the root command for the day-one-to-md CLI.
func newRootCmd() *cobra.Command {
	var outFlag string
	var formatFlag string
	var copyFlag bool

	cmd := &cobra.Command{
		Use:   "day-one-to-md <export-file>",
		Short: "Convert a Day One journal export to a single markdown document",
		Long: `day-one-to-md converts a Day One journaling export into one
chronologically ordered markdown document. Everything runs locally;
journal data never leaves the machine.

The input is either the export archive (.zip, the journal document is
located inside it) or the bare journal document (.json). Entries are
sorted ascending by creation date; entries without a usable timestamp
sort first under a 1970-01-01 header.

Examples:
  day-one-to-md export.zip                   # Markdown document to stdout
  day-one-to-md Journal.json --out notes/    # Write day-one-to-md-<date>.md into notes/
  day-one-to-md export.zip --out journal.md  # Write to an exact path
  day-one-to-md export.zip --copy            # Also copy the document to the clipboard
  day-one-to-md export.zip --format json     # Normalized records as a JSON array`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], outFlag, formatFlag, copyFlag)
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Output file or directory (if omitted, writes to stdout)")
	cmd.Flags().StringVar(&formatFlag, "format", "md", "Output format: md or json")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the rendered document to the clipboard")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")

	cmd.AddCommand(newServeCmd())

	return cmd
}

// runConvert executes one conversion run.
func runConvert(cmd *cobra.Command, path, outFlag, formatFlag string, copyFlag bool) error {
	jsonMode := isJSONMode(cmd)
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).WithStderr(cmd.ErrOrStderr())

	if formatFlag != "md" && formatFlag != "json" {
		err := output.NewUserError("--format must be 'md' or 'json'")
		printer.Error(err)
		return err
	}

	printer.Stderr("Converting %s...\n", filepath.Base(path))

	session := convert.NewSession()
	if err := session.Convert(path); err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	dest, err := writeDocument(printer, session, formatFlag, outFlag, jsonMode)
	if err != nil {
		printer.Error(err)
		return err
	}

	if copyFlag {
		if err := clipboard.WriteAll(session.Output); err != nil {
			printer.Warn("clipboard unavailable: %v", err)
		}
	}

	return reportSuccess(printer, session, jsonMode, dest)
}

// toExitError maps a conversion failure to an exit-coded error.
// Taxonomy errors (unsupported type, not found, malformed, empty) are
// user errors; I/O failures already carry the system code.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return output.NewUserErrorWithCause(err.Error(), err)
}

// writeDocument sends the rendered output to stdout or a file.
// Returns the destination path when a file was written. In JSON CLI
// mode with no --out, nothing is written here: the document travels
// inside the structured success payload instead.
func writeDocument(printer *output.Printer, session *convert.Session, format, outFlag string, jsonMode bool) (string, error) {
	if outFlag == "" {
		if jsonMode {
			return "", nil
		}
		if format == "json" {
			if err := export.FormatJSON(printer, session.Records); err != nil {
				return "", output.NewSystemError(err.Error())
			}
			return "", nil
		}
		printer.Print("%s\n", session.Output)
		return "", nil
	}

	dest := resolveDestination(outFlag, format, time.Now())

	content := session.Output + "\n"
	if format == "json" {
		data, err := export.MarshalRecords(session.Records)
		if err != nil {
			return "", output.NewSystemError(err.Error())
		}
		content = string(data)
	}

	if err := os.WriteFile(dest, []byte(content), 0o600); err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("writing %s: %v", dest, err), err)
	}
	return dest, nil
}

// resolveDestination turns the --out flag into a concrete file path.
// A directory gets the dated default filename; anything else is used
// as given.
func resolveDestination(outFlag, format string, now time.Time) string {
	info, err := os.Stat(outFlag)
	if err != nil || !info.IsDir() {
		return outFlag
	}

	name := export.DownloadFilename(now)
	if format == "json" {
		name = strings.TrimSuffix(name, ".md") + ".json"
	}
	return filepath.Join(outFlag, name)
}

// reportSuccess emits the advisory success status.
func reportSuccess(printer *output.Printer, session *convert.Session, jsonMode bool, dest string) error {
	if jsonMode {
		first, last := "", ""
		if len(session.Records) > 0 {
			first = export.HeaderTimestamp(session.Records[0].Instant)
			last = export.HeaderTimestamp(session.Records[len(session.Records)-1].Instant)
		}
		data := map[string]any{
			"status":  session.Status.String(),
			"entries": len(session.Records),
			"first":   first,
			"last":    last,
			"summary": session.Summary,
		}
		if dest != "" {
			data["output"] = dest
		} else {
			data["markdown"] = session.Output
		}
		return printer.Success(data)
	}

	if dest != "" {
		printer.Print("Wrote %s (%s)\n", dest, session.Summary)
		return nil
	}
	printer.Stderr("Converted %s\n", session.Summary)
	return nil
}

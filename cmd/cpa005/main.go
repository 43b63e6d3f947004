// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/moov-io/cpa005/pkg/cpa005"

	"github.com/spf13/cobra"
)

var (
	flagFileType  string
	flagOutputDir string
)

var rootCmd = &cobra.Command{
	Use:   "cpa005",
	Short: "Convert tabular payment listings into CPA-005 interchange files",
}

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert one or more CSV payment listings to CPA-005 files",
	Long: `Convert reads each CSV payment listing, validates every field, and
writes the rendered CPA-005 file next to it (or into --output) with a
.txt extension. --type selects PDS (direct deposit, credit records) or
PAD (pre-authorized debit, debit records) output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cpa005 version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cpa005.Version)
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagFileType, "type", "PDS", "File type to produce: PDS (credits) or PAD (debits)")
	convertCmd.Flags().StringVar(&flagOutputDir, "output", "", "Directory to write converted files into (defaults to each input's directory)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	recordType, err := recordTypeFor(flagFileType)
	if err != nil {
		return err
	}

	failures := 0
	for _, path := range args {
		if err := convertFile(path, recordType); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR converting %s:\n%v\n", path, err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failures, len(args))
	}
	return nil
}

func convertFile(path string, recordType cpa005.RecordType) error {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	rendered, err := cpa005.Convert(string(bs), recordType)
	if err != nil {
		return err
	}

	out := outputPath(path, flagOutputDir)
	if err := ioutil.WriteFile(out, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("cannot write output file %s: %v", out, err)
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

// recordTypeFor maps the --type selector onto the detail record type.
func recordTypeFor(fileType string) (cpa005.RecordType, error) {
	switch strings.ToUpper(strings.TrimSpace(fileType)) {
	case "PDS":
		return cpa005.Credit, nil
	case "PAD":
		return cpa005.Debit, nil
	default:
		return "", fmt.Errorf("unknown file type %q, expected PDS or PAD", fileType)
	}
}

// outputPath swaps an input's extension for .txt, optionally moving
// it into dir.
func outputPath(path, dir string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, base+".txt")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

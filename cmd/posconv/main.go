// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command posconv is the command-line front end for the conversion
// driver, built the way hailam-genfile/cmd/cli composes its root command:
// a cobra.Command tree wired directly to the application package (here,
// convert) from main, with no separate framework layer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpldgr/variant-nnue-tools/convert"
	"github.com/dpldgr/variant-nnue-tools/internal/stdpos"
	"github.com/dpldgr/variant-nnue-tools/posn"
	_ "github.com/dpldgr/variant-nnue-tools/registry"
)

func newPosition() posn.Position { return stdpos.New() }

// noopRescorer leaves a record's move and score untouched, the same
// empty-PV tolerance do_rescore falls back to. A real search is an
// external collaborator this module doesn't provide; a host that wires
// one in should implement convert.Rescorer itself and call convert.Run
// directly instead of going through this CLI.
type noopRescorer struct{}

func (noopRescorer) Rescore(pd *posn.PosData, depth, nodes int) {}

func main() {
	root := &cobra.Command{
		Use:   "posconv",
		Short: "Convert between chess position-corpus file formats.",
	}

	root.AddCommand(newExtractCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newConvertBinCmd())
	root.AddCommand(newConvertPlainCmd())
	root.AddCommand(newConvertBinFromPgnExtractCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newExtractCmd() *cobra.Command {
	var (
		inputFile   string
		outputFile  string
		inputCodec  string
		outputCodec string
		skip        int
		count       int
		rescore     bool
		depth       int
		nodes       int
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Decode an input corpus and re-encode it into another format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// inputCodec/outputCodec are accepted for CLI compatibility with
			// the source's token parser; this module resolves codecs from
			// the file extension instead (registry.GetPath).
			var rescorer convert.Rescorer
			if rescore {
				rescorer = noopRescorer{}
			}

			report, err := convert.Run(convert.Options{
				InputPath:   inputFile,
				OutputPath:  outputFile,
				Skip:        skip,
				Count:       count,
				Rescore:     rescore,
				Depth:       depth,
				Nodes:       nodes,
				Rescorer:    rescorer,
				NewPosition: newPosition,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Finished. Skipped %d positions. Processed %d positions.\n",
				report.Skipped, report.Processed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input_file", "i", "in.bin", "input file path")
	cmd.Flags().StringVarP(&outputFile, "output_file", "o", "out.bin2", "output file path")
	cmd.Flags().StringVarP(&inputCodec, "input_codec", "", "bin", "input codec override")
	cmd.Flags().StringVarP(&outputCodec, "output_codec", "", "bin2", "output codec override")
	cmd.Flags().IntVarP(&skip, "skip", "s", 0, "number of leading positions to skip")
	cmd.Flags().IntVarP(&count, "count", "c", -1, "number of positions to process (-1 = all)")
	cmd.Flags().BoolVarP(&rescore, "rescore", "r", false, "rescore each position before re-encoding")
	cmd.Flags().IntVarP(&depth, "depth", "d", 4, "rescore search depth")
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "rescore node budget")

	return cmd
}

// newConvertCmd implements the legacy two-path convert form: `convert
// from_path to_path [append] [validate]`. append/validate are accepted
// and ignored, since this module always creates a fresh output file and
// always validates framing on read.
func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert from_path to_path [append] [validate]",
		Short: "Legacy two-path conversion between formats selected by extension.",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := convert.Run(convert.Options{
				InputPath:   args[0],
				OutputPath:  args[1],
				Count:       -1,
				NewPosition: newPosition,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Finished. Skipped %d positions. Processed %d positions.\n",
				report.Skipped, report.Processed)
			return nil
		},
	}
}

// newConvertBinCmd is the legacy text-pipeline subcommand that re-encodes
// a directory of PGN-derived text files into BIN. The text codecs
// (PLAIN/EPD/FEN) are unimplemented stubs (original_source/poscodec.cpp's
// own PlainCodec is an unfinished TODO), so this wrapper exists for CLI
// exit-compatibility but reports that up front.
func newConvertBinCmd() *cobra.Command {
	return legacyTextPipelineCmd("convert_bin", "targetdir", "targetfile")
}

func newConvertPlainCmd() *cobra.Command {
	return legacyTextPipelineCmd("convert_plain", "basedir", "output_file_name")
}

func newConvertBinFromPgnExtractCmd() *cobra.Command {
	return legacyTextPipelineCmd("convert_bin_from_pgn_extract", "targetdir", "output_file_name")
}

func legacyTextPipelineCmd(name, posArg1, posArg2 string) *cobra.Command {
	var (
		plyMinimum       int
		plyMaximum       int
		checkInvalidFen  bool
		checkIllegalMove bool
	)
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s %s %s", name, posArg1, posArg2),
		Short: fmt.Sprintf("Legacy text pipeline (%s); requires a PLAIN/EPD/FEN decoder.", name),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%s: text-format codecs are not implemented in this build", name)
		},
	}
	cmd.Flags().IntVar(&plyMinimum, "ply_minimum", 0, "discard positions below this ply")
	cmd.Flags().IntVar(&plyMaximum, "ply_maximum", -1, "discard positions above this ply (-1 = unbounded)")
	cmd.Flags().BoolVar(&checkInvalidFen, "check_invalid_fen", false, "discard positions with an invalid FEN")
	cmd.Flags().BoolVar(&checkIllegalMove, "check_illegal_move", false, "discard positions with an illegal move")
	return cmd
}

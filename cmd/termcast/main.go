package main

import (
	"fmt"
	"os"

	"termcast/internal/convert"
	"termcast/pkg/capture"
	"termcast/pkg/events"

	"github.com/spf13/cobra"
)

var (
	timingPath   string
	formatName   string
	outPath      string
	manifestPath string
)

// Version is set via ldflags at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "termcast",
	Short: "termcast - convert terminal captures to a replayable event stream",
	Long: `termcast converts a recorded terminal session (a script timing log paired
with its raw output, or a ttyrec capture) into a JSON event stream of
[text, offset-ms] pairs.`,
}

var convertCmd = &cobra.Command{
	Use:   "convert [capture-file]",
	Short: "Convert a capture to a JSON event stream",
	Long: `Convert a capture to a JSON event stream.

For ttyrec captures, pass the capture file as the only argument. For script
timing captures, pass the raw output file as the argument and the timing log
via --timing. With --manifest, a YAML file describes a batch of conversions
instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if manifestPath != "" {
			if len(args) > 0 || timingPath != "" {
				return fmt.Errorf("--manifest cannot be combined with other inputs")
			}
			m, err := convert.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			return m.Run()
		}

		if len(args) != 1 {
			return fmt.Errorf("exactly one capture file is required")
		}
		stream, err := decodeCapture(args[0])
		if err != nil {
			return err
		}
		if outPath == "" {
			return convert.WriteJSON(os.Stdout, stream)
		}
		return convert.WriteFile(outPath, stream)
	},
}

// decodeCapture picks the decoder from the flags: --timing forces the
// timing-log format, otherwise --format decides (sniffing the file with
// "auto").
func decodeCapture(path string) (events.Stream, error) {
	if timingPath != "" {
		return convert.Timing(timingPath, path)
	}
	switch formatName {
	case "auto":
		return convert.Capture(path, capture.FormatUnknown)
	case "ttyrec":
		return convert.Capture(path, capture.FormatTTYRec)
	case "timing":
		return nil, fmt.Errorf("the timing format needs --timing <timing-log> with the raw output file as argument")
	default:
		return nil, fmt.Errorf("unknown format %q (must be auto, timing, or ttyrec)", formatName)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termcast %s\n", Version)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&timingPath, "timing", "t", "", "Timing log path; the positional argument is then the raw output file")
	convertCmd.Flags().StringVarP(&formatName, "format", "f", "auto", "Capture format: auto, timing, or ttyrec")
	convertCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the event stream to this file (default: stdout)")
	convertCmd.Flags().StringVar(&manifestPath, "manifest", "", "Convert a batch of captures described by a YAML manifest")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

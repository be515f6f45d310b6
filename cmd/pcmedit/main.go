// SPDX-License-Identifier: EPL-2.0

// Command pcmedit trims and changes the volume of PCM WAV files.
//
//	pcmedit -in speech.wav -start 0.5 -end 1.5 -gain -6 -out edited.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/pcmedit"
	"github.com/ik5/pcmedit/audio"
)

var (
	errNoInput           = errors.New("-in is required")
	errGainNeedsApproval = fmt.Errorf("gain beyond ±%g dB distorts the audio, pass -force to apply it", pcmedit.GainConfirmationThreshold)
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("pcmedit", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	in := flagSet.String("in", "", "WAV file to edit")
	start := flagSet.Float64("start", 0, "start of the range to keep, in seconds")
	end := flagSet.Float64("end", 0, "end of the range to keep, in seconds (default end of file)")
	gain := flagSet.Float64("gain", 0, "volume change in dB")
	force := flagSet.Bool("force", false, "apply gain beyond the confirmation threshold")
	out := flagSet.String("out", "", `WAV file to write, "-" for stdout`)
	aiffOut := flagSet.String("aiff", "", "AIFF file to export")
	info := flagSet.Bool("info", false, "print the buffer metadata after editing")
	verbose := flagSet.Bool("v", false, "verbose logging")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		flagSet.Usage()
		return errNoInput
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	session := pcmedit.NewSession(pcmedit.WithLogger(logger))

	if err := session.Load(*in); err != nil {
		return err
	}

	if set["start"] || set["end"] {
		stop := *end
		if !set["end"] {
			current, err := session.Info()
			if err != nil {
				return err
			}
			stop = current.DurationSeconds
		}

		if err := session.Trim(*start, stop); err != nil {
			return err
		}
	}

	if set["gain"] {
		if pcmedit.GainNeedsConfirmation(*gain) && !*force {
			return errGainNeedsApproval
		}

		if err := session.ChangeGain(*gain); err != nil {
			return err
		}
	}

	if *info {
		current, err := session.Info()
		if err != nil {
			return err
		}

		// keep stdout clean for the audio stream
		w := stdout
		if *out == "-" {
			w = stderr
		}
		fmt.Fprintln(w, current)
	}

	if *aiffOut != "" {
		written, err := session.ExportAIFF(*aiffOut)
		if err != nil {
			return err
		}
		fmt.Fprintln(stderr, "Exported:", written)
	}

	switch *out {
	case "":
	case "-":
		if err := session.Stream(stdout); err != nil {
			return err
		}
	default:
		written, err := session.Save(*out)
		if err != nil {
			return err
		}
		fmt.Fprintln(stderr, "Wrote:", written)
	}

	return nil
}

// describe renders errors from the library through pcmedit.Describe and
// everything else, such as flag errors, as is.
func describe(err error) string {
	if audio.KindOf(err) != nil || errors.Is(err, pcmedit.ErrNothingLoaded) {
		return pcmedit.Describe(err)
	}

	return err.Error()
}

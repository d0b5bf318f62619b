// Package cmd implements the tln subcommands. The engine itself never touches
// a file; everything stateful (tracker file I/O, logging, rendering) lives
// here.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/trackline/trackline"
)

// Commands lists every subcommand the tln binary registers.
var Commands = []subcommands.Command{
	&newCmd{},
	&scenarioCmd{},
	&recordCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&scheduleCmd{},
	&projectCmd{},
	&estimateCmd{},
	&reviewCmd{},
}

var trackerFile = flag.String("f", "tracker.jsonl", "Path to the tracker file (JSONL format)")
var verbose = flag.Bool("v", false, "Enable verbose logging")

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// Logger returns the shared CLI logger, honoring the -v flag.
func Logger() *logrus.Logger {
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// DecodeTrackerFile loads the tracker from the file given by the -f flag.
func DecodeTrackerFile() (*trackline.Tracker, error) {
	f, err := os.Open(*trackerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("tracker file %q does not exist, run 'tln new' first", *trackerFile)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open tracker file %q: %w", *trackerFile, err)
	}
	defer f.Close()
	t, err := trackline.DecodeTracker(f)
	if err != nil {
		return nil, fmt.Errorf("could not load tracker file %q: %w", *trackerFile, err)
	}
	Logger().WithFields(logrus.Fields{
		"tracker":   t.Name,
		"scenarios": len(t.Scenarios),
		"actuals":   len(t.Actuals),
		"flows":     len(t.Flows),
	}).Debug("tracker loaded")
	return t, nil
}

// SaveTrackerFile writes the tracker back in canonical form.
func SaveTrackerFile(t *trackline.Tracker) error {
	f, err := os.Create(*trackerFile)
	if err != nil {
		return fmt.Errorf("could not write tracker file %q: %w", *trackerFile, err)
	}
	defer f.Close()
	if err := trackline.EncodeTracker(f, t); err != nil {
		return fmt.Errorf("could not encode tracker file %q: %w", *trackerFile, err)
	}
	return nil
}

// render prints a markdown report, styled for the terminal when possible.
func render(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		Logger().WithError(err).Debug("falling back to raw markdown")
		out = markdown
	}
	fmt.Print(out)
}

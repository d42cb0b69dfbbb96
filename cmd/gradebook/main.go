package main

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"gradebook/internal/logging"
	"gradebook/internal/menu"
	"gradebook/internal/prompt"
	"gradebook/internal/settings"
	"gradebook/internal/store"
)

// newLineReader picks the TUI prompt for interactive terminals and plain
// line reading for pipes and files.
func newLineReader(in *os.File, out io.Writer) prompt.LineReader {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return prompt.NewTerminal(in, out)
	}
	return prompt.NewLines(in, out)
}

// run fails only on startup errors. Once the menu is running, every error is
// reported inline and the process exits normally.
func run(root string, stdin *os.File, stdout io.Writer) error {
	cfg, err := settings.Load(root)
	if err != nil {
		return err
	}

	logCfg := logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}
	if path := cfg.LogPath(root); path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		logCfg.Output = f
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}

	st := store.New(cfg.DataPath(root), logger)
	p := prompt.New(newLineReader(stdin, stdout), stdout)
	menu.New(st, p, stdout, logger).Run()
	return nil
}

func main() {
	root, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(root, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

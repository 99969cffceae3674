// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/compendium/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// runner carries the loaded configuration and the streams shared by every
// command.
type runner struct {
	cfg    *config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	r := &runner{in: in, out: out, errOut: errOut}
	return &cli.App{
		Name:      "compendium",
		Usage:     "Bilingual Pathfinder 2e rules compendium",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file",
				EnvVars: []string{config.EnvPrefix + "CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Path to the snapshot database directory",
			},
			&cli.BoolFlag{
				Name:  "in-memory",
				Usage: "Keep the snapshot in memory only",
			},
			&cli.StringFlag{
				Name:  "foundry",
				Usage: "Path to the Foundry pf2e checkout",
			},
			&cli.StringFlag{
				Name:  "translations",
				Usage: "Path to the pf2-fr checkout",
			},
		},
		Before:   r.setup,
		Commands: r.commands(),
	}
}

// setup loads the configuration, applies global flags over it and installs
// the logger.
func (r *runner) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("in-memory") {
		cfg.InMemory = c.Bool("in-memory")
	}
	if c.IsSet("foundry") {
		cfg.FoundryRoot = c.String("foundry")
	}
	if c.IsSet("translations") {
		cfg.TranslationRoot = c.String("translations")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := setupLogger(r.errOut, cfg.LogLevel); err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

func setupLogger(w io.Writer, levelStr string) error {
	// Map string to slog.Level
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

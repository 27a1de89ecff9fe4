// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command wupvideo is the record/parse CLI sketched in spec.md §6: a thin
// adapter over pkg/wupvideo's decoder and reassembly engine, with no
// reassembly logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/pion-community/wupvideo/pkg/wupvideo/adapter"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("wupvideo", pflag.ContinueOnError)

	mode := fs.String("mode", "", "operating mode: \"record\" or \"parse\" (required)")
	bind := fs.StringP("bind", "b", "", fmt.Sprintf("UDP bind address, e.g. \":%d\"", adapter.DefaultListenPort))
	path := fs.StringP("path", "p", "", "capture file path (required)")
	configPath := fs.StringP("config", "c", "", "YAML config file overriding the defaults below")
	staleThreshold := fs.Uint32("stale-threshold", 0, "stale_frame_threshold override")
	bufferCapacity := fs.Int("buffer-capacity", 0, "buffer_capacity override")
	listenPort := fs.Int("listen-port", 0, "listen_port override")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "wupvideo - WUP GamePad video capture record/parse tool.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wupvideo --mode record|parse [options]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 1
	}

	cfg := &adapter.Config{
		BufferCapacity:      *bufferCapacity,
		StaleFrameThreshold: *staleThreshold,
		ListenPort:          *listenPort,
		BindAddress:         *bind,
		Path:                *path,
	}

	if *configPath != "" {
		fileCfg, err := adapter.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wupvideo: %v\n", err)
			return 1
		}
		cfg = mergeConfig(fileCfg, cfg)
	}
	cfg.ApplyDefaults()

	if cfg.Path == "" {
		fmt.Fprintln(os.Stderr, "wupvideo: --path is required")
		fs.Usage()
		return 1
	}
	if cfg.BindAddress == "" {
		cfg.BindAddress = fmt.Sprintf(":%d", cfg.ListenPort)
	}

	loggerFactory := newCharmLoggerFactory()
	log := loggerFactory.NewLogger("wupvideo")

	var err error
	switch *mode {
	case "record":
		err = runRecord(cfg, log)
	case "parse":
		err = runParse(cfg, loggerFactory, log)
	default:
		fmt.Fprintln(os.Stderr, "wupvideo: --mode must be \"record\" or \"parse\"")
		fs.Usage()
		return 1
	}

	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// mergeConfig overrides fileCfg's fields with any non-zero field from cli,
// giving command-line flags precedence over the config file.
func mergeConfig(fileCfg, cli *adapter.Config) *adapter.Config {
	merged := *fileCfg
	if cli.BufferCapacity != 0 {
		merged.BufferCapacity = cli.BufferCapacity
	}
	if cli.StaleFrameThreshold != 0 {
		merged.StaleFrameThreshold = cli.StaleFrameThreshold
	}
	if cli.ListenPort != 0 {
		merged.ListenPort = cli.ListenPort
	}
	if cli.BindAddress != "" {
		merged.BindAddress = cli.BindAddress
	}
	if cli.Path != "" {
		merged.Path = cli.Path
	}
	return &merged
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pion/logging"

	"github.com/pion-community/wupvideo/pkg/wupvideo/adapter"
)

// runRecord binds a UDP socket at cfg.BindAddress and appends every
// datagram it receives to cfg.Path as a fixed-width record, until
// interrupted. Exit code 0 on a clean interrupt, non-zero on I/O error.
func runRecord(cfg *adapter.Config, log logging.LeveledLogger) error {
	src, err := adapter.NewUDPSource(cfg.BindAddress, cfg.BufferCapacity)
	if err != nil {
		return fmt.Errorf("bind %s: %w", cfg.BindAddress, err)
	}
	defer src.Close()

	rec, err := adapter.NewRawRecorder(cfg.Path, cfg.BufferCapacity)
	if err != nil {
		return fmt.Errorf("open capture file %s: %w", cfg.Path, err)
	}
	defer rec.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan error, 1)

	go func() {
		buf := make([]byte, cfg.BufferCapacity)
		for {
			n, err := src.ReadDatagram(buf)
			if err != nil {
				done <- fmt.Errorf("read datagram: %w", err)
				return
			}
			if err := rec.RecordDatagram(buf, n); err != nil {
				done <- err
				return
			}
			log.Tracef("wupvideo: recorded %d bytes", n)
		}
	}()

	select {
	case <-stop:
		// The socket is still open at this point; Close() below unblocks
		// the reader goroutine, which then exits on its own error and is
		// never waited on further -- fine for a short-lived CLI process.
		log.Infof("wupvideo: recording stopped")
		return nil
	case err := <-done:
		return err
	}
}

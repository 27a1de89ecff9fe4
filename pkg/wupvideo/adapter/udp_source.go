// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build linux

package adapter

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// UDPSource reads datagrams from a bound UDP socket, implementing
// wupvideo.Source. It is the out-of-scope "opening and binding the UDP
// socket" collaborator spec.md §4 names.
type UDPSource struct {
	conn *net.UDPConn
}

// NewUDPSource binds addr (host:port, e.g. ":50120") and tunes the socket
// receive buffer to rcvBufBytes so bursts of fragments arriving faster than
// the engine drains them don't get dropped by the kernel before Ingest ever
// sees them. A rcvBufBytes of 0 leaves the kernel default in place.
func NewUDPSource(addr string, rcvBufBytes int) (*UDPSource, error) {
	udpAddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("wupvideo/adapter: resolve %q: %w", addr, err)
	}

	conn, err := net.ListenUDP("udp4", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("wupvideo/adapter: listen %q: %w", addr, err)
	}

	if rcvBufBytes > 0 {
		if err := tuneRcvBuf(conn, rcvBufBytes); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return &UDPSource{conn: conn}, nil
}

// tuneRcvBuf sets SO_RCVBUF on the socket underlying conn.
func tuneRcvBuf(conn *net.UDPConn, bytes int) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return fmt.Errorf("wupvideo/adapter: raw conn: %w", err)
	}

	var sockoptErr error
	err = raw.Control(func(fd uintptr) {
		sockoptErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF, bytes)
	})
	if err != nil {
		return fmt.Errorf("wupvideo/adapter: control: %w", err)
	}
	if sockoptErr != nil {
		return fmt.Errorf("wupvideo/adapter: SO_RCVBUF=%d: %w", bytes, sockoptErr)
	}
	return nil
}

// ReadDatagram reads one UDP datagram into buf.
func (s *UDPSource) ReadDatagram(buf []byte) (int, error) {
	n, _, err := s.conn.ReadFromUDP(buf)
	return n, err
}

// Close releases the underlying socket.
func (s *UDPSource) Close() error {
	return s.conn.Close()
}

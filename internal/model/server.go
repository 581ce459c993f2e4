package model

import (
	"context"
	"net"
)

// SecurityLayer abstracts listener creation so the server can run plain
// or behind TLS depending on configuration.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a network server with lifecycle methods.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

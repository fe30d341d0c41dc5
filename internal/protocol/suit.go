// Package protocol describes what a per-connection protocol implementation consists of.
package protocol

// Parser consumes the request's headers section piece by piece. Once the section is
// complete, done is returned along with the bytes that belong to the body.
type Parser interface {
	Parse(data []byte) (done bool, extra []byte, err error)
}

// Server serves the connection. It returns false if no response could be delivered.
type Server interface {
	Serve() bool
}

// Suit is a parser and a server of the same protocol major version.
type Suit interface {
	Parser
	Server
}

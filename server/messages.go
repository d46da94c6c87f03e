package server

import "gitlab.com/tinyland/lab/sysdeck/snapshot"

// helloMessage is the initial payload sent on websocket connection.
type helloMessage struct {
	Type       string `json:"type"`
	IntervalMS int    `json:"interval_ms"`
	Hostname   string `json:"hostname,omitempty"`
}

// snapshotMessage wraps a snapshot for transport.
type snapshotMessage struct {
	Type string `json:"type"`
	*snapshot.Snapshot
}

// errorMessage communicates an error condition to the client.
type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// clientMessage is a generic envelope for decoding inbound client messages.
type clientMessage struct {
	Type string `json:"type"`
}

// pongMessage is the response to a ping.
type pongMessage struct {
	Type string `json:"type"`
}

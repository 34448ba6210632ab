// Package entity defines data structures shared by the web layer.
package entity

// Msg is the standard JSON response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// ChatReply is the payload returned by the chat endpoint.
type ChatReply struct {
	Response string `json:"response"`
}

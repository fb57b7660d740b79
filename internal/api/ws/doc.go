// Package ws provides WebSocket handling for real-time backend events.
//
// The desktop frontend keeps a single long-lived connection open to the
// /stream endpoint and receives pushed events such as notifications and
// scan progress. Clients may also execute service tools over the socket
// instead of the REST endpoint.
//
// Message Types (Client → Server):
//   - execute: Run a service tool (data carries tool_id and params)
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Connection established
//   - notification: Pushed notification
//   - result: Tool execution result
//   - pong: Ping reply
//   - error: Error occurred
package ws

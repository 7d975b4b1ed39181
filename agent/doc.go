// Package agent contains the conversational tool-calling agent driving
// ContentStudio. The package focuses on three concerns:
//
//  1. Turn management — conversation history kept in a session.Store
//  2. The model round loop — up to MaxIterations generations per user turn
//  3. Tool execution — sequential dispatch through a ToolInvoker
//
// Design principles:
//   - Minimal hidden global state – explicit wiring via New
//   - Observability – clear logging hooks per round and tool execution
//   - Tool transport is abstracted behind ToolInvoker so the same loop
//     drives a local registry or a remote stdio server
//
// The package intentionally keeps persistence, model specifics and tool
// registry abstractions in their respective packages to avoid cyclic deps.
package agent

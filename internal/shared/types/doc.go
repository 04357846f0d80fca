// Package types provides shared data structures for the scripthost backend.
//
// This package defines the provider contract used across all backend
// components: service definitions, tool specifications, execution context,
// and operation results.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution over the ops API
package types

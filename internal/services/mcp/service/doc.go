// Package service wires protocol transport to the launch MCP tools.
//
// It knows how to run MCP over stdio or streamable HTTP and delegates tool
// meaning to the domain package.
package service

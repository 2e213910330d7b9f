// Package domain exposes the launch dashboard views as MCP tools and
// resources.
//
// Tools resolve the same view models the dashboard renders, so an agent
// reading a proportion or correlation view sees exactly what a browser would
// plot for the same controls.
package domain

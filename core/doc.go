// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - tab selection and the light/dark theme flag
// - shell chrome: header, status bar, footer
//
// Not allowed here:
// - concrete panel or screen rendering
// - low-level widget rendering primitives
package core

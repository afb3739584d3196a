// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle — load the spec,
// resolve the requested profile, then emit the resolved configuration or
// the selected file list — decoupled from any specific entrypoint.
package app

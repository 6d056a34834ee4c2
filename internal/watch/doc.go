// Package watch reloads a local pathway source whenever it (or the config
// file) changes on disk. It debounces rapid events, reports which records
// were added, removed, or changed between reloads, and can render a
// unified diff of consecutive snapshots.
package watch

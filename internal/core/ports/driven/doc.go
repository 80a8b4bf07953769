// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KeyValueStore: Persistent user settings and viewing history
//   - ConfigStore: Tunables from the TOML configuration file
//   - VideoSearcher: The remote video search API
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Player: Video playback. Without it, selecting a video only records history.
//   - ChangeWatcher: External change notifications. Without it, the
//     history view only refreshes on view switches.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

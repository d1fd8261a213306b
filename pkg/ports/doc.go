/*
Package ports defines the driven ports (interfaces) around the HTN core.

These interfaces decouple execution from concrete worlds and action sources,
allowing the same action trees to run against in-memory or Redis-backed state.

# Key Interfaces

  - Executor: runs an action tree against a world.
  - ActionLibrary: constructs actions by name.
  - WorldBackend / Inventory: provide worlds and containers for a run.
  - DistributedLocker: serializes executions that share a world.
*/
package ports

/*
Package domain contains the core model of the hierarchical task network.

It is kept pure: no I/O, no persistence, no logging. Execution lives in the
runtime package; concrete worlds live in the adapters.

# Key Entities

  - Slot: a typed, named, optionally bound placeholder for an action input or output.
  - Action: a primitive (runs a Behavior) or a composite (runs its subtasks).
  - GroupWith: composes two actions, eliding inputs satisfied by the first one's outputs.
  - World / Container / Item: the minimal contract primitives act upon.
  - Result: the (success, payload or reason) outcome of an execution.
*/
package domain

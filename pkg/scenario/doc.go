/*
Package scenario loads and runs self-contained HTN scenarios.

A scenario file declares the initial world, a plan composed from library
actions, and the ordered inputs to execute it with:

	name: tidy the cup
	world:
	  id: lab
	  items:
	    - id: cup
	      manipulable: true
	  containers: [box]
	plan:
	  mode: group
	  steps: ["Pick up", "Store"]
	inputs: [cup, box]
	expect:
	  success: true
*/
package scenario

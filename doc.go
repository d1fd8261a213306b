/*
Package htn models Hierarchical Task Network actions for robots.

An action is either primitive (directly executable against a World) or
composite (built from subtasks). Two actions can be grouped into a learned
composite whose interface hides the data that flows between them: an output
of the first action satisfies a matching input of the second.

# Usage

	eng := htn.New()

	tidy, err := eng.Group("Pick up", "Store")
	if err != nil {
		log.Fatal(err)
	}

	cup := &domain.Item{ID: "cup", Manipulable: true}
	box := memory.NewBin("box")

	res := eng.Execute(ctx, tidy, []any{cup, box}, memory.NewWorld())
	if !res.Success {
		log.Printf("failed: %s", res.Reason)
	}

Execution is synchronous and aborts at the first failing subtask without
undoing the steps that already ran.
*/
package htn

package domain

// GroupWith composes a and b into a learned composite named "a & b".
//
// Each output of a claims the first unclaimed input of b with the same kind;
// claimed inputs are satisfied internally and dropped from the interface.
// The matching is greedy and order-stable, ties going to b's input order.
// Outputs contributed by a are never exposed. The subtasks of the result
// share the caller's full input vector.
func GroupWith(a, b *Action) *Action {
	ownInputs := len(a.Inputs)
	outputsOfA := len(a.Outputs)
	inputsOfB := cloneSlots(b.Inputs)

	grouped := NewLearned(a.Name + " & " + b.Name)
	grouped.AddSubtask(a)
	grouped.AddSubtask(b)

	used := make([]bool, len(inputsOfB))
	for _, out := range a.Outputs {
		for i, in := range inputsOfB {
			if !used[i] && in.Kind() == out.Kind() {
				used[i] = true
				break
			}
		}
	}

	grouped.Outputs = grouped.Outputs[outputsOfA:]

	inputs := grouped.Inputs[:ownInputs:ownInputs]
	for i, claimed := range used {
		if !claimed {
			inputs = append(inputs, grouped.Inputs[ownInputs+i])
		}
	}
	grouped.Inputs = inputs
	grouped.SharedInputs = true
	return grouped
}

// GroupWith is the method form of the package-level GroupWith.
func (a *Action) GroupWith(b *Action) *Action {
	return GroupWith(a, b)
}

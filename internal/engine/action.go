package engine

import (
	"fmt"

	"github.com/talgya/nudge-sim/internal/patient"
)

// NumActions is the size of the agent's action space.
const NumActions = 4

// actionTable lays out action ids as [prompt][task length].
var actionTable = [2][2]int{
	{0, 1},
	{2, 3},
}

// DecodeAction maps an action id to (prompt, task length):
// 0→(no, short) 1→(no, long) 2→(yes, short) 3→(yes, long).
func DecodeAction(id int) (patient.Action, error) {
	for prompt, row := range actionTable {
		for length, v := range row {
			if v == id {
				return patient.Action{Prompt: prompt == 1, TaskLength: length}, nil
			}
		}
	}
	return patient.Action{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidAction, id, NumActions)
}

// EncodeAction is the inverse of DecodeAction.
func EncodeAction(a patient.Action) int {
	prompt := 0
	if a.Prompt {
		prompt = 1
	}
	return actionTable[prompt][a.TaskLength&1]
}

package session

// Score counts the questions whose selected answer matches the correct
// one. Unanswered questions score zero. The score is recomputed from
// state on every call and never stored, so it cannot diverge from the
// answers it is derived from.
func Score(state State) int {
	score := 0
	for i, item := range state.Quiz {
		if key, ok := state.Answers[i]; ok && key == item.CorrectAnswer {
			score++
		}
	}
	return score
}

// Answered counts the questions with a selection.
func Answered(state State) int {
	n := 0
	for i := range state.Quiz {
		if _, ok := state.Answers[i]; ok {
			n++
		}
	}
	return n
}

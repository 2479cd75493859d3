package domain

// TaskFilter selects tasks by variant and completion state.
// Nil fields match every task.
type TaskFilter struct {
	Kind      *Kind
	Completed *bool
}

// Matches reports whether task satisfies every set criterion.
func (f TaskFilter) Matches(task Task) bool {
	if f.Kind != nil && task.Kind() != *f.Kind {
		return false
	}
	if f.Completed != nil && task.IsCompleted() != *f.Completed {
		return false
	}
	return true
}

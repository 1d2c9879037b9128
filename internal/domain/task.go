package domain

type Task struct {
	ID             string
	Title          string
	Type           TaskType
	EstimatedHours int
	Priority       Priority
	AssigneeID     *string
	Status         TaskStatus
}

func (t *Task) IsAssigned() bool {
	return t.AssigneeID != nil && *t.AssigneeID != ""
}

// CountUnassigned counts tasks still pending, which is what the task board
// badge reports as "unassigned".
func CountUnassigned(tasks []*Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == TaskPending {
			n++
		}
	}
	return n
}

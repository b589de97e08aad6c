package dashboard

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "TODO"
	TaskStatusDone TaskStatus = "DONE"
)

var AllTaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusDone,
}

func (s TaskStatus) IsValid() bool {
	for _, v := range AllTaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

package dashboard

type CreateGoalDTO struct {
	Title string `json:"title"`
}

type CreateTaskDTO struct {
	Title string `json:"title"`
}

type TaskStats struct {
	Total int `json:"total"`
	Todo  int `json:"todo"`
	Done  int `json:"done"`
}

type DashboardResponse struct {
	Goals []Goal    `json:"goals"`
	Todo  []Task    `json:"todo"`
	Done  []Task    `json:"done"`
	Stats TaskStats `json:"stats"`
}

func (b *Board) response() *DashboardResponse {
	resp := &DashboardResponse{
		Goals: append([]Goal{}, b.Goals...),
		Todo:  []Task{},
		Done:  []Task{},
	}

	for _, t := range b.Tasks {
		switch t.Status {
		case TaskStatusDone:
			resp.Done = append(resp.Done, t)
		default:
			resp.Todo = append(resp.Todo, t)
		}
	}

	resp.Stats = TaskStats{
		Total: len(b.Tasks),
		Todo:  len(resp.Todo),
		Done:  len(resp.Done),
	}
	return resp
}

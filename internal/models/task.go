package models

import "time"

type Task struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UserID      int        `json:"-"`
	ProjectID   int        `json:"-"`
	Due         *time.Time `json:"due"`
	Completed   bool       `json:"completed"`
}

type TaskSummary struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Due       *time.Time `json:"due"`
	Completed bool       `json:"completed"`
}

func (t *Task) Summary() TaskSummary {
	return TaskSummary{ID: t.ID, Name: t.Name, Due: t.Due, Completed: t.Completed}
}

// TaskView is a task with its creator, parent project and labels resolved.
type TaskView struct {
	Task
	Creator UserSummary    `json:"creator"`
	Project ProjectSummary `json:"project"`
	Labels  []LabelSummary `json:"labels"`
}

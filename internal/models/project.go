package models

import "time"

type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      int       `json:"-"`
	Created     time.Time `json:"created"`
	Ends        time.Time `json:"ends"`
	Completed   bool      `json:"completed"`
}

type ProjectSummary struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Ends        time.Time `json:"ends"`
}

func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{ID: p.ID, Name: p.Name, Description: p.Description, Ends: p.Ends}
}

// ProjectView is a project with its owner, tasks and labels resolved.
type ProjectView struct {
	Project
	Creator UserSummary    `json:"creator"`
	Tasks   []TaskSummary  `json:"tasks"`
	Labels  []LabelSummary `json:"labels"`
}

package models

type Label struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID int    `json:"-"`
}

type LabelSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (l *Label) Summary() LabelSummary {
	return LabelSummary{ID: l.ID, Name: l.Name, Color: l.Color}
}

package models

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
	Avatar       string `json:"avatar"`
	Profile      string `json:"profile"`
	IsAdmin      bool   `json:"is_admin"`
	Activated    bool   `json:"activated"`
	Suspended    bool   `json:"suspended"`
}

// UserSummary is the owner block nested in project and task payloads.
type UserSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Profile  string `json:"profile"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
		Avatar:   u.Avatar,
		Profile:  u.Profile,
	}
}

// UserView is the full profile returned by the user endpoints.
type UserView struct {
	User
	Projects []ProjectSummary `json:"projects"`
	Tasks    []TaskSummary    `json:"tasks"`
	Labels   []LabelSummary   `json:"labels"`
}

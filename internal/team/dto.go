package team

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	City      string `json:"city" binding:"max=100"`
	League    string `json:"league" binding:"max=100"`
	IsOurTeam bool   `json:"isOurTeam"`
}

type UpdateTeamRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	City      *string `json:"city" binding:"omitempty,max=100"`
	League    *string `json:"league" binding:"omitempty,max=100"`
	IsOurTeam *bool   `json:"isOurTeam"`
	IsActive  *bool   `json:"isActive"`
}

type ListTeamsQuery struct {
	Active *bool
	League string
}

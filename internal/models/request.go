package models

// TimeEntriesQuery holds the query parameters shared by the time-entries,
// report and export endpoints. StartDate and EndDate are epoch milliseconds;
// Preset, when set, overrides both.
type TimeEntriesQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Assignee  string `form:"assignee"`
	TeamID    string `form:"team_id"`
	Preset    string `form:"preset"`
}

// TasksQuery holds the query parameters for the task listing endpoint.
type TasksQuery struct {
	TeamID    string `form:"team_id"`
	Assignees string `form:"assignees"` // comma separated user ids
	Statuses  string `form:"statuses"`  // comma separated status names
	Page      int    `form:"page"`
}

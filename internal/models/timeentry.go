package models

import "encoding/json"

// RawNumber holds a numeric field that ClickUp serializes inconsistently:
// sometimes as a JSON number, sometimes as a quoted decimal string.
// The raw token is kept as-is; parsing happens in internal/utils.
type RawNumber string

// UnmarshalJSON accepts both a JSON number and a JSON string.
func (n *RawNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = RawNumber(s)
		return nil
	}
	*n = RawNumber(data)
	return nil
}

// MarshalJSON re-emits the value as a string, matching the most common
// wire form for durations and timestamps.
func (n RawNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

func (n RawNumber) String() string {
	return string(n)
}

// User represents a ClickUp user
type User struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email,omitempty"`
	Color          string  `json:"color,omitempty"`
	ProfilePicture *string `json:"profilePicture"`
	Initials       string  `json:"initials,omitempty"`
}

// Status represents a task status
type Status struct {
	ID         string `json:"id,omitempty"`
	Status     string `json:"status"`
	Type       string `json:"type,omitempty"`
	OrderIndex int    `json:"orderindex,omitempty"`
	Color      string `json:"color,omitempty"`
}

// TaskRef is the abbreviated task object embedded in a time entry
type TaskRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status,omitempty"`
}

// TaskLocation places a time entry's task inside the space/folder/list hierarchy.
// The space is what the dashboard treats as the "project" grouping key.
type TaskLocation struct {
	ListID     string `json:"list_id"`
	FolderID   string `json:"folder_id"`
	SpaceID    string `json:"space_id"`
	ListName   string `json:"list_name"`
	FolderName string `json:"folder_name"`
	SpaceName  string `json:"space_name"`
}

// Tag represents a tag attached to a time entry
type Tag struct {
	Name  string `json:"name"`
	TagBg string `json:"tag_bg"`
	TagFg string `json:"tag_fg"`
}

// TimeEntry represents one recorded work interval
type TimeEntry struct {
	ID           string        `json:"id"`
	Task         *TaskRef      `json:"task"`
	WID          string        `json:"wid"`
	User         User          `json:"user"`
	Billable     bool          `json:"billable"`
	Start        RawNumber     `json:"start"`
	End          RawNumber     `json:"end"`
	Duration     RawNumber     `json:"duration"`
	Description  string        `json:"description"`
	Tags         []Tag         `json:"tags,omitempty"`
	Source       string        `json:"source,omitempty"`
	At           RawNumber     `json:"at,omitempty"`
	TaskLocation *TaskLocation `json:"task_location,omitempty"`
}

// Workspace represents a ClickUp team/workspace
type Workspace struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Color   string            `json:"color"`
	Avatar  *string           `json:"avatar"`
	Members []WorkspaceMember `json:"members"`
}

// WorkspaceMember wraps a user inside a workspace's member list
type WorkspaceMember struct {
	User User `json:"user"`
}

// Member represents a team member as returned by the members endpoint
type Member struct {
	User      User  `json:"user"`
	InvitedBy *User `json:"invited_by,omitempty"`
}

// Space represents a ClickUp space (the dashboard's "project")
type Space struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Private  bool     `json:"private"`
	Color    *string  `json:"color"`
	Avatar   *string  `json:"avatar"`
	Statuses []Status `json:"statuses,omitempty"`
}

// Task represents a full ClickUp task
type Task struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Status       Status    `json:"status"`
	Assignees    []User    `json:"assignees,omitempty"`
	DueDate      RawNumber `json:"due_date,omitempty"`
	StartDate    RawNumber `json:"start_date,omitempty"`
	TimeEstimate int64     `json:"time_estimate,omitempty"`
	List         struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"list"`
	Folder struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"folder"`
	Space struct {
		ID string `json:"id"`
	} `json:"space"`
}

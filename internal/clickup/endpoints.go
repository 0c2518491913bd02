package clickup

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tracktime-report/internal/models"
)

// GetWorkspaces returns all workspaces (teams) visible to the token.
func (c *Client) GetWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	var envelope struct {
		Teams []models.Workspace `json:"teams"`
	}
	if err := c.get(ctx, "/team", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Teams, nil
}

// GetWorkspace returns a single workspace by id.
func (c *Client) GetWorkspace(ctx context.Context, teamID string) (*models.Workspace, error) {
	teams, err := c.GetWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID == teamID {
			return &teams[i], nil
		}
	}
	return nil, &APIError{Status: http.StatusNotFound, Message: "workspace " + teamID + " not found"}
}

// GetTeamMembers returns the members of a workspace. ClickUp API v2 has no
// dedicated members endpoint; members ride along on the team response.
func (c *Client) GetTeamMembers(ctx context.Context, teamID string) ([]models.Member, error) {
	team, err := c.GetWorkspace(ctx, teamID)
	if err != nil {
		return nil, err
	}
	members := make([]models.Member, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, models.Member{User: m.User})
	}
	return members, nil
}

// GetSpaces returns the spaces of a workspace.
func (c *Client) GetSpaces(ctx context.Context, teamID string) ([]models.Space, error) {
	var envelope struct {
		Spaces []models.Space `json:"spaces"`
	}
	if err := c.get(ctx, "/team/"+teamID+"/space", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Spaces, nil
}

// GetTimeEntries returns the time entries of a workspace inside [start, end]
// (epoch milliseconds), optionally filtered to a single assignee.
func (c *Client) GetTimeEntries(ctx context.Context, teamID string, start, end int64, assignee string) ([]models.TimeEntry, error) {
	params := url.Values{}
	params.Set("start_date", strconv.FormatInt(start, 10))
	params.Set("end_date", strconv.FormatInt(end, 10))
	if assignee != "" {
		params.Set("assignee", assignee)
	}

	var envelope struct {
		Data []models.TimeEntry `json:"data"`
	}
	if err := c.get(ctx, "/team/"+teamID+"/time_entries", params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// TaskListOptions filters the task listing endpoint.
type TaskListOptions struct {
	Assignees     []string
	Statuses      []string
	DateUpdatedGT int64
	Page          int
}

// GetTasks returns the tasks of a workspace matching the given options.
func (c *Client) GetTasks(ctx context.Context, teamID string, opts TaskListOptions) ([]models.Task, error) {
	params := url.Values{}
	if len(opts.Assignees) > 0 {
		params.Set("assignees", strings.Join(opts.Assignees, ","))
	}
	if len(opts.Statuses) > 0 {
		params.Set("statuses", strings.Join(opts.Statuses, ","))
	}
	if opts.DateUpdatedGT > 0 {
		params.Set("date_updated_gt", strconv.FormatInt(opts.DateUpdatedGT, 10))
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}

	var envelope struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.get(ctx, "/team/"+teamID+"/task", params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tasks, nil
}

// DefaultWorkspaceID returns the id of the first visible workspace.
func (c *Client) DefaultWorkspaceID(ctx context.Context) (string, error) {
	teams, err := c.GetWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	if len(teams) == 0 {
		return "", &APIError{Status: http.StatusNotFound, Message: "no workspaces found"}
	}
	return teams[0].ID, nil
}

package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tracktime-report/internal/clickup"
	"tracktime-report/internal/models"
	"tracktime-report/internal/services"
	"tracktime-report/internal/utils"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	client        *clickup.Client
	entryService  *services.EntryService
	reportService *services.ReportService
	exportService *services.ExportService
}

// NewHandlers creates a new handlers instance
func NewHandlers(
	client *clickup.Client,
	entryService *services.EntryService,
	reportService *services.ReportService,
	exportService *services.ExportService,
) *Handlers {
	return &Handlers{
		client:        client,
		entryService:  entryService,
		reportService: reportService,
		exportService: exportService,
	}
}

// GetWorkspacesHandler handles GET /api/clickup/workspaces
func (h *Handlers) GetWorkspacesHandler(c *gin.Context) {
	teams, err := h.client.GetWorkspaces(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "Failed to fetch workspaces", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetMembersHandler handles GET /api/clickup/members
func (h *Handlers) GetMembersHandler(c *gin.Context) {
	members, err := h.entryService.Members(c.Request.Context(), c.Query("team_id"))
	if err != nil {
		respondUpstreamError(c, "Failed to fetch members", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// GetSpacesHandler handles GET /api/clickup/spaces
func (h *Handlers) GetSpacesHandler(c *gin.Context) {
	teamID, err := h.resolveTeamID(c)
	if err != nil {
		respondUpstreamError(c, "Failed to resolve workspace", err)
		return
	}

	spaces, err := h.client.GetSpaces(c.Request.Context(), teamID)
	if err != nil {
		respondUpstreamError(c, "Failed to fetch spaces", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": spaces})
}

// GetTasksHandler handles GET /api/clickup/tasks
func (h *Handlers) GetTasksHandler(c *gin.Context) {
	var query models.TasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teamID := query.TeamID
	if teamID == "" {
		var err error
		if teamID, err = h.resolveTeamID(c); err != nil {
			respondUpstreamError(c, "Failed to resolve workspace", err)
			return
		}
	}

	opts := clickup.TaskListOptions{Page: query.Page}
	if query.Assignees != "" {
		opts.Assignees = strings.Split(query.Assignees, ",")
	}
	if query.Statuses != "" {
		opts.Statuses = strings.Split(query.Statuses, ",")
	}

	tasks, err := h.client.GetTasks(c.Request.Context(), teamID, opts)
	if err != nil {
		respondUpstreamError(c, "Failed to fetch tasks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTimeEntriesHandler handles GET /api/clickup/time-entries
func (h *Handlers) GetTimeEntriesHandler(c *gin.Context) {
	entries, ok := h.fetchEntries(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// GetTimeTrackingReportHandler handles GET /api/reports/time-tracking
func (h *Handlers) GetTimeTrackingReportHandler(c *gin.Context) {
	entries, ok := h.fetchEntries(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reportService.Aggregate(entries))
}

// ExportTimeEntriesCSVHandler handles GET /api/export/time-entries.csv
func (h *Handlers) ExportTimeEntriesCSVHandler(c *gin.Context) {
	entries, ok := h.fetchEntries(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("time-entries-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", h.exportService.BuildCSV(entries))
}

// fetchEntries binds the shared query parameters, resolves the date window
// (explicit epoch bounds or a named preset) and retrieves the merged entry
// collection. On failure it writes the error response and returns ok=false.
func (h *Handlers) fetchEntries(c *gin.Context) ([]models.TimeEntry, bool) {
	var query models.TimeEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var start, end int64
	if query.Preset != "" {
		from, to := utils.ResolveDateRange(utils.DateRangePreset(query.Preset), time.Now())
		start, end = from.UnixMilli(), to.UnixMilli()
	} else {
		if query.StartDate == "" || query.EndDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
			return nil, false
		}
		var err error
		if start, err = strconv.ParseInt(query.StartDate, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be epoch milliseconds"})
			return nil, false
		}
		if end, err = strconv.ParseInt(query.EndDate, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be epoch milliseconds"})
			return nil, false
		}
	}

	entries, err := h.entryService.FetchTimeEntries(c.Request.Context(), query.TeamID, start, end, query.Assignee)
	if err != nil {
		respondUpstreamError(c, "Failed to fetch time entries", err)
		return nil, false
	}
	return entries, true
}

func (h *Handlers) resolveTeamID(c *gin.Context) (string, error) {
	if teamID := c.Query("team_id"); teamID != "" {
		return teamID, nil
	}
	return h.client.DefaultWorkspaceID(c.Request.Context())
}

// respondUpstreamError maps an upstream failure to an error response. A typed
// ClickUp API error keeps its status code; anything else becomes a 500.
func respondUpstreamError(c *gin.Context, message string, err error) {
	log.Printf("WARNING: %s: %v", message, err)

	status := http.StatusInternalServerError
	var apiErr *clickup.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 {
		status = apiErr.Status
	}
	c.JSON(status, gin.H{"error": message})
}

package services

import (
	"sort"

	"tracktime-report/internal/models"
	"tracktime-report/internal/utils"
)

// Sentinel bucket for entries carrying neither a task location nor a task.
const (
	noProjectID   = "no-project"
	noProjectName = "Sem projeto"
)

// chartPalette is the fixed 10-hue palette projects cycle through. A
// project's color depends on the order its key was first encountered, not on
// the key itself.
var chartPalette = [10]string{
	"#0ea5e9", // sky
	"#8b5cf6", // violet
	"#f59e0b", // amber
	"#10b981", // emerald
	"#ef4444", // red
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#f97316", // orange
	"#84cc16", // lime
	"#6366f1", // indigo
}

// ColorForIndex returns the palette color for the n-th discovered project.
func ColorForIndex(index int) string {
	return chartPalette[index%len(chartPalette)]
}

// ReportService turns flat time entry collections into aggregated reports.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// Aggregate builds a TimeTrackingReport from a flat entry collection. It is a
// pure function of its input: no clock, no I/O, and it never fails. Malformed
// per-entry data degrades to zero-duration contributions instead of aborting.
func (s *ReportService) Aggregate(entries []models.TimeEntry) *models.TimeTrackingReport {
	var totalMs int64

	// Insertion-ordered grouping: index maps point into slices so first-seen
	// metadata (member name, project color) is captured exactly once.
	memberIndex := make(map[int]int)
	members := make([]memberAccumulator, 0)

	projectIndex := make(map[string]int)
	projects := make([]projectAccumulator, 0)

	dayIndex := make(map[string]int)
	days := make([]dayAccumulator, 0)

	for _, entry := range entries {
		duration := utils.ParseDuration(entry.Duration.String())
		totalMs += duration

		// By member: the first entry seen for a user pins their display
		// name and picture for the whole report.
		if idx, ok := memberIndex[entry.User.ID]; ok {
			members[idx].totalMs += duration
			members[idx].entries = append(members[idx].entries, entry)
		} else {
			memberIndex[entry.User.ID] = len(members)
			members = append(members, memberAccumulator{
				id:             entry.User.ID,
				name:           entry.User.Username,
				profilePicture: entry.User.ProfilePicture,
				totalMs:        duration,
				entries:        []models.TimeEntry{entry},
			})
		}

		// By project: space wins over task, and entries with neither still
		// land in a single sentinel bucket.
		projectID, projectName := projectKey(entry)
		if idx, ok := projectIndex[projectID]; ok {
			projects[idx].totalMs += duration
		} else {
			projectIndex[projectID] = len(projects)
			projects = append(projects, projectAccumulator{
				id:      projectID,
				name:    projectName,
				totalMs: duration,
				color:   ColorForIndex(len(projects)),
			})
		}

		// By calendar day of the start instant.
		day := utils.FormatDayKey(utils.ParseTimestamp(entry.Start.String()))
		if idx, ok := dayIndex[day]; ok {
			days[idx].totalMs += duration
		} else {
			dayIndex[day] = len(days)
			days = append(days, dayAccumulator{date: day, totalMs: duration})
		}
	}

	report := &models.TimeTrackingReport{
		TotalHours:   msToHours(totalMs),
		TotalEntries: len(entries),
		ByMember:     make([]models.MemberTimeData, 0, len(members)),
		ByProject:    make([]models.ProjectTimeData, 0, len(projects)),
		ByDay:        make([]models.DayTimeData, 0, len(days)),
	}

	for _, m := range members {
		report.ByMember = append(report.ByMember, models.MemberTimeData{
			MemberID:       m.id,
			MemberName:     m.name,
			ProfilePicture: m.profilePicture,
			Hours:          msToHours(m.totalMs),
			Entries:        m.entries,
		})
	}
	for _, p := range projects {
		report.ByProject = append(report.ByProject, models.ProjectTimeData{
			ProjectID:   p.id,
			ProjectName: p.name,
			Hours:       msToHours(p.totalMs),
			Color:       p.color,
		})
	}
	for _, d := range days {
		report.ByDay = append(report.ByDay, models.DayTimeData{
			Date:  d.date,
			Hours: msToHours(d.totalMs),
		})
	}

	// Stable sorts so ties keep input discovery order.
	sort.SliceStable(report.ByMember, func(i, j int) bool {
		return report.ByMember[i].Hours > report.ByMember[j].Hours
	})
	sort.SliceStable(report.ByProject, func(i, j int) bool {
		return report.ByProject[i].Hours > report.ByProject[j].Hours
	})
	sort.SliceStable(report.ByDay, func(i, j int) bool {
		return report.ByDay[i].Date < report.ByDay[j].Date
	})

	return report
}

// projectKey resolves the grouping id and display name through two
// independent fallback chains: space id, then task id, then the sentinel id;
// space name, then task name, then the sentinel label. An entry can therefore
// mix levels, e.g. a task id paired with a space name.
func projectKey(entry models.TimeEntry) (id, name string) {
	id = noProjectID
	name = noProjectName
	if entry.Task != nil {
		if entry.Task.ID != "" {
			id = entry.Task.ID
		}
		if entry.Task.Name != "" {
			name = entry.Task.Name
		}
	}
	if entry.TaskLocation != nil {
		if entry.TaskLocation.SpaceID != "" {
			id = entry.TaskLocation.SpaceID
		}
		if entry.TaskLocation.SpaceName != "" {
			name = entry.TaskLocation.SpaceName
		}
	}
	return id, name
}

func msToHours(ms int64) float64 {
	return float64(ms) / (1000 * 60 * 60)
}

type memberAccumulator struct {
	id             int
	name           string
	profilePicture *string
	totalMs        int64
	entries        []models.TimeEntry
}

type projectAccumulator struct {
	id      string
	name    string
	totalMs int64
	color   string
}

type dayAccumulator struct {
	date    string
	totalMs int64
}

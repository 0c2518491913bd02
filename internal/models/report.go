package models

// TimeTrackingReport is the aggregate produced from a raw entry collection.
// It is built fresh on every aggregation call and never mutated afterwards.
type TimeTrackingReport struct {
	TotalHours   float64           `json:"totalHours"`
	TotalEntries int               `json:"totalEntries"`
	ByMember     []MemberTimeData  `json:"byMember"`
	ByProject    []ProjectTimeData `json:"byProject"`
	ByDay        []DayTimeData     `json:"byDay"`
}

// MemberTimeData is the per-member breakdown. Name and profile picture are
// captured from the first entry seen for that member.
type MemberTimeData struct {
	MemberID       int         `json:"memberId"`
	MemberName     string      `json:"memberName"`
	ProfilePicture *string     `json:"profilePicture"`
	Hours          float64     `json:"hours"`
	Entries        []TimeEntry `json:"entries"`
}

// ProjectTimeData is the per-project breakdown. The color is assigned from a
// fixed palette by project discovery order.
type ProjectTimeData struct {
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Hours       float64 `json:"hours"`
	Color       string  `json:"color"`
}

// DayTimeData is the per-calendar-day breakdown, keyed by yyyy-MM-dd.
type DayTimeData struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

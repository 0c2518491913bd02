package models_test

import (
	"encoding/json"
	"testing"

	"tracktime-report/internal/models"
)

func TestRawNumberAcceptsBothWireForms(t *testing.T) {
	var entry models.TimeEntry
	payload := `{"id":"1","duration":"3600000","start":1741780800000,"user":{"id":1,"username":"A"}}`
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entry.Duration.String() != "3600000" {
		t.Errorf("duration = %q, want %q", entry.Duration, "3600000")
	}
	if entry.Start.String() != "1741780800000" {
		t.Errorf("start = %q, want %q", entry.Start, "1741780800000")
	}
}

func TestTimeEntryNullTask(t *testing.T) {
	var entry models.TimeEntry
	payload := `{"id":"1","task":null,"task_location":null,"user":{"id":1,"username":"A"}}`
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entry.Task != nil {
		t.Errorf("task = %+v, want nil", entry.Task)
	}
	if entry.TaskLocation != nil {
		t.Errorf("task_location = %+v, want nil", entry.TaskLocation)
	}
}

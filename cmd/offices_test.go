package cmd

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rtiworkbench/rti-cli/internal/testutil"
)

func TestOfficesRequiresLocation(t *testing.T) {
	testutil.NewWorkspace(t)
	testutil.UnreachableBackend(t)

	officesLocation = ""
	officesDepartment = ""

	if err := runOffices(testCommand(), nil); err == nil {
		t.Error("expected error for missing location")
	}
}

func TestOfficesRequiresDepartmentWithoutCase(t *testing.T) {
	testutil.NewWorkspace(t)
	testutil.UnreachableBackend(t)

	officesLocation = "Pune"
	officesDepartment = ""

	if err := runOffices(testCommand(), nil); err == nil {
		t.Error("expected error when no case supplies the department")
	}
}

func TestOfficesDefaultsDepartmentFromCase(t *testing.T) {
	testutil.NewWorkspace(t)
	testutil.MockBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["department"] != "Ministry of Education" {
			t.Errorf("expected department from case, got %q", payload["department"])
		}
		if payload["location"] != "Pune" {
			t.Errorf("unexpected location: %q", payload["location"])
		}
		w.Write([]byte(`["PIO Office, Pune Division"]`))
	})
	seedAnalyzedCase(t)

	officesLocation = "Pune"
	officesDepartment = ""

	if err := runOffices(testCommand(), nil); err != nil {
		t.Fatalf("offices failed: %v", err)
	}
}

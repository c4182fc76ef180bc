package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeSourceTable(t, dir, "refs.csv",
		"citing_paperid,cited_paperid,year,ref_year\nP1,P2,2021,2021\nP1,P3,2022,2021\n")
	writeSourceTable(t, dir, "affils.csv",
		"paperid,authorid,institutionid,author_position\nPA,alice,I1,1\n")

	out, err := runCommand(t, "check", "--format", "json",
		"--data-dir", dir, "--citation-table", "refs.csv", "--affiliation-table", "affils.csv")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var reports []TableReport
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].Table != "citation" || reports[0].Rows != 2 {
		t.Errorf("citation report = %+v, want 2 rows", reports[0])
	}
	if reports[1].Table != "affiliation" || reports[1].Rows != 1 {
		t.Errorf("affiliation report = %+v, want 1 row", reports[1])
	}
	for _, report := range reports {
		if report.Error != "" {
			t.Errorf("%s report carries error %q", report.Table, report.Error)
		}
	}
}

func TestCheckCommandMissingTable(t *testing.T) {
	dir := t.TempDir()
	writeSourceTable(t, dir, "affils.csv",
		"paperid,authorid,institutionid,author_position\nPA,alice,I1,1\n")

	out, err := runCommand(t, "check", "--format", "json",
		"--data-dir", dir, "--citation-table", "refs.csv", "--affiliation-table", "affils.csv")

	if err == nil {
		t.Fatal("Execute() expected error when a table is missing")
	}
	if !strings.Contains(err.Error(), "1 of 2 tables failed") {
		t.Errorf("Execute() error = %v, want failed table count", err)
	}

	var reports []TableReport
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if reports[0].Error == "" {
		t.Error("citation report should carry the load error")
	}
	if reports[1].Error != "" {
		t.Errorf("affiliation report carries unexpected error %q", reports[1].Error)
	}
}

func TestCheckCommandTextOutput(t *testing.T) {
	dir := t.TempDir()
	writeSourceTable(t, dir, "refs.csv",
		"citing_paperid,cited_paperid,year,ref_year\nP1,P2,2021,2021\n")
	writeSourceTable(t, dir, "affils.csv",
		"paperid,authorid,institutionid,author_position\nPA,alice,I1,1\n")

	out, err := runCommand(t, "check",
		"--data-dir", dir, "--citation-table", "refs.csv", "--affiliation-table", "affils.csv")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "citation") || !strings.Contains(out, "affiliation") {
		t.Errorf("text output %q should mention both tables", out)
	}
	if !strings.Contains(out, "1 rows") {
		t.Errorf("text output %q should mention the row count", out)
	}
}

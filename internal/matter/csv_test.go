package matter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV_Sample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matters.csv")
	if err := WriteSampleCSV(path); err != nil {
		t.Fatalf("WriteSampleCSV: %v", err)
	}

	matters, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if len(matters) != 10 {
		t.Fatalf("got %d matters, want 10", len(matters))
	}

	first := matters[0]
	if first.ID != "2ed7148386a56d1db9" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.RecordTypeName != "Billable Matter" {
		t.Errorf("RecordTypeName = %q", first.RecordTypeName)
	}
	if first.AttorneyName != "Taylor Miller" {
		t.Errorf("AttorneyName = %q", first.AttorneyName)
	}
	if first.CaseSubStage != "" {
		t.Errorf("CaseSubStage = %q, want empty", first.CaseSubStage)
	}
	if first.OpenDate != "7/21/23" {
		t.Errorf("OpenDate = %q", first.OpenDate)
	}
}

func TestReadCSV_ReorderedColumns(t *testing.T) {
	// Column matching is by header name, not position.
	path := filepath.Join(t.TempDir(), "matters.csv")
	content := "bis_Attorney_Name__c,Id,litify_pm__Display_Name__c,litify_pm__Client__r,litify_pm__Client__r.bis_Full_Formatted_Name__c,RecordType,RecordType.Name,bis_Case_Type__c,litify_pm__Status__c,Case_Stage__c,Case_Sub_Stage__c,litify_pm__Open_Date__c,litify_pm__Closed_Date__c,Primary_Legal_Assistant__r,Primary_Legal_Assistant__r.Name\n" +
		"Taylor Miller,abc123,Morgan Brown,[Account],Morgan Taylor,[RecordType],Billable Matter,WC WC-IN-HOUSE,Closed,Active,,7/21/23,8/31/23,,Riley Lee\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	matters, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(matters) != 1 {
		t.Fatalf("got %d matters, want 1", len(matters))
	}
	if matters[0].ID != "abc123" {
		t.Errorf("ID = %q, want abc123", matters[0].ID)
	}
	if matters[0].AttorneyName != "Taylor Miller" {
		t.Errorf("AttorneyName = %q", matters[0].AttorneyName)
	}
}

func TestReadCSV_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matters.csv")
	content := "Id,litify_pm__Display_Name__c\nabc123,Morgan Brown\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadCSV(path)
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "missing expected column") {
		t.Errorf("error = %v, want missing column message", err)
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnsureCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matters.csv")

	created, err := EnsureCSV(path)
	if err != nil {
		t.Fatalf("EnsureCSV: %v", err)
	}
	if !created {
		t.Error("expected sample to be written")
	}

	// Second call sees the existing file.
	created, err = EnsureCSV(path)
	if err != nil {
		t.Fatalf("EnsureCSV second call: %v", err)
	}
	if created {
		t.Error("expected existing file to be left alone")
	}
}

func TestMatterFieldsRoundTrip(t *testing.T) {
	m := Matter{
		ID:             "x1",
		DisplayName:    "Morgan Brown",
		RecordTypeName: "Personal Injury",
		CaseStage:      "Pre-Lit Settlement",
	}

	fields := m.Fields()
	if len(fields) != len(csvColumns) {
		t.Fatalf("Fields returned %d values, want %d", len(fields), len(csvColumns))
	}

	if got := fromFields(fields); got != m {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

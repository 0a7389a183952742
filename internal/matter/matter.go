// Package matter defines the legal matter record and its CSV loader.
package matter

// Matter is a single legal case/file record. All fields are free-text
// strings as exported by the practice-management system; dates stay in
// their original M/D/YY form.
type Matter struct {
	ID                    string
	DisplayName           string
	ClientName            string
	ClientFullName        string
	RecordType            string
	RecordTypeName        string
	CaseType              string
	Status                string
	CaseStage             string
	CaseSubStage          string
	OpenDate              string
	ClosedDate            string
	PrimaryLegalAssistant string
	AttorneyName          string
	AssistantName         string
}

// csvColumns maps the verbose source-system export headers to positions
// in the internal schema. Order matches the columns of the matters table.
var csvColumns = []string{
	"Id",
	"litify_pm__Display_Name__c",
	"litify_pm__Client__r",
	"litify_pm__Client__r.bis_Full_Formatted_Name__c",
	"RecordType",
	"RecordType.Name",
	"bis_Case_Type__c",
	"litify_pm__Status__c",
	"Case_Stage__c",
	"Case_Sub_Stage__c",
	"litify_pm__Open_Date__c",
	"litify_pm__Closed_Date__c",
	"Primary_Legal_Assistant__r",
	"bis_Attorney_Name__c",
	"Primary_Legal_Assistant__r.Name",
}

// CSVColumns returns the expected export headers, in schema order.
func CSVColumns() []string {
	cols := make([]string, len(csvColumns))
	copy(cols, csvColumns)
	return cols
}

// fromFields builds a Matter from values ordered as in csvColumns.
func fromFields(fields []string) Matter {
	return Matter{
		ID:                    fields[0],
		DisplayName:           fields[1],
		ClientName:            fields[2],
		ClientFullName:        fields[3],
		RecordType:            fields[4],
		RecordTypeName:        fields[5],
		CaseType:              fields[6],
		Status:                fields[7],
		CaseStage:             fields[8],
		CaseSubStage:          fields[9],
		OpenDate:              fields[10],
		ClosedDate:            fields[11],
		PrimaryLegalAssistant: fields[12],
		AttorneyName:          fields[13],
		AssistantName:         fields[14],
	}
}

// Fields returns the matter's values ordered as in the internal schema.
func (m Matter) Fields() []string {
	return []string{
		m.ID,
		m.DisplayName,
		m.ClientName,
		m.ClientFullName,
		m.RecordType,
		m.RecordTypeName,
		m.CaseType,
		m.Status,
		m.CaseStage,
		m.CaseSubStage,
		m.OpenDate,
		m.ClosedDate,
		m.PrimaryLegalAssistant,
		m.AttorneyName,
		m.AssistantName,
	}
}

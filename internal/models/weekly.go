package models

// JournalEntrySummary is one row of the weekly report table
type JournalEntrySummary struct {
	Date       string `json:"date"`
	CareWorker string `json:"careWorker"`
	Service    string `json:"service"`
	Notes      string `json:"notes"`
}

// Row returns the entry as template data
func (e JournalEntrySummary) Row() map[string]any {
	return map[string]any{
		"date":       e.Date,
		"careWorker": e.CareWorker,
		"service":    e.Service,
		"notes":      e.Notes,
	}
}

// WeeklyReportRequest is the body of a weekly report request.
// Pointer fields are authoritative when present, even if empty.
type WeeklyReportRequest struct {
	JournalSummary []JournalEntrySummary `json:"journalSummary" binding:"required,min=1"`
	PeriodStart    string                `json:"periodStart"`
	PeriodEnd      string                `json:"periodEnd"`

	ClientName       *string `json:"clientName,omitempty"`
	BirthDate        *string `json:"birthDate,omitempty"`
	GuardianContact  *string `json:"guardianContact,omitempty"`
	ReportDate       *string `json:"reportDate,omitempty"`
	SocialWorkerName *string `json:"socialWorkerName,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	RiskNotes        *string `json:"riskNotes,omitempty"`
	Evaluation       *string `json:"evaluation,omitempty"`
	Suggestion       *string `json:"suggestion,omitempty"`
}

// Authoritative returns the supplied optional fields keyed by their JSON names
func (r WeeklyReportRequest) Authoritative() map[string]string {
	out := map[string]string{}
	for key, v := range map[string]*string{
		"clientName":       r.ClientName,
		"birthDate":        r.BirthDate,
		"guardianContact":  r.GuardianContact,
		"reportDate":       r.ReportDate,
		"socialWorkerName": r.SocialWorkerName,
		"summary":          r.Summary,
		"riskNotes":        r.RiskNotes,
		"evaluation":       r.Evaluation,
		"suggestion":       r.Suggestion,
	} {
		if v != nil {
			out[key] = *v
		}
	}
	return out
}

// Rows returns the table rows as template data, one per input entry
func (r WeeklyReportRequest) Rows() []map[string]any {
	rows := make([]map[string]any, len(r.JournalSummary))
	for i, e := range r.JournalSummary {
		rows[i] = e.Row()
	}
	return rows
}

// WeeklyReportFields is what the model generates. Keys it omits decode as "", and
// scalar values of any JSON type decode as text.
type WeeklyReportFields struct {
	Title            Text `json:"title"`
	ClientName       Text `json:"clientName"`
	BirthDate        Text `json:"birthDate"`
	CareLevel        Text `json:"careLevel"`
	GuardianContact  Text `json:"guardianContact"`
	ReportDate       Text `json:"reportDate"`
	SocialWorkerName Text `json:"socialWorkerName"`
	Summary          Text `json:"summary"`
	RiskNotes        Text `json:"riskNotes"`
	Evaluation       Text `json:"evaluation"`
	Suggestion       Text `json:"suggestion"`
	PhysicalStatus   Text `json:"physicalStatus"`
	MentalStatus     Text `json:"mentalStatus"`
	MealSleepPattern Text `json:"mealSleepPattern"`
}

// Map returns the generated fields keyed by their JSON names
func (f WeeklyReportFields) Map() map[string]any {
	return map[string]any{
		"title":            string(f.Title),
		"clientName":       string(f.ClientName),
		"birthDate":        string(f.BirthDate),
		"careLevel":        string(f.CareLevel),
		"guardianContact":  string(f.GuardianContact),
		"reportDate":       string(f.ReportDate),
		"socialWorkerName": string(f.SocialWorkerName),
		"summary":          string(f.Summary),
		"riskNotes":        string(f.RiskNotes),
		"evaluation":       string(f.Evaluation),
		"suggestion":       string(f.Suggestion),
		"physicalStatus":   string(f.PhysicalStatus),
		"mentalStatus":     string(f.MentalStatus),
		"mealSleepPattern": string(f.MealSleepPattern),
	}
}

// WeeklyReportResponse echoes the assembled report with its links
type WeeklyReportResponse struct {
	File         string `json:"file"`
	DocxURL      string `json:"docx_url"`
	PdfURL       string `json:"pdf_url"`
	ExportedDocx string `json:"exportedDocx"`
	ExportedPdf  string `json:"exportedPdf"`
	PeriodStart  string `json:"periodStart"`
	PeriodEnd    string `json:"periodEnd"`

	Title            string                `json:"title"`
	ClientName       string                `json:"clientName"`
	BirthDate        string                `json:"birthDate"`
	CareLevel        string                `json:"careLevel"`
	GuardianContact  string                `json:"guardianContact"`
	ReportDate       string                `json:"reportDate"`
	SocialWorkerName string                `json:"socialWorkerName"`
	JournalSummary   []JournalEntrySummary `json:"journalSummary"`
	Summary          string                `json:"summary"`
	PhysicalStatus   string                `json:"physicalStatus"`
	MentalStatus     string                `json:"mentalStatus"`
	MealSleepPattern string                `json:"mealSleepPattern"`
	RiskNotes        string                `json:"riskNotes"`
	Evaluation       string                `json:"evaluation"`
	Suggestion       string                `json:"suggestion"`
}

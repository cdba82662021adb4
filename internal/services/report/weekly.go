package report

import (
	"fmt"
	"strings"

	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/narrative"
)

// weeklySchema is the generated part of a weekly report
var weeklySchema = []narrative.Field{
	{Key: "title", Description: "보고서 제목"},
	{Key: "clientName", Description: "대상자 이름"},
	{Key: "birthDate", Description: "생년월일"},
	{Key: "careLevel", Description: "요양 등급"},
	{Key: "guardianContact", Description: "보호자 연락처"},
	{Key: "reportDate", Description: "보고서 작성일"},
	{Key: "socialWorkerName", Description: "작성자(복지사)"},
	{Key: "summary", Description: "건강 및 생활상태 요약"},
	{Key: "riskNotes", Description: "위험요소"},
	{Key: "evaluation", Description: "복지사 평가"},
	{Key: "suggestion", Description: "제언 및 추천사항"},
	{Key: "physicalStatus", Description: "신체 상태 변화 한 문장 요약"},
	{Key: "mentalStatus", Description: "정신/정서 상태 한 문장 요약"},
	{Key: "mealSleepPattern", Description: "식사 및 수면 패턴 한 문장 요약"},
}

// weeklySource renders the journal rows as "date careWorker service notes" lines
func weeklySource(rows []models.JournalEntrySummary) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%s %s %s %s", r.Date, r.CareWorker, r.Service, r.Notes)
	}
	return strings.Join(lines, "\n")
}

// weeklyContext merges generated and supplied values into the template context
func weeklyContext(req models.WeeklyReportRequest, generated models.WeeklyReportFields) FieldSet {
	authoritative := fromStrings(req.Authoritative())
	authoritative["journalSummary"] = req.Rows()
	authoritative["periodStart"] = req.PeriodStart
	authoritative["periodEnd"] = req.PeriodEnd

	return Merge(FieldSet(generated.Map()), "", "", authoritative)
}

func weeklyResponse(fields FieldSet, req models.WeeklyReportRequest) *models.WeeklyReportResponse {
	return &models.WeeklyReportResponse{
		PeriodStart:      fields.String("periodStart"),
		PeriodEnd:        fields.String("periodEnd"),
		Title:            fields.String("title"),
		ClientName:       fields.String("clientName"),
		BirthDate:        fields.String("birthDate"),
		CareLevel:        fields.String("careLevel"),
		GuardianContact:  fields.String("guardianContact"),
		ReportDate:       fields.String("reportDate"),
		SocialWorkerName: fields.String("socialWorkerName"),
		JournalSummary:   req.JournalSummary,
		Summary:          fields.String("summary"),
		PhysicalStatus:   fields.String("physicalStatus"),
		MentalStatus:     fields.String("mentalStatus"),
		MealSleepPattern: fields.String("mealSleepPattern"),
		RiskNotes:        fields.String("riskNotes"),
		Evaluation:       fields.String("evaluation"),
		Suggestion:       fields.String("suggestion"),
	}
}

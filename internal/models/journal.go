package models

// JournalRequest is the body of a counseling journal generation request
type JournalRequest struct {
	Text     string `json:"text" binding:"required"`
	Date     string `json:"date"`
	Service  string `json:"service"`
	Manager  string `json:"manager"`
	Method   string `json:"method"`
	Type     string `json:"type"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Client   string `json:"client" binding:"required"`
	Contact  string `json:"contact"`
	Opinion  string `json:"opinion"`
	Result   string `json:"result"`
	Note     string `json:"note"`
}

// Journal template keys
const (
	JournalKeyDate     = "상담일자"
	JournalKeyService  = "서비스"
	JournalKeyManager  = "담당자"
	JournalKeyType     = "상담유형"
	JournalKeyMethod   = "상담방법"
	JournalKeyTime     = "상담시간"
	JournalKeyTitle    = "상담제목"
	JournalKeyCategory = "구분"
	JournalKeyClient   = "대상자"
	JournalKeyContact  = "연락처"
	JournalKeyAction   = "조치사항"
	JournalKeySummary  = "상담내용"
	JournalKeyOpinion  = "상담자의견"
	JournalKeyResult   = "상담결과"
	JournalKeyNote     = "비고"
)

// Authoritative returns the caller-supplied fields under their template keys
func (r JournalRequest) Authoritative() map[string]any {
	return map[string]any{
		JournalKeyDate:     r.Date,
		JournalKeyService:  r.Service,
		JournalKeyManager:  r.Manager,
		JournalKeyType:     r.Type,
		JournalKeyMethod:   r.Method,
		JournalKeyTime:     r.Time,
		JournalKeyTitle:    r.Title,
		JournalKeyCategory: r.Category,
		JournalKeyClient:   r.Client,
		JournalKeyContact:  r.Contact,
		JournalKeyOpinion:  r.Opinion,
		JournalKeyResult:   r.Result,
		JournalKeyNote:     r.Note,
	}
}

// JournalResponse is returned after the journal is published
type JournalResponse struct {
	File            string `json:"file"`
	DocxURL         string `json:"docx_url"`
	PdfURL          string `json:"pdf_url"`
	Summary         string `json:"summary"`
	Recommendations string `json:"recommendations"`
	Opinion         string `json:"opinion"`
	Result          string `json:"result"`
	Note            string `json:"note"`
}

// FileRequest names a previously published file
type FileRequest struct {
	FileName string `json:"file_name" binding:"required"`
}

// DownloadURLResponse carries a presigned link
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url"`
}

// PDFResponse is returned by the on-demand conversion endpoint
type PDFResponse struct {
	PdfURL string `json:"pdf_url"`
}

// TranscriptionResponse carries the joined transcript
type TranscriptionResponse struct {
	Text string `json:"text"`
}

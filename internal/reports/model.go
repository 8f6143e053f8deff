package reports

import "time"

// Report types accepted by the generator.
const (
	TypeGoal  = "goal"
	TypeEvent = "event"
	TypeDonor = "donor"
)

// Output formats.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatWord  = "word"
)

type GenerateRequest struct {
	ReportType string `json:"reportType" binding:"required,oneof=goal event donor"`
	IDs        []uint `json:"ids" binding:"required,min=1"`
	Format     string `json:"format" binding:"required,oneof=pdf excel word"`
	Upload     bool   `json:"upload"`
}

// GenerateResponse is returned when the report was uploaded instead of
// streamed back.
type GenerateResponse struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

type GoalReportRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
}

type EventReportRow struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Attendance  int       `json:"attendance"`
	FundsRaised float64   `json:"fundsRaised"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

type DonorReportRow struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TotalDonated  float64 `json:"totalDonated"`
	DonationCount int64   `json:"donationCount"`
}

// table is the flat shape every renderer consumes.
type table struct {
	Title   string
	Headers []string
	Widths  []float64
	Rows    [][]string
}

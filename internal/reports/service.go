package reports

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest, adminID *uint, ip string) ([]byte, string, string, error)
	GenerateAndUpload(ctx context.Context, req GenerateRequest, adminID *uint, ip string) (*GenerateResponse, error)
	EventReport(ctx context.Context, eventID uint, format string) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter Exporter
	uploader *utils.Uploader
	auditSvc auditlog.Service
}

func NewService(repo Repository, exporter Exporter, uploader *utils.Uploader, auditSvc auditlog.Service) Service {
	return &service{repo: repo, exporter: exporter, uploader: uploader, auditSvc: auditSvc}
}

// Generate fetches the rows for the requested entity type, flattens them into
// a tabular shape and dispatches to the format renderer.
func (s *service) Generate(ctx context.Context, req GenerateRequest, adminID *uint, ip string) ([]byte, string, string, error) {
	t, err := s.buildTable(ctx, req.ReportType, req.IDs)
	if err != nil {
		return nil, "", "", err
	}

	data, name, mime, err := s.exporter.Export(req.Format, *t)
	if err != nil {
		return nil, "", "", err
	}

	s.auditSvc.LogAction(ctx, adminID, "REPORT_GENERATED", map[string]interface{}{
		"report_type": req.ReportType,
		"format":      req.Format,
		"rows":        len(t.Rows),
	}, ip, "SUCCESS")

	return data, name, mime, nil
}

// GenerateAndUpload renders the report and pushes it to Cloudinary, returning
// the download URL instead of the bytes.
func (s *service) GenerateAndUpload(ctx context.Context, req GenerateRequest, adminID *uint, ip string) (*GenerateResponse, error) {
	if s.uploader == nil {
		return nil, utils.NewError(http.StatusServiceUnavailable, "file storage is not configured")
	}

	data, name, _, err := s.Generate(ctx, req, adminID, ip)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.UploadFile(bytes.NewReader(data), "reports", name)
	if err != nil {
		return nil, utils.NewError(http.StatusBadGateway, "report upload failed")
	}
	return &GenerateResponse{FileName: name, URL: url}, nil
}

// EventReport is the single-event summary exposed on the event routes.
func (s *service) EventReport(ctx context.Context, eventID uint, format string) ([]byte, string, string, error) {
	if format == "" {
		format = FormatPDF
	}
	t, err := s.buildTable(ctx, TypeEvent, []uint{eventID})
	if err != nil {
		return nil, "", "", err
	}
	if len(t.Rows) == 0 {
		return nil, "", "", utils.NotFound("event not found")
	}
	return s.exporter.Export(format, *t)
}

func (s *service) buildTable(ctx context.Context, reportType string, ids []uint) (*table, error) {
	switch reportType {
	case TypeGoal:
		rows, err := s.repo.GoalRows(ctx, ids)
		if err != nil {
			return nil, err
		}
		t := &table{
			Title:   "Fundraising Goals Report",
			Headers: []string{"ID", "Name", "Target", "Raised", "Status", "Start Date"},
			Widths:  []float64{15, 65, 30, 30, 25, 30},
		}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				fmt.Sprint(r.ID), r.Name,
				fmt.Sprintf("%.2f", r.TargetAmount),
				fmt.Sprintf("%.2f", r.CurrentAmount),
				r.Status, r.StartDate.Format("2006-01-02"),
			})
		}
		return t, nil

	case TypeEvent:
		rows, err := s.repo.EventRows(ctx, ids)
		if err != nil {
			return nil, err
		}
		t := &table{
			Title:   "Events Report",
			Headers: []string{"ID", "Name", "Location", "Status", "Attendance", "Funds Raised", "Start", "End"},
			Widths:  []float64{15, 55, 45, 25, 25, 30, 40, 40},
		}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				fmt.Sprint(r.ID), r.Name, r.Location, r.Status,
				fmt.Sprint(r.Attendance),
				fmt.Sprintf("%.2f", r.FundsRaised),
				r.StartDate.Format("2006-01-02 15:04"),
				r.EndDate.Format("2006-01-02 15:04"),
			})
		}
		return t, nil

	case TypeDonor:
		rows, err := s.repo.DonorRows(ctx, ids)
		if err != nil {
			return nil, err
		}
		t := &table{
			Title:   "Donors Report",
			Headers: []string{"ID", "Name", "Email", "Total Donated", "Donations"},
			Widths:  []float64{15, 55, 65, 30, 25},
		}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				fmt.Sprint(r.ID), r.Name, r.Email,
				fmt.Sprintf("%.2f", r.TotalDonated),
				fmt.Sprint(r.DonationCount),
			})
		}
		return t, nil
	}
	return nil, utils.BadRequest("invalid report type")
}

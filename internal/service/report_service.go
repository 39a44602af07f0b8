package service

import (
	"context"
	"fmt"
	"time"

	"statusping/internal/repository"
	"statusping/pkg/mail"
)

// ReportService mails fleet status summaries: on demand for one account, and
// from the daily cron job for the whole installation (empty accountId).
type ReportService interface {
	ReportMonitorsInformation(ctx context.Context, accountId string, startDate time.Time, endDate time.Time, mailAddress string) error
}

type reportService struct {
	checkResultRepo repository.CheckResultRepository
	mailSender      mail.Sender
}

func (s *reportService) ReportMonitorsInformation(ctx context.Context, accountId string, startDate time.Time, endDate time.Time, mailAddress string) error {
	fleetInfo, err := s.checkResultRepo.GetFleetHealthInformation(ctx, accountId, startDate, endDate)
	if err != nil {
		return fmt.Errorf("ReportService.ReportMonitorsInformation: %w", err)
	}
	textBody := generateReportTextBody(fleetInfo)
	htmlBody := generateReportHTMLBody(fleetInfo)
	subject := fmt.Sprintf("Monitors Status Report From %s To %s",
		startDate.Format("2006-01-02"), endDate.Add(-1*time.Second).Format("2006-01-02"))
	if err = s.mailSender.SendMail([]string{mailAddress}, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("ReportService.ReportMonitorsInformation: %w", err)
	}
	return nil
}

func generateReportTextBody(fleetInfo repository.FleetHealthInformation) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Monitors: %d\n"+
			"Up: %d\n"+
			"Down: %d\n"+
			"Unknown: %d\n"+
			"Paused: %d\n\n"+
			"Average Uptime Across All Monitors: %.2f%%",
		fleetInfo.TotalMonitorsCnt,
		fleetInfo.UpMonitorsCnt,
		fleetInfo.DownMonitorsCnt,
		fleetInfo.UnknownMonitorsCnt,
		fleetInfo.InactiveMonitorsCnt,
		fleetInfo.AverageUptimePercentage,
	)
}

func generateReportHTMLBody(fleetInfo repository.FleetHealthInformation) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Monitors:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Up Monitors:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Down Monitors:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Unknown Monitors:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Paused Monitors:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		fleetInfo.TotalMonitorsCnt,
		fleetInfo.UpMonitorsCnt,
		fleetInfo.DownMonitorsCnt,
		fleetInfo.UnknownMonitorsCnt,
		fleetInfo.InactiveMonitorsCnt,
		fleetInfo.AverageUptimePercentage,
	)
}

func NewReportService(checkResultRepo repository.CheckResultRepository, mailSender mail.Sender) ReportService {
	return &reportService{
		checkResultRepo: checkResultRepo,
		mailSender:      mailSender,
	}
}

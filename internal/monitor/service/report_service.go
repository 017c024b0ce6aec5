package service

import (
	"context"
	"fleetwatch/internal/monitor/model"
	"fleetwatch/internal/monitor/repository"
	"fleetwatch/pkg/mail"
	"fmt"
	"sort"
	"strings"
	"time"
)

type ReportService interface {
	SendDailyReport(ctx context.Context) error
	SendReport(ctx context.Context, recipient string, from time.Time, to time.Time) error
}

type reportService struct {
	rollupRepo repository.RollupRepository
	mailSender mail.Sender
	recipients []string
}

type serverReportSummary struct {
	ServerName       string
	ProtocolKind     string
	SampleCount      int64
	HealthyCount     int64
	UptimePercentage float64
	AvgLatencyMillis *float64
	WorstP95Millis   *float64
}

// SendDailyReport mails a per-server summary of the previous UTC day,
// built from that day's hourly rollups.
func (s *reportService) SendDailyReport(ctx context.Context) error {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour).Add(-24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)
	period := dayStart.Format("2006-01-02")
	subject := fmt.Sprintf("Fleet Health Report For %s", period)
	err := s.sendReport(ctx, s.recipients, dayStart, dayEnd, period, subject)
	if err != nil {
		return fmt.Errorf("ReportService.SendDailyReport: %w", err)
	}
	return nil
}

// SendReport mails the summary for an arbitrary window to a single
// recipient, on demand.
func (s *reportService) SendReport(ctx context.Context, recipient string, from time.Time, to time.Time) error {
	period := fmt.Sprintf("%s To %s", from.Format("2006-01-02"), to.Add(-1*time.Second).Format("2006-01-02"))
	subject := fmt.Sprintf("Fleet Health Report From %s", period)
	err := s.sendReport(ctx, []string{recipient}, from, to, period, subject)
	if err != nil {
		return fmt.Errorf("ReportService.SendReport: %w", err)
	}
	return nil
}

func (s *reportService) sendReport(ctx context.Context, recipients []string, from time.Time, to time.Time, period string, subject string) error {
	rollups, err := s.rollupRepo.GetRollups(ctx, "", from, to)
	if err != nil {
		return err
	}
	summaries := summarizeRollups(rollups)
	textBody := generateTextReportBody(period, summaries)
	htmlBody := generateHTMLReportBody(period, summaries)
	return s.mailSender.SendMail(recipients, subject, htmlBody, textBody, nil)
}

func summarizeRollups(rollups []model.HealthHourly) []serverReportSummary {
	grouped := make(map[string][]model.HealthHourly)
	for _, rollup := range rollups {
		grouped[rollup.ServerName] = append(grouped[rollup.ServerName], rollup)
	}
	summaries := make([]serverReportSummary, 0, len(grouped))
	for serverName, serverRollups := range grouped {
		summary := serverReportSummary{
			ServerName:   serverName,
			ProtocolKind: serverRollups[len(serverRollups)-1].ProtocolKind,
		}
		var latencySum float64
		var worstP95 float64
		hasLatency := false
		for _, rollup := range serverRollups {
			summary.SampleCount += rollup.SampleCount
			summary.HealthyCount += rollup.HealthyCount
			if rollup.AvgLatencyMillis != nil {
				latencySum += *rollup.AvgLatencyMillis * float64(rollup.HealthyCount)
			}
			if rollup.P95LatencyMillis != nil {
				if !hasLatency || *rollup.P95LatencyMillis > worstP95 {
					worstP95 = *rollup.P95LatencyMillis
				}
				hasLatency = true
			}
		}
		if summary.SampleCount > 0 {
			summary.UptimePercentage = float64(summary.HealthyCount) / float64(summary.SampleCount) * 100
		}
		if hasLatency && summary.HealthyCount > 0 {
			avg := latencySum / float64(summary.HealthyCount)
			summary.AvgLatencyMillis = &avg
			summary.WorstP95Millis = &worstP95
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ServerName < summaries[j].ServerName
	})
	return summaries
}

func formatLatency(latency *float64) string {
	if latency == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f ms", *latency)
}

func generateTextReportBody(period string, summaries []serverReportSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- FLEET HEALTH REPORT %s ---\n", period))
	b.WriteString(fmt.Sprintf("Servers With Data: %d\n\n", len(summaries)))
	for _, summary := range summaries {
		b.WriteString(fmt.Sprintf(
			"%s (%s)\n"+
				"  Samples: %d\n"+
				"  Healthy: %d\n"+
				"  Uptime: %.2f%%\n"+
				"  Average Latency: %s\n"+
				"  Worst P95 Latency: %s\n\n",
			summary.ServerName,
			summary.ProtocolKind,
			summary.SampleCount,
			summary.HealthyCount,
			summary.UptimePercentage,
			formatLatency(summary.AvgLatencyMillis),
			formatLatency(summary.WorstP95Millis),
		))
	}
	return b.String()
}

func generateHTMLReportBody(period string, summaries []serverReportSummary) string {
	headerFormat := `<body>
    <h3>Fleet Health Report %s</h3>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Server</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Protocol</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Samples</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Healthy</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Uptime</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Latency</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Worst P95 Latency</td>
        </tr>`
	rowFormat := `
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>`
	var b strings.Builder
	b.WriteString(fmt.Sprintf(headerFormat, period))
	for _, summary := range summaries {
		b.WriteString(fmt.Sprintf(rowFormat,
			summary.ServerName,
			summary.ProtocolKind,
			summary.SampleCount,
			summary.HealthyCount,
			summary.UptimePercentage,
			formatLatency(summary.AvgLatencyMillis),
			formatLatency(summary.WorstP95Millis),
		))
	}
	b.WriteString("\n    </table>\n</body>")
	return b.String()
}

func NewReportService(rollupRepository repository.RollupRepository, mailSender mail.Sender, recipients []string) ReportService {
	return &reportService{
		rollupRepo: rollupRepository,
		mailSender: mailSender,
		recipients: recipients,
	}
}

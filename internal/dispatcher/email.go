package dispatcher

import (
	"context"
	"fmt"

	"statusping/internal/detector"
	"statusping/internal/model"
	"statusping/pkg/mail"
)

type emailChannel struct {
	sender mail.Sender
}

func (e *emailChannel) Name() string {
	return model.AlertChannelEmail
}

func (e *emailChannel) Send(ctx context.Context, event detector.TransitionEvent, account model.Account) error {
	var subject, textBody, htmlBody string
	if event.Kind == model.AlertKindDown {
		subject = fmt.Sprintf("[DOWN] %s", event.Monitor.Name)
		textBody = generateDownTextBody(event)
		htmlBody = generateDownHTMLBody(event)
	} else {
		subject = fmt.Sprintf("[RESOLVED] %s", event.Monitor.Name)
		textBody = generateUpTextBody(event)
		htmlBody = generateUpHTMLBody(event)
	}
	err := e.sender.SendMail([]string{account.Email}, subject, htmlBody, textBody)
	if err != nil {
		return fmt.Errorf("emailChannel.Send: %w", err)
	}
	return nil
}

func generateDownTextBody(event detector.TransitionEvent) string {
	return fmt.Sprintf(
		"%s is down.\n\n"+
			"Target: %s\n"+
			"Consecutive Failures: %d\n"+
			"First Failure At: %s",
		event.Monitor.Name,
		event.Monitor.URL,
		event.Incident.FailureCount,
		event.Incident.StartedAt.Format("2006-01-02 15:04:05 MST"),
	)
}

func generateDownHTMLBody(event detector.TransitionEvent) string {
	htmlFormat := `
<body>
    <p style="font-size: 16px;"><strong>%s</strong> is down.</p>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Target:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Consecutive Failures:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">First Failure At:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		event.Monitor.Name,
		event.Monitor.URL,
		event.Incident.FailureCount,
		event.Incident.StartedAt.Format("2006-01-02 15:04:05 MST"),
	)
}

func generateUpTextBody(event detector.TransitionEvent) string {
	return fmt.Sprintf(
		"%s is back up.\n\n"+
			"Target: %s\n"+
			"Downtime: %s",
		event.Monitor.Name,
		event.Monitor.URL,
		humanizeDuration(downtime(event.Incident)),
	)
}

func generateUpHTMLBody(event detector.TransitionEvent) string {
	htmlFormat := `
<body>
    <p style="font-size: 16px;"><strong>%s</strong> is back up.</p>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Target:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Downtime:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		event.Monitor.Name,
		event.Monitor.URL,
		humanizeDuration(downtime(event.Incident)),
	)
}

func NewEmailChannel(sender mail.Sender) Channel {
	return &emailChannel{
		sender: sender,
	}
}

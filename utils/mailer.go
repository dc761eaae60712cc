package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitSES sets up the SES client. Callers that never send email (tests, local
// runs without AWS credentials) simply skip this; sendEmail then no-ops.
func InitSES() error {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return fmt.Errorf("AWS config load failed: %w", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return nil
}

func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendProvisioningDigest mails the ops address a summary of a provisioning
// run that had per-user failures.
func SendProvisioningDigest(to string, day string, created, skipped, failed int) error {
	subject := fmt.Sprintf("Provisioning digest for %s", day)
	body := fmt.Sprintf(
		"Daily record provisioning for %s finished with failures.\n\ncreated: %d\nskipped: %d\nfailed users: %d\n\nCheck the service logs for per-user details.",
		day, created, skipped, failed,
	)
	return sendEmail(to, subject, body)
}

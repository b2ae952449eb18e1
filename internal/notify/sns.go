package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"stockroom/internal/config"
)

// publisher is the part of the SNS client the sender uses.
type publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSender publishes notifications to an SNS topic. Subscribers filter on
// the user_id message attribute.
type SNSSender struct {
	client   publisher
	topicARN string
	logger   *zap.Logger
}

// NewSNS builds an SNS sender from explicit configuration. The AWS client is
// created here, once, and owned by the caller's process.
func NewSNS(ctx context.Context, cfg config.NotifyConfig, logger *zap.Logger) (*SNSSender, error) {
	if cfg.SNSTopicARN == "" {
		return nil, errors.New("sns topic arn is required")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithHTTPClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newSNSSender(sns.NewFromConfig(awsCfg), cfg.SNSTopicARN, logger), nil
}

func newSNSSender(client publisher, topicARN string, logger *zap.Logger) *SNSSender {
	return &SNSSender{client: client, topicARN: topicARN, logger: logger}
}

func (s *SNSSender) Send(ctx context.Context, userID, title, body string) error {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(title),
		Message:  aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"user_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(userID),
			},
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		s.logger.Warn("notification not delivered",
			zap.String("component", "notify"),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("publish notification: %w", err)
	}
	s.logger.Debug("notification published",
		zap.String("component", "notify"),
		zap.String("user_id", userID),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

package ocr

import (
	"Journal-Backend/domain"
	"Journal-Backend/internal/utils"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

type (
	// JobStatus is the state of an asynchronous text detection job. A job
	// that has not finished yet has Complete=false and no lines; that is not
	// an error. Lines are returned in the order the service emitted them.
	JobStatus struct {
		Complete bool
		Lines    []string
	}

	OcrClient interface {
		// SubmitJob starts async text detection on a stored object and
		// returns the job handle. A success response without a job id
		// returns ("", nil); callers must check for emptiness.
		SubmitJob(ctx context.Context, objectKey string) (string, error)
		GetJobStatus(ctx context.Context, jobID string) (JobStatus, error)
	}

	textractClient struct {
		client *textract.Client
		bucket string
	}
)

func NewTextractClient() OcrClient {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	return &textractClient{
		client: textract.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
	}
}

func (c *textractClient) SubmitJob(ctx context.Context, objectKey string) (string, error) {
	out, err := c.client.StartDocumentTextDetection(ctx, &textract.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{
			S3Object: &types.S3Object{
				Bucket: aws.String(c.bucket),
				Name:   aws.String(objectKey),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOcrSubmit, err)
	}

	if out.JobId == nil {
		return "", nil
	}
	return *out.JobId, nil
}

func (c *textractClient) GetJobStatus(ctx context.Context, jobID string) (JobStatus, error) {
	var lines []string
	var nextToken *string

	for {
		out, err := c.client.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
			JobId:     aws.String(jobID),
			NextToken: nextToken,
		})
		if err != nil {
			return JobStatus{}, fmt.Errorf("%w: %v", domain.ErrOcrPoll, err)
		}

		switch out.JobStatus {
		case types.JobStatusInProgress:
			return JobStatus{Complete: false}, nil
		case types.JobStatusFailed:
			return JobStatus{}, fmt.Errorf("%w: job %s failed", domain.ErrOcrPoll, jobID)
		}

		// Only line blocks contribute to the assembled text; order is the
		// order the service returned them.
		for _, block := range out.Blocks {
			if block.BlockType == types.BlockTypeLine && block.Text != nil {
				lines = append(lines, *block.Text)
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return JobStatus{Complete: true, Lines: lines}, nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService implements the image classifier on AWS
// Rekognition.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(ctx context.Context, region string) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Classify returns the top detected label, lowercased, with its
// confidence scaled to [0,1].
func (r *RekognitionService) Classify(ctx context.Context, image []byte) (string, float64, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return "", 0, err
	}
	if len(out.Labels) == 0 {
		return "", 0, errors.New("no labels detected")
	}

	top := out.Labels[0]
	label := strings.ToLower(aws.ToString(top.Name))
	confidence := float64(aws.ToFloat32(top.Confidence)) / 100.0
	return label, confidence, nil
}

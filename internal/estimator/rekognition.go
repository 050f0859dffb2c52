package estimator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/theirongolddev/kburn/internal/model"
)

const (
	maxLabels     = 10
	minConfidence = 70
)

// labelDetector is the slice of the Rekognition API this package uses.
type labelDetector interface {
	DetectLabels(ctx context.Context, in *rekognition.DetectLabelsInput, opts ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// Rekognition maps AWS image labels onto the food catalog.
type Rekognition struct {
	client labelDetector
}

// NewRekognition loads AWS credentials from the default chain.
func NewRekognition(ctx context.Context, region string) (*Rekognition, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("estimator: loading AWS config: %w", err)
	}
	return &Rekognition{client: rekognition.NewFromConfig(cfg)}, nil
}

// Name implements Estimator.
func (r *Rekognition) Name() string { return model.SourceRekognition }

// Estimate implements Estimator. Labels are checked in the order returned,
// which is highest confidence first.
func (r *Rekognition) Estimate(ctx context.Context, req Request) (model.Estimate, error) {
	if len(req.Image) == 0 {
		return model.Estimate{}, ErrEmptyRequest
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: req.Image},
		MaxLabels:     aws.Int32(maxLabels),
		MinConfidence: aws.Float32(minConfidence),
	})
	if err != nil {
		return model.Estimate{}, fmt.Errorf("estimator: detecting labels: %w", err)
	}

	var seen []string
	for _, l := range out.Labels {
		name := aws.ToString(l.Name)
		if name == "" {
			continue
		}
		seen = append(seen, name)
		f, ok := lookup(name)
		if !ok {
			continue
		}
		est := f.estimate(model.SourceRekognition)
		est.Confidence = float64(aws.ToFloat32(l.Confidence)) / 100
		est.Explanation = "Detected labels: " + strings.Join(labelNames(out.Labels), ", ")
		return est, nil
	}

	if len(seen) > 0 {
		return model.Estimate{}, fmt.Errorf("%w (labels: %s)", ErrNoFoodDetected, strings.Join(seen, ", "))
	}
	return model.Estimate{}, ErrNoFoodDetected
}

func labelNames(labels []types.Label) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if n := aws.ToString(l.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

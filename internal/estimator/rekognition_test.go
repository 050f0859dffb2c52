package estimator

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/theirongolddev/kburn/internal/model"
)

type fakeDetector struct {
	labels []types.Label
	err    error
	got    *rekognition.DetectLabelsInput
}

func (f *fakeDetector) DetectLabels(_ context.Context, in *rekognition.DetectLabelsInput, _ ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &rekognition.DetectLabelsOutput{Labels: f.labels}, nil
}

func label(name string, conf float32) types.Label {
	return types.Label{Name: aws.String(name), Confidence: aws.Float32(conf)}
}

func TestRekognition_MatchesFirstFoodLabel(t *testing.T) {
	det := &fakeDetector{labels: []types.Label{
		label("Food", 99.1),
		label("Pizza", 94),
		label("Plate", 88),
	}}
	r := &Rekognition{client: det}

	est, err := r.Estimate(context.Background(), Request{Filename: "x.jpg", Image: []byte{0xff, 0xd8}})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.FoodName != "Cheese Pizza Slice" || est.Calories != 285 {
		t.Errorf("got %s/%d", est.FoodName, est.Calories)
	}
	if est.Confidence < 0.9399 || est.Confidence > 0.9401 {
		t.Errorf("Confidence = %f, want 0.94", est.Confidence)
	}
	if est.Source != model.SourceRekognition {
		t.Errorf("Source = %q", est.Source)
	}

	if aws.ToInt32(det.got.MaxLabels) != maxLabels || aws.ToFloat32(det.got.MinConfidence) != minConfidence {
		t.Errorf("input limits = %d/%f", aws.ToInt32(det.got.MaxLabels), aws.ToFloat32(det.got.MinConfidence))
	}
	if len(det.got.Image.Bytes) != 2 {
		t.Errorf("image bytes not forwarded")
	}
}

func TestRekognition_NoFood(t *testing.T) {
	r := &Rekognition{client: &fakeDetector{labels: []types.Label{label("Dog", 97), label("Grass", 80)}}}
	_, err := r.Estimate(context.Background(), Request{Image: []byte{1}})
	if !errors.Is(err, ErrNoFoodDetected) {
		t.Errorf("err = %v, want ErrNoFoodDetected", err)
	}

	r = &Rekognition{client: &fakeDetector{}}
	if _, err := r.Estimate(context.Background(), Request{Image: []byte{1}}); !errors.Is(err, ErrNoFoodDetected) {
		t.Errorf("no labels err = %v, want ErrNoFoodDetected", err)
	}
}

func TestRekognition_Errors(t *testing.T) {
	boom := errors.New("throttled")
	r := &Rekognition{client: &fakeDetector{err: boom}}
	if _, err := r.Estimate(context.Background(), Request{Image: []byte{1}}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped detector error", err)
	}
	if _, err := r.Estimate(context.Background(), Request{Filename: "salad.jpg"}); !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("missing image err = %v, want ErrEmptyRequest", err)
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"bidright/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func savedEstimate(userID, id string, created time.Time) entities.Estimate {
	return entities.Estimate{
		ID:             id,
		UserID:         userID,
		Hours:          72,
		HourRange:      entities.Range{Min: 58, Max: 86},
		Cost:           3350,
		CostRange:      entities.Range{Min: 3000, Max: 3700},
		RevisionLimit:  2,
		IndustryName:   "Web Development",
		ProjectName:    "Website",
		ComplexityName: "Medium",
		FeatureNames:   []string{"Responsive Design", "Content Management System"},
		Input: entities.EstimateInput{
			IndustryID:    "webdev",
			ProjectTypeID: "website",
			Complexity:    "medium",
			FeatureIDs:    []string{"responsive", "cms"},
		},
		CreatedAt: created,
	}
}

func TestEstimateDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewEstimateDynamoRepository(ddb, "")
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e := savedEstimate("u-1", "e-1", created)
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := repo.GetByID(ctx, "u-1", "e-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "e-1" || got.Cost != 3350 || got.CostRange.Max != 3700 || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if len(got.Input.FeatureIDs) != 2 || got.Input.FeatureIDs[1] != "cms" || got.FeatureNames[0] != "Responsive Design" {
		t.Fatalf("selections not preserved: %+v", got.Input)
	}

	t.Run("other user cannot read it", func(t *testing.T) {
		other, err := repo.GetByID(ctx, "u-2", "e-1")
		if err != nil || other.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", other, err)
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, e)
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})
}

func TestEstimateDynamoRepository_ListCountDelete(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewEstimateDynamoRepository(ddb, "estimates")
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// ids sort opposite to creation time
	for i, id := range []string{"e-5", "e-4", "e-3", "e-2", "e-1"} {
		if _, err := repo.Create(ctx, savedEstimate("u-1", id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if _, err := repo.Create(ctx, savedEstimate("u-2", "x-1", base)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	list, err := repo.ListByUserID(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 estimates across pages, got %d", len(list))
	}
	if list[0].ID != "e-5" || list[4].ID != "e-1" {
		t.Fatalf("expected oldest first, got %s..%s", list[0].ID, list[4].ID)
	}

	n, err := repo.CountByUserID(ctx, "u-1")
	if err != nil || n != 5 {
		t.Fatalf("expected 5, got %d err=%v", n, err)
	}

	deleted, err := repo.Delete(ctx, "u-1", "e-3")
	if err != nil || !deleted {
		t.Fatalf("expected delete, got %v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, "u-1", "e-3")
	if err != nil || deleted {
		t.Fatalf("expected no-op delete, got %v err=%v", deleted, err)
	}
	if n, _ := repo.CountByUserID(ctx, "u-1"); n != 4 {
		t.Fatalf("expected 4 after delete, got %d", n)
	}
	if n, _ := repo.CountByUserID(ctx, "nobody"); n != 0 {
		t.Fatalf("expected 0 for unknown user, got %d", n)
	}
}

func TestEstimateDynamoRepository_Errors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("db")
	repo := NewEstimateDynamoRepository(ddb, "")
	ctx := context.Background()

	if _, err := repo.ListByUserID(ctx, "u-1"); err == nil {
		t.Fatalf("expected list error")
	}
	if _, err := repo.CountByUserID(ctx, "u-1"); err == nil {
		t.Fatalf("expected count error")
	}
	if _, err := repo.GetByID(ctx, "u-1", "e-1"); err == nil {
		t.Fatalf("expected get error")
	}
}

func TestSubscriptionDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewSubscriptionDynamoRepository(ddb, "")
	ctx := context.Background()

	none, err := repo.GetByUserID(ctx, "u-1")
	if err != nil || none.UserID != "" {
		t.Fatalf("expected zero value, got %+v err=%v", none, err)
	}

	renewal := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	sub := entities.Subscription{UserID: "u-1", Plan: "pro", Active: true, Annual: true, RenewalDate: renewal, PaymentID: "pay-1", UpdatedAt: renewal.AddDate(0, -1, 0)}
	if _, err := repo.Upsert(ctx, sub); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	sub.Canceled = true
	if _, err := repo.Upsert(ctx, sub); err != nil {
		t.Fatalf("unexpected err on overwrite: %v", err)
	}

	got, err := repo.GetByUserID(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Plan != "pro" || !got.Active || !got.Canceled || !got.Annual || !got.RenewalDate.Equal(renewal) || got.PaymentID != "pay-1" {
		t.Fatalf("unexpected subscription: %+v", got)
	}
}

func TestTimeHelpers(t *testing.T) {
	if formatTime(time.Time{}) != "" || !parseTime("").IsZero() {
		t.Fatalf("zero time should round trip as empty")
	}
	if !parseTime("garbage").IsZero() {
		t.Fatalf("invalid time should parse as zero")
	}
}

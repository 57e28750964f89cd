package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/xavierca1/leadqual/internal/entity"
)

// trailing window for the per-day breakdown
const metricsWindowDays = 14

// GetDashboardMetricsUseCase derives the dashboard summary by scanning the
// repository's full contents. The dashboard polls this, so no incremental
// state is kept.
type GetDashboardMetricsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewGetDashboardMetricsUseCase(repo entity.LeadRepositoryInterface) *GetDashboardMetricsUseCase {
	return &GetDashboardMetricsUseCase{Repo: repo}
}

func (uc *GetDashboardMetricsUseCase) Execute(ctx context.Context) (*DashboardMetrics, error) {
	leads, err := uc.Repo.List(ctx, entity.LeadFilter{})
	if err != nil {
		return nil, &TechnicalError{Code: "METRICS_READ_FAILED", Message: fmt.Sprintf("failed to list leads: %v", err)}
	}

	metrics := &DashboardMetrics{TotalLeads: len(leads)}

	totalScore := 0
	for _, lead := range leads {
		totalScore += lead.Score
		switch lead.ScoreLabel {
		case entity.LabelHot:
			metrics.HotLeads++
		case entity.LabelWarm:
			metrics.WarmLeads++
		case entity.LabelCold:
			metrics.ColdLeads++
		}
	}

	if metrics.TotalLeads > 0 {
		qualified := float64(metrics.HotLeads + metrics.WarmLeads)
		metrics.ConversionRate = int(math.Round(qualified / float64(metrics.TotalLeads) * 100))
		metrics.AverageScore = int(math.Round(float64(totalScore) / float64(metrics.TotalLeads)))
	}

	metrics.LeadsPerDay = perDayBuckets(leads, time.Now().UTC())

	return metrics, nil
}

func perDayBuckets(leads []*entity.Lead, now time.Time) []DayBucket {
	buckets := make([]DayBucket, 0, metricsWindowDays)

	for i := metricsWindowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		bucket := DayBucket{Date: date}

		for _, lead := range leads {
			if lead.CreatedAt.UTC().Format("2006-01-02") != date {
				continue
			}
			bucket.Count++
			switch lead.ScoreLabel {
			case entity.LabelHot:
				bucket.Hot++
			case entity.LabelWarm:
				bucket.Warm++
			case entity.LabelCold:
				bucket.Cold++
			}
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

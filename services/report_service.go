package services

import (
	"context"
	"sort"
	"time"

	"beamtime-api/config"
	"beamtime-api/models"

	"gorm.io/gorm"
)

const monthKeyLayout = "2006-01"

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	if db == nil {
		db = config.DB
	}
	return &ReportService{db: db}
}

// YearBounds returns the first and last second of year in UTC.
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

// Monthly counts requests and allocations created in year, per month.
func (s *ReportService) Monthly(ctx context.Context, year int) ([]models.MonthlyReportItem, error) {
	if year < 1 || year > 9999 {
		return nil, invalid("year %d is out of range", year)
	}
	start, end := YearBounds(year)

	var requestTimes, allocationTimes []time.Time
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Model(&models.BeamtimeRequest{}).
			Where("created_at BETWEEN ? AND ?", start, end).
			Pluck("created_at", &requestTimes).Error; err != nil {
			return err
		}
		return tx.Model(&models.Allocation{}).
			Where("created_at BETWEEN ? AND ?", start, end).
			Pluck("created_at", &allocationTimes).Error
	})
	if err != nil {
		return nil, err
	}

	return BucketByMonth(requestTimes, allocationTimes), nil
}

// BucketByMonth groups creation times into YYYY-MM rows sorted by month.
// Months without any activity are left out.
func BucketByMonth(requestTimes, allocationTimes []time.Time) []models.MonthlyReportItem {
	buckets := make(map[string]*models.MonthlyReportItem)
	bucket := func(t time.Time) *models.MonthlyReportItem {
		key := t.UTC().Format(monthKeyLayout)
		item, ok := buckets[key]
		if !ok {
			item = &models.MonthlyReportItem{Month: key}
			buckets[key] = item
		}
		return item
	}

	for _, t := range requestTimes {
		bucket(t).RequestCount++
	}
	for _, t := range allocationTimes {
		bucket(t).AllocationCount++
	}

	report := make([]models.MonthlyReportItem, 0, len(buckets))
	for _, item := range buckets {
		report = append(report, *item)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].Month < report[j].Month
	})
	return report
}

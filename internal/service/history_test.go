package service

import (
	"fmt"
	"testing"

	"datelabel/internal/domain"
	"datelabel/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestHistoryService_GetHistory(t *testing.T) {
	tests := []struct {
		name               string
		page               int
		expectedOffset     int
		lookups            []domain.Lookup
		totalCount         int
		expectedTexts      []string
		expectedTotalPages int
	}{
		{
			name:           "first page",
			page:           1,
			expectedOffset: 0,
			lookups: []domain.Lookup{
				testutil.NewTestLookup(3, 123, "2020-12-01"),
				testutil.NewTestLookup(2, 123, "2020-11-27"),
				testutil.NewTestLookup(1, 123, "2020-06-01"),
			},
			totalCount:         10,
			expectedTexts:      []string{"today", "4 days ago", "2020-06-01"},
			expectedTotalPages: 2,
		},
		{
			name:               "page below one is clamped",
			page:               0,
			expectedOffset:     0,
			lookups:            []domain.Lookup{},
			totalCount:         0,
			expectedTexts:      []string{},
			expectedTotalPages: 1,
		},
		{
			name:           "second page",
			page:           2,
			expectedOffset: 7,
			lookups: []domain.Lookup{
				testutil.NewTestLookup(1, 123, "2020-11-30"),
			},
			totalCount:         8,
			expectedTexts:      []string{"yesterday"},
			expectedTotalPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			lookupRepo := new(testutil.MockLookupRepository)

			lookupRepo.On("GetRecentLookups", int64(123), 7, tt.expectedOffset).Return(tt.lookups, nil)
			lookupRepo.On("GetTotalLookupsCount", int64(123)).Return(tt.totalCount, nil)
			userRepo.On("GetLocale", int64(123)).Return("en", nil)

			service := NewHistoryService(lookupRepo, newTestLabelService(userRepo, lookupRepo), 7)

			labels, totalPages, err := service.GetHistory(123, tt.page)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotalPages, totalPages)

			texts := make([]string, 0, len(labels))
			for _, l := range labels {
				texts = append(texts, l.Text)
			}
			assert.Equal(t, tt.expectedTexts, texts)

			lookupRepo.AssertExpectations(t)
		})
	}
}

func TestHistoryService_GetHistory_Errors(t *testing.T) {
	t.Run("lookup error", func(t *testing.T) {
		lookupRepo := new(testutil.MockLookupRepository)
		lookupRepo.On("GetRecentLookups", int64(123), 7, 0).Return(nil, fmt.Errorf("db error"))

		service := NewHistoryService(lookupRepo, newTestLabelService(new(testutil.MockUserRepository), lookupRepo), 7)

		labels, totalPages, err := service.GetHistory(123, 1)

		assert.Error(t, err)
		assert.Nil(t, labels)
		assert.Equal(t, 0, totalPages)
	})

	t.Run("count error", func(t *testing.T) {
		lookupRepo := new(testutil.MockLookupRepository)
		lookupRepo.On("GetRecentLookups", int64(123), 7, 0).Return([]domain.Lookup{}, nil)
		lookupRepo.On("GetTotalLookupsCount", int64(123)).Return(0, fmt.Errorf("db error"))

		service := NewHistoryService(lookupRepo, newTestLabelService(new(testutil.MockUserRepository), lookupRepo), 7)

		_, _, err := service.GetHistory(123, 1)

		assert.Error(t, err)
	})
}

func TestNewHistoryService_DefaultPageSize(t *testing.T) {
	service := NewHistoryService(new(testutil.MockLookupRepository), nil, 0)
	assert.Equal(t, 7, service.pageSize)
}

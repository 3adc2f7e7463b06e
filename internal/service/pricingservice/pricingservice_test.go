package pricingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/panelmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestResolve(t *testing.T) {
	service, repo := NewMock(t)

	panelCfg := &domain.PricingConfig{ID: 10, ResellerID: 1, PricePerGB: decPtr("0.50"), PanelID: intPtr(2)}
	genericCfg := &domain.PricingConfig{ID: 11, ResellerID: 1, PricePerGB: decPtr("0.70")}
	planCfg := &domain.PricingConfig{ID: 12, ResellerID: 1, PlanID: intPtr(5)}
	plan := &domain.PricingPlan{ID: 5, Name: "30d-100GB", DurationDays: 30, Price: decimal.RequireFromString("10.00")}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCfgID int
		expectedPlan  *domain.PricingPlan
		expectedError error
	}{
		{
			name: "Panel specific config wins",
			prepareMock: func() {
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, intPtr(2)).Return(panelCfg, nil)
			},
			expectedCfgID: 10,
		},
		{
			name: "Falls back to generic config",
			prepareMock: func() {
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, intPtr(2)).Return(nil, nil)
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, nil).Return(genericCfg, nil)
			},
			expectedCfgID: 11,
		},
		{
			name: "Plan config loads the plan",
			prepareMock: func() {
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, intPtr(2)).Return(planCfg, nil)
				repo.EXPECT().GetPlan(gomock.Any(), 5).Return(plan, nil)
			},
			expectedCfgID: 12,
			expectedPlan:  plan,
		},
		{
			name: "No config at all",
			prepareMock: func() {
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, intPtr(2)).Return(nil, nil)
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, nil).Return(nil, nil)
			},
			expectedError: ErrNoPricingConfigured,
		},
		{
			name: "Config references missing plan",
			prepareMock: func() {
				repo.EXPECT().FindByResellerAndPanel(gomock.Any(), 1, intPtr(2)).Return(planCfg, nil)
				repo.EXPECT().GetPlan(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrInvalidPricingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			cfg, err := service.Resolve(context.Background(), 1, 2)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCfgID, cfg.ID)
			if tt.expectedPlan != nil {
				assert.Equal(t, tt.expectedPlan, cfg.Plan)
			}
		})
	}
}

func TestCostForCreate(t *testing.T) {
	service, _ := NewMock(t)

	plan := &domain.PricingPlan{ID: 5, DurationDays: 30, Price: decimal.RequireFromString("10.00")}
	unitCfg := &domain.PricingConfig{ID: 1, PricePerGB: decPtr("0.50")}
	planCfg := &domain.PricingConfig{ID: 2, PlanID: intPtr(5), Plan: plan}

	tests := []struct {
		name           string
		cfg            *domain.PricingConfig
		dataLimitGB    *float64
		expireDays     *int
		expectedCost   string
		expectedPlanID *int
		expectedError  error
	}{
		{
			name:         "Unit rate times whole gigabytes",
			cfg:          unitCfg,
			dataLimitGB:  floatPtr(3),
			expectedCost: "1.50",
		},
		{
			name:         "Fractional gigabytes round half up",
			cfg:          unitCfg,
			dataLimitGB:  floatPtr(2.333),
			expectedCost: "1.17",
		},
		{
			name:          "Unit rate requires a data limit",
			cfg:           unitCfg,
			expectedError: ErrDataLimitRequired,
		},
		{
			name:          "Unit rate rejects non-positive data limit",
			cfg:           unitCfg,
			dataLimitGB:   floatPtr(0),
			expectedError: ErrDataLimitRequired,
		},
		{
			name:           "Plan price when duration is omitted",
			cfg:            planCfg,
			expectedCost:   "10.00",
			expectedPlanID: intPtr(5),
		},
		{
			name:           "Plan price when duration matches",
			cfg:            planCfg,
			expireDays:     intPtr(30),
			expectedCost:   "10.00",
			expectedPlanID: intPtr(5),
		},
		{
			name:          "Config with neither mode",
			cfg:           &domain.PricingConfig{ID: 3},
			dataLimitGB:   floatPtr(1),
			expectedError: ErrInvalidPricingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, planID, err := service.CostForCreate(tt.cfg, tt.dataLimitGB, tt.expireDays)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCost, cost.StringFixed(2))
			assert.Equal(t, tt.expectedPlanID, planID)
		})
	}
}

func TestCostForCreateDurationMismatch(t *testing.T) {
	service, _ := NewMock(t)

	plan := &domain.PricingPlan{ID: 5, DurationDays: 30, Price: decimal.RequireFromString("10.00")}
	cfg := &domain.PricingConfig{ID: 2, PlanID: intPtr(5), Plan: plan}

	_, _, err := service.CostForCreate(cfg, nil, intPtr(45))

	var mismatch *DurationMismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 30, mismatch.ExpectedDays)
	assert.Equal(t, 45, mismatch.RequestedDays)
}

func TestCostForDataLimit(t *testing.T) {
	service, _ := NewMock(t)

	unitCfg := &domain.PricingConfig{ID: 1, PricePerGB: decPtr("0.50")}
	planCfg := &domain.PricingConfig{ID: 2, PlanID: intPtr(5), Plan: &domain.PricingPlan{ID: 5}}

	cost, err := service.CostForDataLimit(unitCfg, 100)
	assert.NoError(t, err)
	assert.Equal(t, "50.00", cost.StringFixed(2))

	_, err = service.CostForDataLimit(planCfg, 100)
	assert.ErrorIs(t, err, ErrNoUnitPricing)

	_, err = service.CostForDataLimit(unitCfg, -1)
	assert.ErrorIs(t, err, ErrDataLimitRequired)
}

func TestCostForRenewal(t *testing.T) {
	service, _ := NewMock(t)

	plan := &domain.PricingPlan{ID: 5, DurationDays: 30, Price: decimal.RequireFromString("12.50")}
	planCfg := &domain.PricingConfig{ID: 2, PlanID: intPtr(5), Plan: plan}
	unitCfg := &domain.PricingConfig{ID: 1, PricePerGB: decPtr("0.50")}

	cost, planID, err := service.CostForRenewal(planCfg, 30)
	assert.NoError(t, err)
	assert.Equal(t, "12.50", cost.StringFixed(2))
	assert.Equal(t, intPtr(5), planID)

	_, _, err = service.CostForRenewal(unitCfg, 30)
	assert.ErrorIs(t, err, ErrNoPlanPricing)

	_, _, err = service.CostForRenewal(planCfg, 60)
	var mismatch *DurationMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

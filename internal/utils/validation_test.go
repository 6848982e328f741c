package utils

import (
	"testing"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func TestValidateZoneCapacity(t *testing.T) {
	zone := &domain.Zone{Width: 2, Length: 3} // 6 平方米

	tests := []struct {
		name         string
		usedAreas    []float64
		requiredArea float64
		wantErr      bool
	}{
		{"空区域放得下", nil, 5, false},
		{"刚好占满", []float64{2, 2}, 2, false},
		{"超出剩余面积", []float64{3, 2}, 1.5, true},
		{"已经占满", []float64{6}, 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plants := make([]*domain.Plant, len(tt.usedAreas))
			for i, area := range tt.usedAreas {
				plants[i] = &domain.Plant{RequiredArea: area}
			}

			err := ValidateZoneCapacity(zone, plants, tt.requiredArea)
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

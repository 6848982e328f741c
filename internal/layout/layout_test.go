package layout

import (
	"testing"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func TestPlanPlacement(t *testing.T) {
	zone := &domain.Zone{ID: 1, Width: 2, Length: 5} // 10 平方米

	plants := []*domain.Plant{
		{ID: 1, Name: "番茄", RequiredArea: 4},
		{ID: 2, Name: "南瓜", RequiredArea: 8}, // 放不下
		{ID: 3, Name: "罗勒", RequiredArea: 3},
	}

	plan := PlanPlacement(zone, plants)

	if plan.ZoneArea != 10 {
		t.Errorf("ZoneArea = %v, want 10", plan.ZoneArea)
	}
	if plan.UsedArea != 7 {
		t.Errorf("UsedArea = %v, want 7", plan.UsedArea)
	}
	if plan.Utilization != 0.7 {
		t.Errorf("Utilization = %v, want 0.7", plan.Utilization)
	}

	wantFits := []bool{true, false, true}
	for i, placement := range plan.Placements {
		if placement.Fits != wantFits[i] {
			t.Errorf("Placements[%d].Fits = %v, want %v", i, placement.Fits, wantFits[i])
		}
	}
}

func TestPlanPlacement_EmptyZone(t *testing.T) {
	zone := &domain.Zone{ID: 1, Width: 0, Length: 0}

	plan := PlanPlacement(zone, []*domain.Plant{{ID: 1, RequiredArea: 1}})

	// 面积为 0 的区域什么都放不下，利用率保持为 0 而不是除零
	if plan.Utilization != 0 {
		t.Errorf("Utilization = %v, want 0", plan.Utilization)
	}
	if plan.Placements[0].Fits {
		t.Error("面积为 0 的区域不应该放得下任何植物")
	}
}

package layout

import (
	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

type Placement struct {
	PlantID int64   `json:"plantID"`
	Name    string  `json:"name"`
	Area    float64 `json:"area"`
	Fits    bool    `json:"fits"`
}

type PlacementPlan struct {
	ZoneID      int64       `json:"zoneID"`
	ZoneArea    float64     `json:"zoneArea"`
	UsedArea    float64     `json:"usedArea"`
	Utilization float64     `json:"utilization"` // 取值范围 [0,1]
	Placements  []Placement `json:"placements"`
}

// 计算一批植物能否放进指定区域。
// 这里只做简单的面积核算：按传入顺序累加植物的占地面积，
// 放得下的标记 fits，放不下的跳过但不会中断后续植物的判断
func PlanPlacement(zone *domain.Zone, plants []*domain.Plant) *PlacementPlan {
	plan := &PlacementPlan{
		ZoneID:     zone.ID,
		ZoneArea:   zone.Area(),
		Placements: make([]Placement, 0, len(plants)),
	}

	for _, plant := range plants {
		fits := plan.UsedArea+plant.RequiredArea <= plan.ZoneArea
		if fits {
			plan.UsedArea += plant.RequiredArea
		}

		plan.Placements = append(plan.Placements, Placement{
			PlantID: plant.ID,
			Name:    plant.Name,
			Area:    plant.RequiredArea,
			Fits:    fits,
		})
	}

	if plan.ZoneArea > 0 {
		plan.Utilization = plan.UsedArea / plan.ZoneArea
	}

	return plan
}

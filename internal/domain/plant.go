package domain

import "time"

type GrowthStage string

const (
	StageSeedling   GrowthStage = "seedling"
	StageVegetative GrowthStage = "vegetative"
	StageFlowering  GrowthStage = "flowering"
	StageMature     GrowthStage = "mature"
)

type SoilCondition string

const (
	SoilSandy SoilCondition = "sandy"
	SoilLoamy SoilCondition = "loamy"
	SoilClay  SoilCondition = "clay"
)

type Plant struct {
	ID            int64         `json:"id"`
	ZoneID        int64         `json:"zoneID"`
	Name          string        `json:"name"`
	Species       string        `json:"species"`
	GrowthStage   GrowthStage   `json:"growthStage"`
	SoilCondition SoilCondition `json:"soilCondition"`
	PlantedAt     time.Time     `json:"plantedAt"`
	RequiredArea  float64       `json:"requiredArea"` // 单位：平方米
	// 各个养护任务是否适用于这株植物
	NeedsWatering    bool      `json:"needsWatering"`
	NeedsFertilizing bool      `json:"needsFertilizing"`
	NeedsPruning     bool      `json:"needsPruning"`
	NeedsHarvesting  bool      `json:"needsHarvesting"`
	NeedsWeeding     bool      `json:"needsWeeding"`
	CreatedAt        time.Time `json:"createdAt"`
	Version          int32     `json:"-"`
}

// 返回这株植物需要的养护任务类型
func (p *Plant) EligibleTaskTypes() []TaskType {
	types := make([]TaskType, 0, len(AllTaskTypes))
	if p.NeedsWatering {
		types = append(types, TaskWatering)
	}
	if p.NeedsFertilizing {
		types = append(types, TaskFertilizing)
	}
	if p.NeedsPruning {
		types = append(types, TaskPruning)
	}
	if p.NeedsHarvesting {
		types = append(types, TaskHarvesting)
	}
	if p.NeedsWeeding {
		types = append(types, TaskWeeding)
	}
	return types
}

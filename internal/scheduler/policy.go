package scheduler

import (
	"fmt"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

// 每种任务类型的基础执行间隔
var baseIntervals = map[domain.TaskType]time.Duration{
	domain.TaskWatering:    72 * time.Hour,
	domain.TaskFertilizing: 336 * time.Hour,
	domain.TaskPruning:     720 * time.Hour,
	domain.TaskHarvesting:  168 * time.Hour,
	domain.TaskWeeding:     240 * time.Hour,
}

// 每种任务类型的基础优先级权重。
// 浇水的权重是 0，因为它的优先级几乎完全由环境条件决定（高温、干旱、临近到期），
// 最终得分会被钳制到 [1,3]，所以权重为 0 不会产生非法的优先级
var basePriorityWeights = map[domain.TaskType]int32{
	domain.TaskWatering:    0,
	domain.TaskFertilizing: 1,
	domain.TaskPruning:     1,
	domain.TaskHarvesting:  2,
	domain.TaskWeeding:     1,
}

const (
	minWateringInterval    = 24 * time.Hour
	minFertilizingInterval = 168 * time.Hour
)

type IntervalPolicy struct {
	intervals map[domain.TaskType]time.Duration
	weights   map[domain.TaskType]int32
}

// 构造时校验每种任务类型都有完整的配置。
// 配置缺失属于编程错误，应该让服务在启动时就失败，而不是等到处理请求时才暴露
func NewIntervalPolicy() (*IntervalPolicy, error) {
	p := &IntervalPolicy{
		intervals: baseIntervals,
		weights:   basePriorityWeights,
	}

	for _, t := range domain.AllTaskTypes {
		if _, exists := p.intervals[t]; !exists {
			return nil, fmt.Errorf("任务类型 %s 缺少基础间隔配置", t)
		}
		if _, exists := p.weights[t]; !exists {
			return nil, fmt.Errorf("任务类型 %s 缺少优先级权重配置", t)
		}
	}

	return p, nil
}

func (p *IntervalPolicy) BaseInterval(t domain.TaskType) time.Duration {
	return p.intervals[t]
}

func (p *IntervalPolicy) BasePriorityWeight(t domain.TaskType) int32 {
	return p.weights[t]
}

// 计算某株植物执行某种任务的实际间隔。
// 浇水间隔和土壤、气温相关，施肥间隔和土壤、生长阶段相关，其余任务直接使用基础间隔
func (p *IntervalPolicy) IntervalFor(plant *domain.Plant, t domain.TaskType, snapshot domain.EnvironmentalSnapshot) time.Duration {
	interval := p.intervals[t]

	switch t {
	case domain.TaskWatering:
		switch plant.SoilCondition {
		case domain.SoilSandy:
			// 沙质土保水性差，需要更频繁地浇水
			interval -= 24 * time.Hour
		case domain.SoilClay:
			interval += 24 * time.Hour
		}
		if snapshot.Temperature > 30 {
			interval -= 12 * time.Hour
		}
		if interval < minWateringInterval {
			interval = minWateringInterval
		}
	case domain.TaskFertilizing:
		switch plant.GrowthStage {
		case domain.StageSeedling:
			// 幼苗期施肥过多容易烧苗
			interval += 168 * time.Hour
		case domain.StageFlowering:
			interval -= 168 * time.Hour
		}
		if plant.SoilCondition == domain.SoilSandy {
			interval -= 48 * time.Hour
		}
		if interval < minFertilizingInterval {
			interval = minFertilizingInterval
		}
	}

	return interval
}

package scheduler

import (
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

const (
	MinPriority int32 = 1
	MaxPriority int32 = 3
)

const (
	heatThreshold    = 30.0 // 单位：°C
	droughtThreshold = 5.0  // 单位：mm
	urgencyWindow    = 24 * time.Hour
)

// 计算任务的优先级，结果保证落在 [MinPriority, MaxPriority] 之间。
// 这是一个纯函数，"当前时间"由调用方显式传入，方便测试注入固定时钟
func ScorePriority(policy *IntervalPolicy, t domain.TaskType, due time.Time, snapshot domain.EnvironmentalSnapshot, now time.Time) int32 {
	score := policy.BasePriorityWeight(t)

	// 高温和干旱都会提升浇水的优先级
	if t == domain.TaskWatering {
		if snapshot.Temperature > heatThreshold {
			score++
		}
		if snapshot.Rainfall < droughtThreshold {
			score++
		}
	}

	// 一天内到期的任务更紧急
	if due.Sub(now) <= urgencyWindow {
		score++
	}

	if score < MinPriority {
		score = MinPriority
	}
	if score > MaxPriority {
		score = MaxPriority
	}

	return score
}

package domain

import (
	"strconv"
	"strings"
	"time"
)

type TaskType string

const (
	TaskWatering    TaskType = "WATERING"
	TaskFertilizing TaskType = "FERTILIZING"
	TaskPruning     TaskType = "PRUNING"
	TaskHarvesting  TaskType = "HARVESTING"
	TaskWeeding     TaskType = "WEEDING"
)

var AllTaskTypes = []TaskType{
	TaskWatering,
	TaskFertilizing,
	TaskPruning,
	TaskHarvesting,
	TaskWeeding,
}

// 浇水、施肥和修剪会受天气影响，恶劣天气下需要推迟
func (t TaskType) WeatherDependent() bool {
	switch t {
	case TaskWatering, TaskFertilizing, TaskPruning:
		return true
	default:
		return false
	}
}

// 某一时刻的环境数据快照，只用于参与排程计算，本身不会被持久化
type EnvironmentalSnapshot struct {
	Temperature float64 `json:"temperature"` // 单位：°C
	Humidity    float64 `json:"humidity"`    // 单位：%
	Rainfall    float64 `json:"rainfall"`    // 单位：mm（近期累计）
	WindSpeed   float64 `json:"windSpeed"`   // 单位：km/h
}

// 生成快照的指纹，作为排程缓存 key 的一部分。
// 这里用 strconv.FormatFloat 而不是 fmt.Sprintf，
// 避免格式化精度问题导致相同的快照产生不同的指纹
func (s EnvironmentalSnapshot) Fingerprint() string {
	fields := []float64{s.Temperature, s.Humidity, s.Rainfall, s.WindSpeed}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Join(parts, "_")
}

type ScheduleEntry struct {
	ID               string                `json:"id"`
	PlantID          int64                 `json:"plantID"`
	TaskType         TaskType              `json:"taskType"`
	DueDate          time.Time             `json:"dueDate"`
	Priority         int32                 `json:"priority"` // 取值范围 [1,3]
	Completed        bool                  `json:"completed"`
	CompletionDate   *time.Time            `json:"completionDate"`
	WeatherDependent bool                  `json:"weatherDependent"`
	Snapshot         EnvironmentalSnapshot `json:"snapshot"`
}

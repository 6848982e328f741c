package scheduler

import (
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

const (
	windSpeedThreshold = 20.0 // 单位：km/h
	rainfallThreshold  = 10.0 // 单位：mm
	weatherDelay       = 24 * time.Hour
)

// 恶劣天气（大风或降雨）下推迟受天气影响的任务。
// 这里只会推迟，不会因为天气原因把任务提前；
// 不受天气影响的任务类型在任何天气下都原样返回
func AdjustForWeather(due time.Time, t domain.TaskType, snapshot domain.EnvironmentalSnapshot) time.Time {
	if !t.WeatherDependent() {
		return due
	}

	if snapshot.WindSpeed > windSpeedThreshold || snapshot.Rainfall > rainfallThreshold {
		return due.Add(weatherDelay)
	}

	return due
}

package scheduler

import (
	"testing"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func TestAdjustForWeather_NonWeatherTasksUnchanged(t *testing.T) {
	due := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

	// 即使在极端天气下，不受天气影响的任务也原样返回
	snapshot := domain.EnvironmentalSnapshot{Temperature: 42, Humidity: 95, Rainfall: 80, WindSpeed: 90}

	for _, taskType := range []domain.TaskType{domain.TaskHarvesting, domain.TaskWeeding} {
		if got := AdjustForWeather(due, taskType, snapshot); !got.Equal(due) {
			t.Errorf("AdjustForWeather(%s) = %v, want %v", taskType, got, due)
		}
	}
}

func TestAdjustForWeather_DelayTrigger(t *testing.T) {
	due := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 15, WindSpeed: 25}
	want := due.Add(24 * time.Hour)

	for _, taskType := range []domain.TaskType{domain.TaskWatering, domain.TaskFertilizing, domain.TaskPruning} {
		if got := AdjustForWeather(due, taskType, snapshot); !got.Equal(want) {
			t.Errorf("AdjustForWeather(%s) = %v, want %v", taskType, got, want)
		}
	}
}

func TestAdjustForWeather_Thresholds(t *testing.T) {
	due := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rainfall float64
		wind     float64
		delayed  bool
	}{
		{"无风无雨", 0, 0, false},
		// 阈值本身不触发推迟，必须严格大于
		{"风速恰好在阈值上", 0, 20, false},
		{"降雨恰好在阈值上", 10, 0, false},
		{"风速超过阈值", 0, 20.5, true},
		{"降雨超过阈值", 10.5, 0, true},
		{"风雨都超过阈值", 30, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: tt.rainfall, WindSpeed: tt.wind}

			got := AdjustForWeather(due, domain.TaskWatering, snapshot)
			want := due
			if tt.delayed {
				want = due.Add(24 * time.Hour)
			}

			if !got.Equal(want) {
				t.Errorf("AdjustForWeather() = %v, want %v", got, want)
			}
		})
	}
}

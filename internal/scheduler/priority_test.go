package scheduler

import (
	"testing"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func TestScorePriority_Bounds(t *testing.T) {
	p, err := NewIntervalPolicy()
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

	snapshots := []domain.EnvironmentalSnapshot{
		{Temperature: -10, Humidity: 0, Rainfall: 0, WindSpeed: 0},
		{Temperature: 25, Humidity: 60, Rainfall: 5, WindSpeed: 10},
		{Temperature: 45, Humidity: 100, Rainfall: 100, WindSpeed: 100},
		{Temperature: 35, Humidity: 20, Rainfall: 0, WindSpeed: 5},
	}
	offsets := []time.Duration{
		-48 * time.Hour,
		time.Hour,
		23 * time.Hour,
		25 * time.Hour,
		30 * 24 * time.Hour,
	}

	// 无论输入如何组合，得分都必须落在 [1,3] 之间
	for _, taskType := range domain.AllTaskTypes {
		for _, snapshot := range snapshots {
			for _, offset := range offsets {
				got := ScorePriority(p, taskType, now.Add(offset), snapshot, now)
				if got < MinPriority || got > MaxPriority {
					t.Errorf("ScorePriority(%s, offset=%v, %+v) = %d，超出 [%d,%d]",
						taskType, offset, snapshot, got, MinPriority, MaxPriority)
				}
			}
		}
	}
}

func TestScorePriority_UrgencyMonotonic(t *testing.T) {
	p, err := NewIntervalPolicy()
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 8, WindSpeed: 5}

	// 固定任务类型和快照时，一天内到期的得分不低于五天后到期的得分
	for _, taskType := range domain.AllTaskTypes {
		urgent := ScorePriority(p, taskType, now.Add(12*time.Hour), snapshot, now)
		distant := ScorePriority(p, taskType, now.Add(5*24*time.Hour), snapshot, now)

		if urgent < distant {
			t.Errorf("ScorePriority(%s): 紧急任务得分 %d 低于五天后的任务得分 %d", taskType, urgent, distant)
		}
	}
}

func TestScorePriority_HotDryRaisesWateringScore(t *testing.T) {
	p, err := NewIntervalPolicy()
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	cool := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}
	hot := domain.EnvironmentalSnapshot{Temperature: 35, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	tests := []struct {
		name string
		due  time.Time
	}{
		{"一天内到期", now.Add(12 * time.Hour)},
		{"三天后到期", now.Add(3 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coolScore := ScorePriority(p, domain.TaskWatering, tt.due, cool, now)
			hotScore := ScorePriority(p, domain.TaskWatering, tt.due, hot, now)

			if hotScore <= coolScore {
				t.Errorf("高温干旱下的浇水得分 %d 应该严格大于凉爽天气下的 %d", hotScore, coolScore)
			}
		})
	}
}

func TestScorePriority_NonWateringIgnoresHeatAndDrought(t *testing.T) {
	p, err := NewIntervalPolicy()
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	due := now.Add(3 * 24 * time.Hour)
	cool := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 20, WindSpeed: 5}
	hot := domain.EnvironmentalSnapshot{Temperature: 35, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	for _, taskType := range []domain.TaskType{domain.TaskFertilizing, domain.TaskPruning, domain.TaskHarvesting, domain.TaskWeeding} {
		coolScore := ScorePriority(p, taskType, due, cool, now)
		hotScore := ScorePriority(p, taskType, due, hot, now)

		if coolScore != hotScore {
			t.Errorf("ScorePriority(%s) 不应该受高温干旱影响：%d != %d", taskType, coolScore, hotScore)
		}
	}
}

package scheduler

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

type fakePlantStore struct {
	plants map[int64]*domain.Plant
	calls  int
}

func (f *fakePlantStore) GetPlantByID(ctx context.Context, id int64) (*domain.Plant, error) {
	f.calls++

	plant, exists := f.plants[id]
	if !exists {
		return nil, sql.ErrNoRows
	}
	return plant, nil
}

var testNow = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, plants ...*domain.Plant) (*Scheduler, *fakePlantStore) {
	t.Helper()

	policy, err := NewIntervalPolicy()
	if err != nil {
		t.Fatal(err)
	}

	store := &fakePlantStore{plants: make(map[int64]*domain.Plant)}
	for _, plant := range plants {
		store.plants[plant.ID] = plant
	}

	now := func() time.Time { return testNow }
	return New(policy, NewCache(time.Hour, now), store, 365, now), store
}

func wateringOnlyPlant() *domain.Plant {
	return &domain.Plant{
		ID:            1,
		ZoneID:        1,
		Name:          "番茄",
		GrowthStage:   domain.StageMature,
		SoilCondition: domain.SoilLoamy,
		NeedsWatering: true,
	}
}

func TestGenerateSchedule_WateringScenario(t *testing.T) {
	s, _ := newTestScheduler(t, wateringOnlyPlant())

	// 壤土常温下浇水间隔是 3 天，7 天的范围内应该生成第 3 天和第 6 天两条任务
	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	entries, err := s.GenerateSchedule(context.Background(), 1, 7, snapshot)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	wantDues := []time.Time{testNow.Add(72 * time.Hour), testNow.Add(144 * time.Hour)}
	for i, entry := range entries {
		if entry.TaskType != domain.TaskWatering {
			t.Errorf("entries[%d].TaskType = %s, want WATERING", i, entry.TaskType)
		}
		if !entry.DueDate.Equal(wantDues[i]) {
			t.Errorf("entries[%d].DueDate = %v, want %v", i, entry.DueDate, wantDues[i])
		}
		if !entry.WeatherDependent {
			t.Errorf("entries[%d].WeatherDependent = false，浇水任务应该受天气影响", i)
		}
		if entry.Priority < MinPriority || entry.Priority > MaxPriority {
			t.Errorf("entries[%d].Priority = %d，超出 [1,3]", i, entry.Priority)
		}
		if entry.DueDate.Before(testNow) {
			t.Errorf("entries[%d].DueDate = %v，早于当前时间", i, entry.DueDate)
		}
		if entry.Completed {
			t.Errorf("entries[%d] 刚生成就被标记为已完成", i)
		}
	}
}

func TestGenerateSchedule_HotSnapshotRaisesPriority(t *testing.T) {
	cool := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}
	hot := domain.EnvironmentalSnapshot{Temperature: 35, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	s1, _ := newTestScheduler(t, wateringOnlyPlant())
	coolEntries, err := s1.GenerateSchedule(context.Background(), 1, 7, cool)
	if err != nil {
		t.Fatal(err)
	}

	s2, _ := newTestScheduler(t, wateringOnlyPlant())
	hotEntries, err := s2.GenerateSchedule(context.Background(), 1, 7, hot)
	if err != nil {
		t.Fatal(err)
	}

	if len(coolEntries) == 0 || len(hotEntries) == 0 {
		t.Fatal("两种天气下都应该有浇水任务")
	}

	// 高温干旱下的浇水任务优先级应该严格高于凉爽天气
	if hotEntries[0].Priority <= coolEntries[0].Priority {
		t.Errorf("高温下首条任务的优先级 %d 应该严格大于凉爽天气下的 %d",
			hotEntries[0].Priority, coolEntries[0].Priority)
	}
}

func TestGenerateSchedule_HorizonClamp(t *testing.T) {
	plant := wateringOnlyPlant()
	plant.NeedsPruning = true
	s, _ := newTestScheduler(t, plant)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	// 请求 1000 天会被静默截断到 365 天
	entries, err := s.GenerateSchedule(context.Background(), 1, 1000, snapshot)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	if len(entries) == 0 {
		t.Fatal("截断后的范围内应该仍然有任务")
	}

	horizonEnd := testNow.Add(365 * 24 * time.Hour)
	for _, entry := range entries {
		if entry.DueDate.After(horizonEnd) {
			t.Errorf("entry.DueDate = %v，超出 365 天的上限", entry.DueDate)
		}
	}
}

func TestGenerateSchedule_SortOrder(t *testing.T) {
	plant := wateringOnlyPlant()
	plant.NeedsFertilizing = true
	plant.NeedsPruning = true
	plant.NeedsHarvesting = true
	plant.NeedsWeeding = true
	s, _ := newTestScheduler(t, plant)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	entries, err := s.GenerateSchedule(context.Background(), 1, 60, snapshot)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	for i := 1; i < len(entries); i++ {
		prev, curr := entries[i-1], entries[i]

		if curr.DueDate.Before(prev.DueDate) {
			t.Errorf("entries[%d].DueDate = %v，早于前一条的 %v", i, curr.DueDate, prev.DueDate)
		}
		if curr.DueDate.Equal(prev.DueDate) && curr.Priority > prev.Priority {
			t.Errorf("entries[%d] 和前一条到期时间相同，但优先级 %d > %d，应该按优先级降序",
				i, curr.Priority, prev.Priority)
		}
	}
}

func TestGenerateSchedule_PlantNotFound(t *testing.T) {
	s, _ := newTestScheduler(t)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	entries, err := s.GenerateSchedule(context.Background(), 42, 7, snapshot)
	if err != ErrPlantNotFound {
		t.Errorf("GenerateSchedule() error = %v, want ErrPlantNotFound", err)
	}
	if entries != nil {
		t.Errorf("植物不存在时不应该返回部分结果，got %v", entries)
	}
}

func TestGenerateSchedule_IneligibleTasksContributeNothing(t *testing.T) {
	plant := &domain.Plant{
		ID:              1,
		Name:            "薰衣草",
		GrowthStage:     domain.StageMature,
		SoilCondition:   domain.SoilLoamy,
		NeedsHarvesting: true,
	}
	s, _ := newTestScheduler(t, plant)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	entries, err := s.GenerateSchedule(context.Background(), 1, 30, snapshot)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	for _, entry := range entries {
		if entry.TaskType != domain.TaskHarvesting {
			t.Errorf("不需要 %s 的植物生成了该类型的任务", entry.TaskType)
		}
	}
}

func TestGenerateSchedule_WeatherDelayShiftsRecurrence(t *testing.T) {
	s, _ := newTestScheduler(t, wateringOnlyPlant())

	// 大风天气下第一次浇水被推迟到 96 小时，下一次从推迟后的时间继续推算，
	// 所以 7 天的范围内只剩一条任务
	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 25}

	entries, err := s.GenerateSchedule(context.Background(), 1, 7, snapshot)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	want := testNow.Add(96 * time.Hour)
	if !entries[0].DueDate.Equal(want) {
		t.Errorf("entries[0].DueDate = %v, want %v", entries[0].DueDate, want)
	}
}

func TestGenerateSchedule_DeterministicIDs(t *testing.T) {
	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	// 两个独立的实例（缓存互不相通）生成的任务 ID 应该完全一致
	s1, _ := newTestScheduler(t, wateringOnlyPlant())
	s2, _ := newTestScheduler(t, wateringOnlyPlant())

	first, err := s1.GenerateSchedule(context.Background(), 1, 7, snapshot)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s2.GenerateSchedule(context.Background(), 1, 7, snapshot)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("两次生成的任务数量不同：%d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("entries[%d].ID 不一致：%s != %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestScoreTaskPriority_Standalone(t *testing.T) {
	s, _ := newTestScheduler(t)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 35, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	got := s.ScoreTaskPriority(domain.TaskWatering, testNow.Add(12*time.Hour), snapshot)
	if got != MaxPriority {
		t.Errorf("ScoreTaskPriority() = %d, want %d", got, MaxPriority)
	}
}

package scheduler

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestCache_HitSkipsPlantLookup(t *testing.T) {
	s, store := newTestScheduler(t, wateringOnlyPlant())

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	first, err := s.GenerateSchedule(context.Background(), 1, 7, snapshot)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.GenerateSchedule(context.Background(), 1, 7, snapshot)
	if err != nil {
		t.Fatal(err)
	}

	// 缓存命中时不应该再访问植物存储
	if store.calls != 1 {
		t.Errorf("store.calls = %d, want 1", store.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("缓存命中返回的结果和第一次计算的结果不一致")
	}
}

func TestCache_MissOnSnapshotChange(t *testing.T) {
	s, store := newTestScheduler(t, wateringOnlyPlant())

	base := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	if _, err := s.GenerateSchedule(context.Background(), 1, 7, base); err != nil {
		t.Fatal(err)
	}

	// 快照中任何一个字段变化都应该导致缓存未命中
	changed := []domain.EnvironmentalSnapshot{
		{Temperature: 26, Humidity: 60, Rainfall: 0, WindSpeed: 5},
		{Temperature: 25, Humidity: 61, Rainfall: 0, WindSpeed: 5},
		{Temperature: 25, Humidity: 60, Rainfall: 1, WindSpeed: 5},
		{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 6},
	}

	for i, snapshot := range changed {
		if _, err := s.GenerateSchedule(context.Background(), 1, 7, snapshot); err != nil {
			t.Fatal(err)
		}
		if store.calls != i+2 {
			t.Errorf("第 %d 个变化后 store.calls = %d, want %d", i+1, store.calls, i+2)
		}
	}
}

func TestCache_MissOnHorizonChange(t *testing.T) {
	s, store := newTestScheduler(t, wateringOnlyPlant())

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}

	if _, err := s.GenerateSchedule(context.Background(), 1, 7, snapshot); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GenerateSchedule(context.Background(), 1, 14, snapshot); err != nil {
		t.Fatal(err)
	}

	if store.calls != 2 {
		t.Errorf("store.calls = %d, want 2", store.calls)
	}
}

func TestCache_Expiry(t *testing.T) {
	clock := &fakeClock{now: testNow}
	cache := NewCache(time.Hour, clock.Now)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}
	entries := []*domain.ScheduleEntry{{ID: "abc", PlantID: 1, TaskType: domain.TaskWatering}}

	cache.Set(1, 7, snapshot, entries)

	if _, exists := cache.Get(1, 7, snapshot); !exists {
		t.Fatal("刚写入的条目应该能命中")
	}

	// 超过有效期后应该未命中
	clock.now = clock.now.Add(2 * time.Hour)
	if _, exists := cache.Get(1, 7, snapshot); exists {
		t.Error("过期的条目不应该命中")
	}
}

func TestCache_SweepRemovesExpired(t *testing.T) {
	clock := &fakeClock{now: testNow}
	cache := NewCache(time.Hour, clock.Now)

	fresh := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}
	stale := domain.EnvironmentalSnapshot{Temperature: 30, Humidity: 50, Rainfall: 2, WindSpeed: 8}

	cache.Set(1, 7, stale, nil)
	clock.now = clock.now.Add(2 * time.Hour)
	cache.Set(1, 7, fresh, nil)

	cache.sweep()

	// 清扫只删除过期的条目
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, want 1", cache.Len())
	}
	if _, exists := cache.Get(1, 7, fresh); !exists {
		t.Error("未过期的条目不应该被清扫")
	}
}

func TestCache_StartStop(t *testing.T) {
	cache := NewCache(10*time.Millisecond, nil)

	snapshot := domain.EnvironmentalSnapshot{Temperature: 25, Humidity: 60, Rainfall: 0, WindSpeed: 5}
	cache.Set(1, 7, snapshot, nil)

	cache.Start()
	defer cache.Stop()

	// 后台清扫不依赖请求流量，过期条目会被定期删除
	deadline := time.Now().Add(time.Second)
	for cache.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("后台清扫没有在期限内删除过期条目")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

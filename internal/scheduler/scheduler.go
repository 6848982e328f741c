package scheduler

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

var ErrPlantNotFound = errors.New("植物不存在")

// 查询植物的接口，由调用方注入。
// 这是排程计算中唯一的异步操作，其余的计算都是同步的纯函数
type PlantStore interface {
	GetPlantByID(ctx context.Context, id int64) (*domain.Plant, error)
}

type Scheduler struct {
	policy         *IntervalPolicy
	cache          *Cache
	plants         PlantStore
	maxHorizonDays int32
	now            func() time.Time
}

func New(policy *IntervalPolicy, cache *Cache, plants PlantStore, maxHorizonDays int32, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}

	return &Scheduler{
		policy:         policy,
		cache:          cache,
		plants:         plants,
		maxHorizonDays: maxHorizonDays,
		now:            now,
	}
}

// 生成一株植物在指定范围内的所有养护任务。
// 先查缓存，命中时不会访问植物存储；未命中时查出植物、逐个任务类型推算到期时间，
// 结果写入缓存后返回。植物不存在时返回 ErrPlantNotFound，不会产生部分结果
func (s *Scheduler) GenerateSchedule(ctx context.Context, plantID int64, horizonDays int32, snapshot domain.EnvironmentalSnapshot) ([]*domain.ScheduleEntry, error) {
	// 超出上限的排程范围静默截断到上限，而不是拒绝请求
	if horizonDays > s.maxHorizonDays {
		horizonDays = s.maxHorizonDays
	}
	if horizonDays < 1 {
		horizonDays = 1
	}

	if entries, exists := s.cache.Get(plantID, horizonDays, snapshot); exists {
		return entries, nil
	}

	plant, err := s.plants.GetPlantByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlantNotFound
		}
		return nil, err
	}

	entries := s.calculate(plant, horizonDays, snapshot)
	s.cache.Set(plantID, horizonDays, snapshot, entries)

	return entries, nil
}

// 单独暴露的优先级计算，供调用方对手动改期后的任务重新打分
func (s *Scheduler) ScoreTaskPriority(t domain.TaskType, due time.Time, snapshot domain.EnvironmentalSnapshot) int32 {
	return ScorePriority(s.policy, t, due, snapshot, s.now())
}

func (s *Scheduler) calculate(plant *domain.Plant, horizonDays int32, snapshot domain.EnvironmentalSnapshot) []*domain.ScheduleEntry {
	now := s.now()
	horizonEnd := now.Add(time.Duration(horizonDays) * 24 * time.Hour)

	entries := make([]*domain.ScheduleEntry, 0)

	for _, taskType := range plant.EligibleTaskTypes() {
		interval := s.policy.IntervalFor(plant, taskType, snapshot)

		// 从当前时间开始逐次累加间隔，经过天气调整后仍在范围内的才生成任务，
		// 下一次的到期时间从调整后的时间继续推算
		prev := now
		for {
			due := AdjustForWeather(prev.Add(interval), taskType, snapshot)
			if due.After(horizonEnd) {
				break
			}

			entries = append(entries, &domain.ScheduleEntry{
				ID:               entryID(plant.ID, taskType, due),
				PlantID:          plant.ID,
				TaskType:         taskType,
				DueDate:          due,
				Priority:         ScorePriority(s.policy, taskType, due, snapshot, now),
				WeatherDependent: taskType.WeatherDependent(),
				Snapshot:         snapshot,
			})

			prev = due
		}
	}

	// 按到期时间升序排列，到期时间相同时优先级高的在前
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DueDate.Equal(entries[j].DueDate) {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].DueDate.Before(entries[j].DueDate)
	})

	return entries
}

// 任务 ID 由植物、任务类型和到期时间唯一决定，
// 相同的请求重新生成会得到相同的 ID，便于幂等地写入数据库
func entryID(plantID int64, t domain.TaskType, due time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s:%d", plantID, t, due.Unix())))
	return hex.EncodeToString(sum[:16])
}

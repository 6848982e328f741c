package seed

import (
	"log/slog"
	"math/rand"

	"github.com/greenhaven-dev/garden-planner/backend/internal/config"
	"github.com/greenhaven-dev/garden-planner/backend/internal/repository"
	"github.com/greenhaven-dev/garden-planner/backend/internal/utils"
)

// 生成一组随机的花园、区域和植物，方便本地开发时有数据可用。
// 插入失败的记录只记录日志并跳过，不会中断整个流程
func SeedSampleData(cfg *config.Config, r *repository.Repository) {
	gardenCount := 0
	zoneCount := 0
	plantCount := 0

	for i := 0; i < cfg.Seed.GardenCount; i++ {
		garden := utils.GenerateRandomGarden(cfg.Email.UserDomain)
		if err := r.CreateGarden(garden); err != nil {
			slog.Error("插入花园失败", "error", err)
			continue
		}
		gardenCount++

		zoneNum := rand.Intn(2) + 2
		for j := 0; j < zoneNum; j++ {
			zone := utils.GenerateRandomZone(garden.ID)
			if err := r.CreateZone(zone); err != nil {
				slog.Error("插入区域失败", "error", err)
				continue
			}
			zoneCount++

			// 按剩余面积往区域里塞植物，塞不下就换下一个区域
			remaining := zone.Area()
			plantNum := rand.Intn(3) + 2
			for k := 0; k < plantNum; k++ {
				plant := utils.GenerateRandomPlant(zone.ID)
				if plant.RequiredArea > remaining {
					break
				}

				if err := r.CreatePlant(plant); err != nil {
					slog.Error("插入植物失败", "error", err)
					continue
				}
				remaining -= plant.RequiredArea
				plantCount++
			}
		}
	}

	slog.Info("插入种子数据完成", "gardens", gardenCount, "zones", zoneCount, "plants", plantCount)
}

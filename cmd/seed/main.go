package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/config"
	"github.com/greenhaven-dev/garden-planner/backend/internal/repository"
	"github.com/greenhaven-dev/garden-planner/backend/internal/seed"
	"github.com/greenhaven-dev/garden-planner/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var gardenID int64
	var zoneID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机花园, 2: 往花园里插入随机区域, 3: 往区域里插入随机植物, 4: 插入完整的示例数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&gardenID, "garden-id", 0, "要插入区域的花园 ID")
	flag.Int64Var(&zoneID, "zone-id", 0, "要插入植物的区域 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的花园数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				garden := utils.GenerateRandomGarden(cfg.Email.UserDomain)
				if err := repo.CreateGarden(garden); err != nil {
					slog.Error("无法插入花园", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入花园成功", slog.Int("count", n-cnt))
		}
	case 2:
		if gardenID <= 0 {
			slog.Error("请输入合法的花园 ID")
			return
		}

		// 先确认花园存在
		if _, err := repo.GetGardenByID(gardenID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("指定的花园不存在", slog.Int64("garden_id", gardenID))
			default:
				slog.Error("无法获取花园", slog.String("error", err.Error()))
			}
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			zone := utils.GenerateRandomZone(gardenID)
			if err := repo.CreateZone(zone); err != nil {
				slog.Error("无法插入区域", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入区域成功", slog.Int("count", n-cnt))
	case 3:
		if zoneID <= 0 {
			slog.Error("请输入合法的区域 ID")
			return
		}

		// 先确认区域存在
		if _, err := repo.GetZoneByID(zoneID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("指定的区域不存在", slog.Int64("zone_id", zoneID))
			default:
				slog.Error("无法获取区域", slog.String("error", err.Error()))
			}
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			plant := utils.GenerateRandomPlant(zoneID)
			if err := repo.CreatePlant(plant); err != nil {
				slog.Error("无法插入植物", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入植物成功", slog.Int("count", n-cnt))
	case 4:
		seed.SeedSampleData(cfg, repo)
	default:
		slog.Error("指定的操作非法")
	}
}

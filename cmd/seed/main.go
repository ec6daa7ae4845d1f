package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/config"
	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/repository"
	"github.com/apollomonasa/duty-roster/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// 随机人员使用的年级
var seedGrades = []string{"22", "23", "24", "25"}

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机人员, 2: 插入默认年级规则, 3: 重置班次目录)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
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
			slog.Error("请输入合法的人员数量")
		} else {
			people := make([]*domain.Person, 0, n)
			for i := 0; i < n; i++ {
				people = append(people, utils.GenerateRandomPerson(seedGrades))
			}

			result, err := repo.UpsertPeople(people)
			if err != nil {
				slog.Error("无法插入随机人员", slog.String("error", err.Error()))
				return
			}

			slog.Info("插入随机人员成功", slog.Int("new", result.NewCount), slog.Int("updated", result.UpdatedCount))
		}
	case 2:
		// 低年级每周两班且需要老人带班，高年级每周一班
		rules := []*domain.GradeRule{
			{Grade: "25", ShiftsPerWeek: 2, NeedsSeniorBuddy: true, CanDoNightShift: false},
			{Grade: "24", ShiftsPerWeek: 2, NeedsSeniorBuddy: false, CanDoNightShift: true},
			{Grade: "23", ShiftsPerWeek: 1, NeedsSeniorBuddy: false, CanDoNightShift: true},
			{Grade: "22", ShiftsPerWeek: 1, NeedsSeniorBuddy: false, CanDoNightShift: true},
		}

		cnt := 0
		for _, rule := range rules {
			if err := repo.CreateGradeRule(rule); err != nil {
				slog.Error("无法插入年级规则", slog.String("grade", rule.Grade), slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("插入默认年级规则成功", slog.Int("count", cnt))
	case 3:
		if err := repo.ReplaceShiftSpecs(domain.DefaultShiftSpecs); err != nil {
			slog.Error("无法重置班次目录", slog.String("error", err.Error()))
			return
		}

		slog.Info("重置班次目录成功", slog.Int("count", len(domain.DefaultShiftSpecs)))
	default:
		slog.Error("指定的操作非法")
	}
}

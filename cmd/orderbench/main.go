package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/comedor/config"
	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/database"
	"github.com/d60-Lab/comedor/pkg/mq"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

// 多个并发请求为同一个工人同一天下单，最终必须只剩一行
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	defer database.Close(db)

	N := envInt("N", 2000)
	CONC := envInt("CONC", 16)
	WORKERS := envInt("WORKERS", 1)

	ctx := context.Background()
	tag := uuid.NewString()[:8]

	company := model.Company{Name: "bench-" + tag}
	must(0, db.Create(&company).Error)
	menu := model.Menu{Name: "bench-" + tag, CompanyID: company.ID, Options: []model.MenuOption{
		{Idx: 1, Name: "A"}, {Idx: 2, Name: "B"}, {Idx: 3, Name: "C"},
	}}
	must(0, db.Create(&menu).Error)
	workers := make([]model.User, WORKERS)
	for i := range workers {
		id := uuid.NewString()
		workers[i] = model.User{
			Identification: id,
			Name:           "bench " + id[:8],
			Email:          id[:8] + "-" + tag + "@example.com",
			Password:       "x",
			Role:           model.RoleWorker,
			CompanyID:      &company.ID,
		}
	}
	must(0, db.Create(&workers).Error)

	orderRepo := repository.NewOrderRepository(db)
	svc := service.NewOrderService(orderRepo, repository.NewUserRepository(db), repository.NewMenuRepository(db), mq.Nop{}, service.NewClock(time.UTC))
	day := time.Now().UTC().Format("2006-01-02")

	feed := make(chan int, N)
	for i := 0; i < N; i++ {
		feed <- i
	}
	close(feed)

	var (
		mu      sync.Mutex
		recs    = make([]time.Duration, 0, N)
		created int
		failed  int
		wg      sync.WaitGroup
	)
	t0 := time.Now()
	for w := 0; w < CONC; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range feed {
				worker := workers[i%len(workers)]
				opt := menu.Options[i%len(menu.Options)]
				st := time.Now()
				res, err := svc.Upsert(ctx, int64(worker.ID), int64(opt.ID), day)
				d := time.Since(st)

				mu.Lock()
				recs = append(recs, d)
				if err != nil {
					failed++
				} else if res.Action == model.OrderCreated {
					created++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(t0)

	fmt.Printf("N=%d, CONC=%d, WORKERS=%d, driver=%s\n", N, CONC, WORKERS, cfg.Database.Driver)
	fmt.Printf("Upsert total: %v, per op: %v, p50: %v, p95: %v, p99: %v\n",
		total, total/time.Duration(N), pct(recs, 0.50), pct(recs, 0.95), pct(recs, 0.99))
	fmt.Printf("created=%d failed=%d\n", created, failed)

	ok := created == len(workers) && failed == 0
	for _, w := range workers {
		n := must(orderRepo.CountByWorkerDate(ctx, w.ID, day))
		if n != 1 {
			fmt.Printf("worker %d has %d orders for %s\n", w.ID, n, day)
			ok = false
		}
	}

	// 清理本次数据
	db.Where("trabajador_id IN (?)", db.Model(&model.User{}).Select("id").Where("empresa_id = ?", company.ID)).Delete(&model.Order{})
	db.Where("empresa_id = ?", company.ID).Delete(&model.User{})
	db.Where("menu_id = ?", menu.ID).Delete(&model.MenuOption{})
	db.Delete(&menu)
	db.Delete(&company)

	if !ok {
		fmt.Println("FAIL: one-order-per-worker-per-date violated")
		os.Exit(1)
	}
	fmt.Println("OK: exactly one order per worker")
}

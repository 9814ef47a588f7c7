package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	httpadapter "survecho/internal/adapter/http"
	metricsinmem "survecho/internal/adapter/metrics/inmemory"
	filerepo "survecho/internal/adapter/repo/file"
	gormrepo "survecho/internal/adapter/repo/gorm"
	"survecho/internal/app/observe"
	"survecho/internal/app/ports"
	"survecho/internal/app/sim"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const defaultSavePath = "survivors_echo_save.json"

func main() {
	kpiRecorder := metricsinmem.NewRecorder()

	session := sim.NewSession(sim.Config{
		Width:     intEnv("SURVECHO_WORLD_WIDTH", 0),
		Height:    intEnv("SURVECHO_WORLD_HEIGHT", 0),
		Seed:      int64(intEnv("SURVECHO_SEED", 0)),
		Creatures: intEnv("SURVECHO_CREATURES", 0),
		Repo:      buildSnapshotRepo(),
		Metrics:   kpiRecorder,
	})
	if err := session.Load(context.Background()); err != nil {
		log.Printf("starting fresh: %v", err)
	}

	runner := sim.NewRunner(session, intEnv("SURVECHO_TICK_RATE", sim.DefaultTickRate))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := runner.Run(ctx); err != nil {
			log.Printf("shutdown save failed: %v", err)
		}
	}()

	h := httpadapter.Handler{
		ObserveUC: observe.UseCase{Game: session},
		Game:      session,
		Intents:   runner,
		KPI:       kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("SURVECHO_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("survecho server listening on %s", addr)
	s.Spin()
}

// buildSnapshotRepo picks the save backend: Postgres when a DSN is set,
// otherwise a JSON file next to the binary.
func buildSnapshotRepo() ports.SnapshotRepository {
	if dsn := strings.TrimSpace(os.Getenv("SURVECHO_DB_DSN")); dsn != "" {
		db, err := gormrepo.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := gormrepo.Migrate(db); err != nil {
			log.Fatalf("migrate save table: %v", err)
		}
		return gormrepo.NewSnapshotRepo(db)
	}
	return filerepo.NewSnapshotRepo(savePath())
}

func savePath() string {
	if p := strings.TrimSpace(os.Getenv("SURVECHO_SAVE_PATH")); p != "" {
		return p
	}
	return defaultSavePath
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

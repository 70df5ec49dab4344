package main

import (
	"context"
	"flag"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"xiangqi/internal/config"
	"xiangqi/internal/logging"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	addr := flag.String("addr", "", "listen address (empty to use config default)")
	webDir := flag.String("web", "", "directory with index.html / js / svg (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error) (empty to use config default)")
	maxGames := flag.Int("max-games", -1, "Maximum concurrent games (-1 to use config default)")
	open := flag.Bool("open", false, "open the board page in the default browser")
	flag.Parse()

	cfg, v, err := config.Load(*configPath)
	if err != nil {
		// 日志还没配置，先用默认 logger 输出
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *webDir != "" {
		cfg.Server.WebDir = *webDir
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *maxGames >= 0 {
		cfg.Server.MaxGames = *maxGames
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid flags")
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	// 只有通过配置文件启动时才热加载日志级别
	if v.ConfigFileUsed() != "" {
		config.Watch(v, func(next *config.Config) {
			if *logLevel != "" {
				return
			}
			logging.SetLevel(next.Log.Level)
			log.Info().Str("level", next.Log.Level).Msg("Log level reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
	}

	log.Info().
		Str("addr", cfg.Server.Addr).
		Str("web_dir", cfg.Server.WebDir).
		Int("max_games", cfg.Server.MaxGames).
		Float64("board_scale", cfg.Board.Scale).
		Msg("Starting xiangqi server")

	games := game.NewManager(cfg.Board.Scale, cfg.Server.MaxGames)
	srv := httpserver.NewServer(games, cfg.Server.WebDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(cfg.Server.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := cfg.Server.Addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
	log.Info().Int("games", games.Count()).Msg("Server shutdown complete")
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"shashki/internal/server/game"
	httpserver "shashki/internal/server/http"
	"shashki/internal/storage"
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

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", getenv("SHASHKI_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("SHASHKI_WEB", "./web"), "directory with index.html / js / svg")
	dbDir := flag.String("db", getenv("SHASHKI_DB", ""), "badger directory for the scoreboard (empty = in-memory)")
	open := flag.Bool("open", true, "open the default browser after start")
	flag.Parse()

	scores, err := storage.Open(*dbDir)
	if err != nil {
		log.Fatalf("open scoreboard: %v", err)
	}
	defer scores.Close()

	api := httpserver.NewHandler(game.NewManager(scores), scores)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewServer(api, *webDir),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("listening on %s, serving static from %s", *addr, *webDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := g.Wait(); err != nil {
		log.Printf("server stopped: %v", err)
		return
	}
	log.Println("server stopped")
}

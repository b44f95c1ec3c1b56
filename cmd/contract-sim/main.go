package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stellarkit/contract-sim/config"
	"github.com/stellarkit/contract-sim/server"
	"github.com/stellarkit/contract-sim/simulate"
)

func main() {
	var (
		serve      = flag.Bool("serve", false, "Run the HTTP service")
		configPath = flag.String("config", "", "Path to config file (serve mode)")
		wasmFile   = flag.String("wasm", "", "Path to a wasm file to simulate")
		contractID = flag.String("id", "", "Contract identifier (C...)")
		name       = flag.String("name", "", "Contract name")
		jsonOut    = flag.Bool("json", false, "Print the raw JSON result")
	)
	flag.Parse()

	if *serve {
		if err := runServe(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: contract-sim -wasm <file.wasm> -id <C...> -name <name> [-json]")
		fmt.Fprintln(os.Stderr, "       contract-sim -serve [-config <file>]")
		os.Exit(1)
	}

	if err := runOnce(*wasmFile, *contractID, *name, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOnce simulates a single wasm file and prints the result. The process
// exits non-zero when the module fails validation so the command composes
// with CI pipelines.
func runOnce(wasmFile, contractID, name string, jsonOut bool) error {
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	sim := simulate.New(simulate.DefaultPolicy())
	res := sim.Simulate(simulate.Request{
		WasmBinary: base64.StdEncoding.EncodeToString(data),
		ContractID: contractID,
		Name:       name,
	})

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		fmt.Println(renderReport(wasmFile, res))
	}

	if !res.Valid {
		os.Exit(1)
	}
	return nil
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var log *zap.Logger
	if cfg.LogMode == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	simulate.SetLogger(log)

	srv := server.New(simulate.New(simulate.DefaultPolicy()), log, cfg.MaxUploadBytes)
	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.ListenAddr))
		errCh <- httpSrv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

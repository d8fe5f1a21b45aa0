package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yigit/alumnihub/cmd/console/commands"
	appServices "github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/bootstrap"
	"github.com/yigit/alumnihub/internal/config"
)

func main() {
	app := &commands.AppContext{Ctx: context.Background()}
	rootCmd := commands.NewRootCmd(app, setup)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config, logs to stderr so stdout stays machine-readable, and builds the services
func setup(app *commands.AppContext, configPath string) error {
	if configPath == "" {
		configPath = config.GetEnv("ALUMNI_CONFIG", bootstrap.DefaultConfigPath)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger = bootstrap.SetupLogger(cfg, os.Stderr)
	app.JWT = bootstrap.NewJWTService(cfg)

	sources, _, closeFn, err := bootstrap.BuildDataSources(app.Ctx, cfg, app.Logger)
	app.Close = closeFn
	if err != nil {
		return err
	}
	app.Services = appServices.NewServices(sources)
	return nil
}

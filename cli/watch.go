package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fluo-io/fluo-go/pkg/config"
	"github.com/fluo-io/fluo-go/pkg/logger"
	"github.com/spf13/cobra"
)

// WatchCmd returns the watch command.
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a fluo properties file and revalidate it on every change",
		RunE:  handleWatchCmd,
	}
	cmd.Flags().String("role", "", "Also check the properties required by this role on each reload")
	addConfigFlags(cmd)
	addLoggingFlags(cmd)
	return cmd
}

func handleWatchCmd(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	roleName, err := getStringFlag(cmd.Flags(), "role")
	if err != nil {
		return err
	}
	checkRole := roleName != ""
	var role config.Role
	if checkRole {
		role, err = config.ParseRole(roleName)
		if err != nil {
			return err
		}
	}
	noEnv, err := getBoolFlag(cmd.Flags(), "no-env")
	if err != nil {
		return err
	}

	cfg, path, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("watch requires an existing configuration file")
	}
	reportConfig(ctx, cfg, checkRole, role)

	watcher, err := config.NewWatcher(path, log)
	if err != nil {
		return err
	}
	defer watcher.Close()
	watcher.OnReload(func(next *config.Config) {
		if !noEnv {
			if err := next.LoadEnvironment(); err != nil {
				log.Error("failed to apply environment overrides", "error", err)
				return
			}
		}
		reportConfig(ctx, next, checkRole, role)
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	log.Info("watching configuration file", "file", path)
	<-ctx.Done()
	log.Info("stopping configuration watch")
	return nil
}

// reportConfig validates cfg and, when requested, runs the role check,
// logging the outcome of both.
func reportConfig(ctx context.Context, cfg *config.Config, checkRole bool, role config.Role) {
	log := logger.FromContext(ctx)
	if err := cfg.Validate(); err != nil {
		log.Error("configuration validation failed", "error", err)
		return
	}
	log.Info("configuration is valid")
	if !checkRole {
		return
	}
	ok, err := cfg.CheckRole(role)
	if err != nil {
		log.Error("role check failed", "error", err)
		return
	}
	if ok {
		log.Info("required properties are set", "role", role.String())
	} else {
		log.Error("missing required properties", "role", role.String())
	}
}

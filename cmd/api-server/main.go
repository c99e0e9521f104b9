package main

import (
	"context"
	"fmt"
	"os"

	"coopmini/config"
	"coopmini/dao"
	"coopmini/pkg/database"
	"coopmini/pkg/log"
	"coopmini/server"
	"coopmini/service"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					return database.Migrate(database.NewDB(cfg))
				},
			},
			{
				Name:  "create-admin",
				Usage: "create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					users := service.NewUserService(dao.NewUsers(database.NewDB(cfg)))
					admin, err := users.CreateAdmin(
						context.Background(),
						ctx.String("email"),
						ctx.String("username"),
						ctx.String("password"),
					)
					if err != nil {
						return err
					}
					log.L.Info("admin created",
						zap.Int("id", admin.ID),
						zap.String("email", admin.Email),
					)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

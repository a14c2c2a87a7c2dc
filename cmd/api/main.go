package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/seu-usuario/brindes-api/internal/application/auth"
	"github.com/seu-usuario/brindes-api/internal/application/catalogo"
	"github.com/seu-usuario/brindes-api/internal/application/dashboard"
	"github.com/seu-usuario/brindes-api/internal/application/estoque"
	"github.com/seu-usuario/brindes-api/internal/application/pedidos"
	"github.com/seu-usuario/brindes-api/internal/application/roles"
	"github.com/seu-usuario/brindes-api/internal/application/usuarios"
	"github.com/seu-usuario/brindes-api/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/brindes-api/internal/interfaces/http"
	"github.com/seu-usuario/brindes-api/pkg/config"
	"github.com/seu-usuario/brindes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := roles.NewResolver(roleRepo)
	authUC := auth.NewAuthUseCase(userRepo, profileRepo, roleRepo, resolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	catalogoUC := catalogo.NewUseCase(produtoRepo, categoriaRepo)
	movimentarUC := estoque.NewRegistrarMovimentacaoUseCase(txRunner, produtoRepo, movRepo)
	pedidosUC := pedidos.NewUseCase(txRunner, pedidoRepo, produtoRepo, movimentarUC)
	usuariosUC := usuarios.NewUseCase(profileRepo, roleRepo)
	dashboardUC := dashboard.NewUseCase(produtoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Brindes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogoUC:   catalogoUC,
		MovimentarUC: movimentarUC,
		PedidosUC:    pedidosUC,
		UsuariosUC:   usuariosUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

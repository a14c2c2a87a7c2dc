package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/brindes-api/internal/application/auth"
	"github.com/seu-usuario/brindes-api/internal/application/catalogo"
	"github.com/seu-usuario/brindes-api/internal/application/dashboard"
	"github.com/seu-usuario/brindes-api/internal/application/estoque"
	"github.com/seu-usuario/brindes-api/internal/application/pedidos"
	"github.com/seu-usuario/brindes-api/internal/application/usuarios"
	"github.com/seu-usuario/brindes-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogoUC   *catalogo.UseCase
	MovimentarUC *estoque.RegistrarMovimentacaoUseCase
	PedidosUC    *pedidos.UseCase
	UsuariosUC   *usuarios.UseCase
	DashboardUC  *dashboard.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/password", authHandler.UpdatePassword)
	protected.Post("/auth/users", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Pedidos: criação e acompanhamento abertos a qualquer role autenticado;
	// cada transição valida o papel do ator no caso de uso.
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidosUC)
	pedidosGroup.Post("/", pedidoHandler.Criar)
	pedidosGroup.Get("/", pedidoHandler.Listar)
	pedidosGroup.Post("/:id/aprovar", pedidoHandler.Aprovar)
	pedidosGroup.Post("/:id/rejeitar", pedidoHandler.Rejeitar)
	pedidosGroup.Post("/:id/finalizar", pedidoHandler.Finalizar)
	pedidosGroup.Post("/:id/concluir", pedidoHandler.Concluir)

	// Catálogo, categorias e movimentações (gestão)
	gestao := RequireRole(entity.RoleAdmin, entity.RoleOperario)

	produtosGroup := protected.Group("/produtos", gestao)
	produtoHandler := NewProdutoHandler(deps.CatalogoUC)
	produtosGroup.Get("/", produtoHandler.Listar)
	produtosGroup.Post("/", produtoHandler.Criar)
	produtosGroup.Put("/:id", produtoHandler.Atualizar)
	produtosGroup.Delete("/:id", produtoHandler.Excluir)

	categoriasGroup := protected.Group("/categorias", gestao)
	categoriasGroup.Get("/", produtoHandler.ListarCategorias)
	categoriasGroup.Post("/", produtoHandler.CriarCategoria)

	movGroup := protected.Group("/movimentacoes", gestao)
	movHandler := NewMovimentacaoHandler(deps.MovimentarUC)
	movGroup.Post("/", movHandler.Registrar)
	movGroup.Get("/", movHandler.Listar)

	// Dashboard (gestão)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", gestao, dashboardHandler.Resumo)

	// Usuários e roles (admin)
	usuariosGroup := protected.Group("/usuarios", RequireRole(entity.RoleAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuariosUC)
	usuariosGroup.Get("/", usuarioHandler.Listar)
	usuariosGroup.Put("/:id/role", usuarioHandler.AtribuirRole)
}

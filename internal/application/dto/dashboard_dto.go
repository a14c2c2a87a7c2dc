package dto

// DashboardResponse indicadores do painel inicial.
type DashboardResponse struct {
	TotalBrindes  int                   `json:"total_brindes"`
	EstoqueNormal int                   `json:"estoque_normal"`
	EstoqueBaixo  int                   `json:"estoque_baixo"`
	SemEstoque    int                   `json:"sem_estoque"`
	PorCategoria  []CategoriaQuantidade `json:"por_categoria"`
}

// CategoriaQuantidade quantidade total em estoque por categoria (gráfico).
type CategoriaQuantidade struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

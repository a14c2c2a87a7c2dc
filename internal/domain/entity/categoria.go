package entity

import "time"

// Categoria agrupa produtos para filtros e para o gráfico do dashboard.
type Categoria struct {
	ID        string
	Nome      string
	CreatedAt time.Time
}

package repository

import "context"

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Users      UserRepository
	Categories CategoryRepository
	Products   ProductRepository
}

// TxRunner ejecuta fn dentro de una transacción: cada secuencia
// verificación-y-mutación (unicidad, existencia, conteo de referencias)
// corre atómica contra la base.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

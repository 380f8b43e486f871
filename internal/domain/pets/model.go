package pets

// Pet representa un registro del catálogo de la tienda.
// El ID lo asigna el storage al crear; nunca cambia después.
type Pet struct {
	ID        int64
	Name      string
	Category  string
	Available bool
}

// Filter limita el listado por coincidencia exacta.
// Campo nil = no filtrar por ese campo.
type Filter struct {
	Name      *string
	Category  *string
	Available *bool
}

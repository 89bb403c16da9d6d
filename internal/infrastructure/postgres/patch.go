package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/shopping-api/internal/domain/entity"
)

// buildProductUpdate genera el UPDATE parcial de products: un SET con
// exactamente los campos presentes del patch más updated_at. Las columnas
// salen de esta tabla fija; las claves del caller jamás se interpolan en el
// SQL. Orden determinista para logs y tests estables.
//
// Devuelve ok=false cuando el patch viene vacío: no hay nada que ejecutar.
func buildProductUpdate(id int64, patch entity.ProductPatch) (sql string, args []any, ok bool) {
	type column struct {
		name string
		set  bool
		arg  any
	}
	columns := []column{
		{"product_name", patch.Name.Set, patch.Name.Arg()},
		{"description", patch.Description.Set, patch.Description.Arg()},
		{"price", patch.Price.Set, patch.Price.Arg()},
		{"stock_quantity", patch.StockQuantity.Set, patch.StockQuantity.Arg()},
		{"category_id", patch.CategoryID.Set, patch.CategoryID.Arg()},
	}

	var sets []string
	for _, c := range columns {
		if !c.set {
			continue
		}
		args = append(args, c.arg)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.name, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	sql = fmt.Sprintf("UPDATE products SET %s WHERE product_id = $%d",
		strings.Join(sets, ", "), len(args))
	return sql, args, true
}

package dataset

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// requiredColumns must be present in any clinic dataset.
var requiredColumns = []string{"county", "org_name", "address"}

// coordinateColumns may be null per row but the columns themselves must exist.
var coordinateColumns = []string{"lat", "lng"}

// ValidateSchema checks that the Parquet schema contains the identity and
// coordinate columns.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	var missing []string
	for _, col := range append(requiredColumns, coordinateColumns...) {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

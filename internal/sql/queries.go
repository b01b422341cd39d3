package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/incr_counter.sql
var IncrCounter string

//go:embed queries/get_counter.sql
var GetCounter string

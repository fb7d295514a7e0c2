package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/001-create-database.sql
var InitdbMariaDBBootstrap string

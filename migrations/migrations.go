// Package migrations holds the schema of the analytics store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

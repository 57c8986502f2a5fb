// Package migrations embeds the goose SQL migrations applied by hsectl.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embute os scripts SQL aplicados pelo goose.
package migrations

import "embed"

// FS contém os arquivos *.sql desta pasta.
//
//go:embed *.sql
var FS embed.FS

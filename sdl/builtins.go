package sdl

import "strings"

// builtinTypes lists the dialect-native scalar types. References to these
// never become dependency edges; everything else is assumed to name a domain
// or table type that must exist in the model.
var builtinTypes = map[string]bool{
	"bigint":           true,
	"binary":           true,
	"bit":              true,
	"char":             true,
	"date":             true,
	"datetime":         true,
	"datetime2":        true,
	"datetimeoffset":   true,
	"decimal":          true,
	"float":            true,
	"image":            true,
	"int":              true,
	"money":            true,
	"nchar":            true,
	"ntext":            true,
	"numeric":          true,
	"nvarchar":         true,
	"real":             true,
	"smalldatetime":    true,
	"smallint":         true,
	"smallmoney":       true,
	"sql_variant":      true,
	"text":             true,
	"time":             true,
	"tinyint":          true,
	"uniqueidentifier": true,
	"varbinary":        true,
	"varchar":          true,
	"xml":              true,
}

// IsBuiltinType reports whether an unqualified type name is dialect-native.
func IsBuiltinType(name string) bool {
	return builtinTypes[strings.ToLower(name)]
}

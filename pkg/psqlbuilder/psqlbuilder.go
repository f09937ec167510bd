package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder статичный builder с плейсхолдерами $1, $2, ... для PostgreSQL
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert возвращает InsertBuilder для указанной таблицы
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Select возвращает SelectBuilder для указанных колонок
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

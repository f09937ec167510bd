package user

import "github.com/m04kA/GLS-QuoteService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

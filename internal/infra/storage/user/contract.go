package user

import "github.com/bestbuddies/grooming-service/pkg/dbmetrics"

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

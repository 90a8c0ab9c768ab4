// Package all wires every built-in storage backend into the storage
// factory. It exists purely for side effects: a blank import runs each
// backend's init function, registering its factory and DDL bootstrapper.
//
// Importing this package makes the following storage kinds available:
//
//   - "postgres" (flightetl/internal/storage/postgres)
//   - "sqlite"   (flightetl/internal/storage/sqlite)
//   - "mysql"    (flightetl/internal/storage/mysql)
package all

import (
	_ "flightetl/internal/storage/mysql"
	_ "flightetl/internal/storage/postgres"
	_ "flightetl/internal/storage/sqlite"
)
